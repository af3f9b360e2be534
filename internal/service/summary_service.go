package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/haierkeys/smart-note-api/pkg/logger"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultSummaryBaseURL = "https://api.openai.com/v1/chat/completions"
	defaultSummaryModel   = "gpt-3.5-turbo"
	summaryPrompt         = "Summarize the following note in one paragraph:"

	summaryMaxRetries   = 3
	summaryInitialDelay = 1 * time.Second
)

// Summarizer 摘要网关接口
// 摘要是增强能力，上游不可用时调用方降级为空摘要，不阻断写入
type Summarizer interface {
	// Summarize 为笔记内容生成一段摘要
	Summarize(ctx context.Context, content string) (string, error)
}

// SummarizerConfig 摘要网关配置
type SummarizerConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewSummarizer 创建摘要网关
// 未配置 APIKey 时返回空实现，笔记摘要始终为空串
func NewSummarizer(cfg SummarizerConfig, lg *zap.Logger) Summarizer {
	if cfg.APIKey == "" {
		return &noopSummarizer{}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultSummaryBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultSummaryModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &openAISummarizer{
		config: cfg,
		client: &http.Client{},
		logger: lg,
	}
}

// noopSummarizer 空实现
type noopSummarizer struct{}

func (s *noopSummarizer) Summarize(ctx context.Context, content string) (string, error) {
	return "", nil
}

// openAISummarizer 调用 Chat Completions 接口生成摘要
type openAISummarizer struct {
	config SummarizerConfig
	client *http.Client
	logger *zap.Logger
	sf     singleflight.Group
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Summarize 为笔记内容生成一段摘要
// 相同内容的并发请求通过 singleflight 合并为一次上游调用
func (s *openAISummarizer) Summarize(ctx context.Context, content string) (string, error) {
	out, err, _ := s.sf.Do(content, func() (interface{}, error) {
		return s.summarize(ctx, content)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (s *openAISummarizer) summarize(ctx context.Context, content string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	payload, err := sonic.Marshal(chatRequest{
		Model: s.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: summaryPrompt},
			{Role: "user", Content: content},
		},
	})
	if err != nil {
		return "", err
	}

	var lastErr error
	delay := summaryInitialDelay

	for attempt := 0; attempt < summaryMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		summary, retryable, err := s.doRequest(ctx, payload)
		if err == nil {
			return summary, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		s.logger.Warn("summarizer upstream retry",
			zap.Int("attempt", attempt+1),
			zap.String(logger.FieldModel, s.config.Model),
			zap.Error(err))
	}

	return "", lastErr
}

// doRequest 单次上游调用，retryable 标记是否值得重试（限流或 5xx）
func (s *openAISummarizer) doRequest(ctx context.Context, payload []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", true, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, err
	}

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500

		var apiErr chatError
		if err := sonic.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", retryable, fmt.Errorf("summarizer upstream %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", retryable, fmt.Errorf("summarizer upstream %d", resp.StatusCode)
	}

	var result chatResponse
	if err := sonic.Unmarshal(body, &result); err != nil {
		return "", false, err
	}

	// 上游没有可用内容时降级为空摘要，而不是报错
	if len(result.Choices) == 0 {
		return "", false, nil
	}
	return strings.TrimSpace(result.Choices[0].Message.Content), false, nil
}
