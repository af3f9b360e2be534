package service

import (
	"context"
	"strings"

	"github.com/haierkeys/smart-note-api/internal/dao"
	"github.com/haierkeys/smart-note-api/internal/domain"
	"github.com/haierkeys/smart-note-api/internal/dto"
	"github.com/haierkeys/smart-note-api/pkg/code"
	"github.com/haierkeys/smart-note-api/pkg/convert"
	apperrors "github.com/haierkeys/smart-note-api/pkg/errors"
	"github.com/haierkeys/smart-note-api/pkg/logger"
	"github.com/haierkeys/smart-note-api/pkg/timex"

	"go.uber.org/zap"
)

// NoteService 定义笔记业务服务接口
// 每个操作都要求上游已完成主体解析，uid 为空视为未认证
type NoteService interface {
	// Create 创建笔记，写入前调用摘要网关做内容增强
	Create(ctx context.Context, uid string, params *dto.NoteCreateRequest) (*NoteDTO, error)

	// List 获取用户的笔记列表，支持 tag/q 过滤
	List(ctx context.Context, uid string, params *dto.NoteListRequest) ([]*NoteDTO, error)

	// Get 获取单条笔记
	Get(ctx context.Context, uid string, id int64) (*NoteDTO, error)

	// Update 整体替换笔记的 title/content/tags
	Update(ctx context.Context, uid string, id int64, params *dto.NoteUpdateRequest) (*NoteDTO, error)

	// Delete 删除笔记
	Delete(ctx context.Context, uid string, id int64) error

	// Stats 统计用户的笔记数量
	Stats(ctx context.Context, uid string) (*dto.NoteStatsResponse, error)
}

// NoteDTO 笔记数据传输对象
type NoteDTO struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Summary   string     `json:"summary"`
	Tags      []string   `json:"tags"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo   domain.NoteRepository
	summarizer Summarizer
	logger     *zap.Logger
	config     *ServiceConfig
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository, summarizer Summarizer, lg *zap.Logger, config *ServiceConfig) NoteService {
	return &noteService{
		noteRepo:   noteRepo,
		summarizer: summarizer,
		logger:     lg,
		config:     config,
	}
}

// domainToDTO 将领域模型转换为 DTO
func domainToDTO(n *domain.Note) *NoteDTO {
	if n == nil {
		return nil
	}
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return &NoteDTO{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Summary:   n.Summary,
		Tags:      tags,
		CreatedAt: timex.Time(n.CreatedAt),
		UpdatedAt: timex.Time(n.UpdatedAt),
	}
}

// Create 创建笔记
// 校验先于任何存储与网关调用；摘要失败降级为空串，不阻断创建
func (s *noteService) Create(ctx context.Context, uid string, params *dto.NoteCreateRequest) (*NoteDTO, error) {
	if err := requireUID(uid); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Content) == "" {
		return nil, apperrors.NewAppError(code.ErrorInvalidParams.WithDetails("title and content are required"), nil)
	}

	summary := s.summarize(ctx, params.Content)

	newNote := &domain.Note{UID: uid, Summary: summary}
	convert.StructAssign(params, newNote)

	note, err := s.noteRepo.Create(ctx, newNote)
	if err != nil {
		s.logger.Error("note create failed",
			zap.String(logger.FieldUserID, uid),
			zap.Error(err))
		return nil, apperrors.NewAppError(code.ErrorServerInternal, err)
	}
	return domainToDTO(note), nil
}

// summarize 调用摘要网关，带独立超时，任何失败都降级为空摘要
func (s *noteService) summarize(ctx context.Context, content string) string {
	sctx := ctx
	if s.config != nil && s.config.SummaryTimeout > 0 {
		var cancel context.CancelFunc
		sctx, cancel = context.WithTimeout(ctx, s.config.SummaryTimeout)
		defer cancel()
	}

	summary, err := s.summarizer.Summarize(sctx, content)
	if err != nil {
		s.logger.Warn("summarizer degraded to empty summary", zap.Error(err))
		return ""
	}
	return summary
}

// List 获取用户的笔记列表，空结果返回空数组而不是错误
func (s *noteService) List(ctx context.Context, uid string, params *dto.NoteListRequest) ([]*NoteDTO, error) {
	if err := requireUID(uid); err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.List(ctx, uid, domain.NoteFilter{
		Tag:   params.Tag,
		Query: params.Query,
	})
	if err != nil {
		s.logger.Error("note list failed",
			zap.String(logger.FieldUserID, uid),
			zap.String(logger.FieldTag, params.Tag),
			zap.String(logger.FieldQuery, params.Query),
			zap.Error(err))
		return nil, apperrors.NewAppError(code.ErrorServerInternal, err)
	}

	out := make([]*NoteDTO, 0, len(notes))
	for _, n := range notes {
		out = append(out, domainToDTO(n))
	}
	return out, nil
}

// Get 获取单条笔记，归属他人与不存在统一返回未找到
func (s *noteService) Get(ctx context.Context, uid string, id int64) (*NoteDTO, error) {
	if err := requireUID(uid); err != nil {
		return nil, err
	}

	note, err := s.noteRepo.GetByID(ctx, id, uid)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, apperrors.NewAppError(code.ErrorNotFound, err)
		}
		return nil, apperrors.NewAppError(code.ErrorServerInternal, err)
	}
	return domainToDTO(note), nil
}

// Update 整体替换笔记内容，摘要保持创建时的值
func (s *noteService) Update(ctx context.Context, uid string, id int64, params *dto.NoteUpdateRequest) (*NoteDTO, error) {
	if err := requireUID(uid); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Content) == "" {
		return nil, apperrors.NewAppError(code.ErrorInvalidParams.WithDetails("title and content are required"), nil)
	}

	note, err := s.noteRepo.Update(ctx, id, uid, params.Title, params.Content, params.Tags)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, apperrors.NewAppError(code.ErrorNotFound, err)
		}
		s.logger.Error("note update failed",
			zap.String(logger.FieldUserID, uid),
			zap.Int64(logger.FieldNoteID, id),
			zap.Error(err))
		return nil, apperrors.NewAppError(code.ErrorServerInternal, err)
	}
	return domainToDTO(note), nil
}

// Delete 删除笔记，未删除任何记录时返回未找到
func (s *noteService) Delete(ctx context.Context, uid string, id int64) error {
	if err := requireUID(uid); err != nil {
		return err
	}

	deleted, err := s.noteRepo.Delete(ctx, id, uid)
	if err != nil {
		s.logger.Error("note delete failed",
			zap.String(logger.FieldUserID, uid),
			zap.Int64(logger.FieldNoteID, id),
			zap.Error(err))
		return apperrors.NewAppError(code.ErrorServerInternal, err)
	}
	if !deleted {
		return apperrors.NewAppError(code.ErrorNotFound, nil)
	}
	return nil
}

// Stats 统计用户的笔记数量
func (s *noteService) Stats(ctx context.Context, uid string) (*dto.NoteStatsResponse, error) {
	if err := requireUID(uid); err != nil {
		return nil, err
	}

	count, err := s.noteRepo.CountByUID(ctx, uid)
	if err != nil {
		return nil, apperrors.NewAppError(code.ErrorServerInternal, err)
	}
	return &dto.NoteStatsResponse{Count: count}, nil
}

// requireUID 主体标识为空说明认证链路被绕过，直接拒绝
func requireUID(uid string) error {
	if uid == "" {
		return apperrors.NewAppError(code.ErrorNotUserAuthToken, nil)
	}
	return nil
}
