package routers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/haierkeys/smart-note-api/internal/app"
	"github.com/haierkeys/smart-note-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type noteBody struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
}

type resBody struct {
	Code   int             `json:"code"`
	Status bool            `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func testConfig(authMode string) *app.AppConfig {
	return &app.AppConfig{
		Server: app.ServerConfig{RunMode: "release"},
		Database: app.DatabaseConfig{
			Type: "sqlite",
			Path: ":memory:",
		},
		Security: app.SecurityConfig{
			AuthTokenKey:    "test-secret",
			TokenExpiry:     "1h",
			TokenIssuer:     "smart-note-api",
			AuthMode:        authMode,
			StaticIdentity:  "dev-user",
			TokenMintEnable: false,
		},
		Summarizer: app.SummarizerConfig{Timeout: "5s"},
		App:        app.AppSettings{DefaultContextTimeout: 30},
		Tracer:     app.TracerConfig{Enabled: true, Header: "X-Trace-ID"},
	}
}

// newTestRouter 构建完整的路由引擎，摘要网关未配置密钥，降级为空摘要
func newTestRouter(t *testing.T, cfg *app.AppConfig) (*gin.Engine, *app.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	})
	require.NoError(t, err)

	// 内存库的每个连接都是独立实例，限制连接池为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, model.AutoMigrate(db, ""))

	appContainer, err := app.NewApp(cfg, zap.NewNop(), db)
	require.NoError(t, err)

	uni := ut.New(en.New(), en.New(), zh.New())

	return NewRouter(appContainer, uni), appContainer
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeNote(t *testing.T, w *httptest.ResponseRecorder) noteBody {
	t.Helper()
	var res resBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	var note noteBody
	require.NoError(t, json.Unmarshal(res.Data, &note))
	return note
}

func decodeNotes(t *testing.T, w *httptest.ResponseRecorder) []noteBody {
	t.Helper()
	var res resBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	var notes []noteBody
	require.NoError(t, json.Unmarshal(res.Data, &notes))
	return notes
}

func TestNotesLifecycle(t *testing.T) {
	r, appContainer := newTestRouter(t, testConfig("verify"))

	tokenA, err := appContainer.TokenManager().Generate("user-a")
	require.NoError(t, err)
	tokenB, err := appContainer.TokenManager().Generate("user-b")
	require.NoError(t, err)

	// 创建两条笔记
	w := doJSON(t, r, http.MethodPost, "/api/notes", tokenA, map[string]interface{}{
		"title":   "First note",
		"content": "hello world",
		"tags":    []string{"work", "go"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decodeNote(t, w)
	assert.NotZero(t, first.ID)
	assert.Equal(t, "First note", first.Title)
	assert.Equal(t, "", first.Summary)

	w = doJSON(t, r, http.MethodPost, "/api/notes", tokenA, map[string]interface{}{
		"title":   "Second note",
		"content": "groceries list",
		"tags":    []string{"home"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	second := decodeNote(t, w)

	// 列表按创建顺序返回
	w = doJSON(t, r, http.MethodGet, "/api/notes", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	notes := decodeNotes(t, w)
	require.Len(t, notes, 2)
	assert.Equal(t, first.ID, notes[0].ID)
	assert.Equal(t, second.ID, notes[1].ID)

	// tag 过滤
	w = doJSON(t, r, http.MethodGet, "/api/notes?tag=work", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	notes = decodeNotes(t, w)
	require.Len(t, notes, 1)
	assert.Equal(t, first.ID, notes[0].ID)

	// q 模糊搜索，大小写不敏感
	w = doJSON(t, r, http.MethodGet, "/api/notes?q=GROCERIES", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	notes = decodeNotes(t, w)
	require.Len(t, notes, 1)
	assert.Equal(t, second.ID, notes[0].ID)

	// 单条读取
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/notes/%d", first.ID), tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeNote(t, w)
	assert.Equal(t, "hello world", got.Content)

	// 整体替换更新
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/notes/%d", first.ID), tokenA, map[string]interface{}{
		"title":   "Renamed",
		"content": "updated content",
		"tags":    []string{"archive"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeNote(t, w)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, []string{"archive"}, updated.Tags)

	// 他人访问等同于不存在
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/notes/%d", first.ID), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/notes/%d", first.ID), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 删除返回 204 且无响应体
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/notes/%d", first.ID), tokenA, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	// 删除后读取与再次删除都返回 404
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/notes/%d", first.ID), tokenA, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/notes/%d", first.ID), tokenA, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotesRequireAuthentication(t *testing.T) {
	r, _ := newTestRouter(t, testConfig("verify"))

	w := doJSON(t, r, http.MethodGet, "/api/notes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/notes", "garbage-token", map[string]interface{}{
		"title": "t", "content": "c",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNotesValidation(t *testing.T) {
	r, appContainer := newTestRouter(t, testConfig("verify"))

	token, err := appContainer.TokenManager().Generate("user-a")
	require.NoError(t, err)

	// 缺少必填字段
	w := doJSON(t, r, http.MethodPost, "/api/notes", token, map[string]interface{}{
		"title": "only title",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 非数字 ID
	w = doJSON(t, r, http.MethodGet, "/api/notes/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaticAuthMode(t *testing.T) {
	r, _ := newTestRouter(t, testConfig("static"))

	// static 模式下无凭证也会解析出固定身份
	w := doJSON(t, r, http.MethodPost, "/api/notes", "", map[string]interface{}{
		"title":   "dev note",
		"content": "local only",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/notes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	notes := decodeNotes(t, w)
	require.Len(t, notes, 1)
	assert.Equal(t, "dev note", notes[0].Title)
}

func TestStatsEndpoint(t *testing.T) {
	r, appContainer := newTestRouter(t, testConfig("verify"))

	token, err := appContainer.TokenManager().Generate("user-a")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/notes", token, map[string]interface{}{
			"title":   fmt.Sprintf("note %d", i),
			"content": "c",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res resBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	var stats struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &stats))
	assert.Equal(t, int64(3), stats.Count)
}

func TestTokenMintEndpoint(t *testing.T) {
	// 默认关闭
	r, _ := newTestRouter(t, testConfig("verify"))
	w := doJSON(t, r, http.MethodPost, "/api/auth/token", "", map[string]interface{}{
		"userId": "user-a",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 显式开启后可以签发并立即使用
	cfg := testConfig("verify")
	cfg.Security.TokenMintEnable = true
	r, _ = newTestRouter(t, cfg)

	w = doJSON(t, r, http.MethodPost, "/api/auth/token", "", map[string]interface{}{
		"userId": "user-a",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	var minted struct {
		UserID string `json:"userId"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &minted))
	assert.Equal(t, "user-a", minted.UserID)
	require.NotEmpty(t, minted.Token)

	w = doJSON(t, r, http.MethodPost, "/api/notes", minted.Token, map[string]interface{}{
		"title": "minted", "content": "works",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestVersionEndpointIsPublic(t *testing.T) {
	r, _ := newTestRouter(t, testConfig("verify"))

	w := doJSON(t, r, http.MethodGet, "/api/version", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "version")
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t, testConfig("verify"))

	w := doJSON(t, r, http.MethodGet, "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTraceIDHeaderPropagation(t *testing.T) {
	r, _ := newTestRouter(t, testConfig("verify"))

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get("X-Trace-ID"))
}

func TestLangIsPerRequest(t *testing.T) {
	r, _ := newTestRouter(t, testConfig("verify"))

	// 并发请求各自带不同语言，错误消息不得串台
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			w := doJSON(t, r, http.MethodGet, "/api/notes?lang=zh_cn", "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "缺少用户认证令牌")
		}()
		go func() {
			defer wg.Done()
			w := doJSON(t, r, http.MethodGet, "/api/notes?lang=en", "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Missing Auth Token")
		}()
	}
	wg.Wait()
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := testConfig("verify")
	cfg.Security.TokenExpiry = "1s"
	r, appContainer := newTestRouter(t, cfg)

	token, err := appContainer.TokenManager().Generate("user-a")
	require.NoError(t, err)

	time.Sleep(1500 * time.Millisecond)

	w := doJSON(t, r, http.MethodGet, "/api/notes", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
