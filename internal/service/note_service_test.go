package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/haierkeys/smart-note-api/internal/dao"
	"github.com/haierkeys/smart-note-api/internal/dto"
	"github.com/haierkeys/smart-note-api/internal/model"
	"github.com/haierkeys/smart-note-api/pkg/code"
	apperrors "github.com/haierkeys/smart-note-api/pkg/errors"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// stubSummarizer 固定返回配置值的摘要桩
type stubSummarizer struct {
	summary string
	err     error
	calls   int
}

func (s *stubSummarizer) Summarize(ctx context.Context, content string) (string, error) {
	s.calls++
	return s.summary, s.err
}

func newTestService(t *testing.T, summarizer Summarizer) NoteService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	})
	require.NoError(t, err)

	// 内存库的每个连接都是独立实例，限制连接池为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, model.AutoMigrate(db, ""))

	repo := dao.NewNoteRepository(dao.New(db))
	cfg := &ServiceConfig{SummaryTimeout: 5 * time.Second}
	return NewNoteService(repo, summarizer, zap.NewNop(), cfg)
}

func appErrorCode(t *testing.T, err error) int {
	t.Helper()
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	return appErr.Code
}

func TestNoteServiceCreateWithSummary(t *testing.T) {
	summarizer := &stubSummarizer{summary: "a short summary"}
	svc := newTestService(t, summarizer)

	note, err := svc.Create(context.Background(), "user-a", &dto.NoteCreateRequest{
		Title:   "My note",
		Content: "Some long content worth summarizing.",
		Tags:    []string{"work"},
	})

	assert.Nil(t, err)
	assert.NotZero(t, note.ID)
	assert.Equal(t, "a short summary", note.Summary)
	assert.Equal(t, []string{"work"}, note.Tags)
	assert.Equal(t, 1, summarizer.calls)
}

func TestNoteServiceCreateSummarizerFailureIsNotFatal(t *testing.T) {
	summarizer := &stubSummarizer{err: errors.New("upstream unavailable")}
	svc := newTestService(t, summarizer)

	note, err := svc.Create(context.Background(), "user-a", &dto.NoteCreateRequest{
		Title:   "Still created",
		Content: "content",
	})

	// 摘要失败降级为空串，笔记照常落库
	assert.Nil(t, err)
	assert.NotZero(t, note.ID)
	assert.Equal(t, "", note.Summary)

	got, err := svc.Get(context.Background(), "user-a", note.ID)
	assert.Nil(t, err)
	assert.Equal(t, "", got.Summary)
}

func TestNoteServiceCreateValidation(t *testing.T) {
	summarizer := &stubSummarizer{summary: "never used"}
	svc := newTestService(t, summarizer)

	_, err := svc.Create(context.Background(), "user-a", &dto.NoteCreateRequest{
		Title:   "   ",
		Content: "content",
	})
	assert.Equal(t, code.ErrorInvalidParams.Code(), appErrorCode(t, err))

	_, err = svc.Create(context.Background(), "user-a", &dto.NoteCreateRequest{
		Title:   "title",
		Content: "",
	})
	assert.Equal(t, code.ErrorInvalidParams.Code(), appErrorCode(t, err))

	// 校验失败时不发起摘要调用
	assert.Equal(t, 0, summarizer.calls)
}

func TestNoteServiceRequiresPrincipal(t *testing.T) {
	svc := newTestService(t, &stubSummarizer{})

	_, err := svc.Create(context.Background(), "", &dto.NoteCreateRequest{Title: "t", Content: "c"})
	assert.Equal(t, code.ErrorNotUserAuthToken.Code(), appErrorCode(t, err))

	_, err = svc.List(context.Background(), "", &dto.NoteListRequest{})
	assert.Equal(t, code.ErrorNotUserAuthToken.Code(), appErrorCode(t, err))
}

func TestNoteServiceNotFoundMapping(t *testing.T) {
	svc := newTestService(t, &stubSummarizer{})
	ctx := context.Background()

	_, err := svc.Get(ctx, "user-a", 9999)
	assert.Equal(t, code.ErrorNotFound.Code(), appErrorCode(t, err))

	_, err = svc.Update(ctx, "user-a", 9999, &dto.NoteUpdateRequest{Title: "t", Content: "c"})
	assert.Equal(t, code.ErrorNotFound.Code(), appErrorCode(t, err))

	err = svc.Delete(ctx, "user-a", 9999)
	assert.Equal(t, code.ErrorNotFound.Code(), appErrorCode(t, err))
}

func TestNoteServiceCrossUserLooksLikeNotFound(t *testing.T) {
	svc := newTestService(t, &stubSummarizer{summary: "s"})
	ctx := context.Background()

	note, err := svc.Create(ctx, "user-a", &dto.NoteCreateRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "user-b", note.ID)
	assert.Equal(t, code.ErrorNotFound.Code(), appErrorCode(t, err))

	err = svc.Delete(ctx, "user-b", note.ID)
	assert.Equal(t, code.ErrorNotFound.Code(), appErrorCode(t, err))
}

func TestNoteServiceUpdateKeepsSummary(t *testing.T) {
	svc := newTestService(t, &stubSummarizer{summary: "original summary"})
	ctx := context.Background()

	note, err := svc.Create(ctx, "user-a", &dto.NoteCreateRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "user-a", note.ID, &dto.NoteUpdateRequest{
		Title:   "new title",
		Content: "new content",
		Tags:    []string{"x"},
	})
	assert.Nil(t, err)
	assert.Equal(t, "new title", updated.Title)
	// 更新不重新生成摘要，保留创建时的值
	assert.Equal(t, "original summary", updated.Summary)
}

func TestNoteServiceStats(t *testing.T) {
	svc := newTestService(t, &stubSummarizer{})
	ctx := context.Background()

	_, err := svc.Create(ctx, "user-a", &dto.NoteCreateRequest{Title: "1", Content: "c"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-a", &dto.NoteCreateRequest{Title: "2", Content: "c"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-b", &dto.NoteCreateRequest{Title: "3", Content: "c"})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, "user-a")
	assert.Nil(t, err)
	assert.Equal(t, int64(2), stats.Count)
}
