package dao

import (
	"context"

	"github.com/haierkeys/smart-note-api/internal/domain"
	"github.com/haierkeys/smart-note-api/internal/model"
	"github.com/haierkeys/smart-note-api/pkg/timex"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// whereClause 单个参数化查询条件
// 用户输入只通过 args 绑定，不拼进查询文本
type whereClause struct {
	expr string
	args []interface{}
}

// buildListClauses 把归属与可选过滤条件折叠为参数化条件列表
// 基础条件恒为 uid 匹配，q 追加一个 AND 条件
// tag 不参与 SQL：tags 列是 JSON 数组文本，元素内的引号与反斜杠会被转义，
// LIKE 模式无法可靠命中，精确的元素匹配由扫描后的 HasTag 完成
func buildListClauses(uid string, filter domain.NoteFilter) []whereClause {
	clauses := []whereClause{
		{expr: "uid = ?", args: []interface{}{uid}},
	}
	if filter.Query != "" {
		clauses = append(clauses, whereClause{
			expr: "(lower(title) LIKE lower(?) OR lower(content) LIKE lower(?))",
			args: []interface{}{"%" + filter.Query + "%", "%" + filter.Query + "%"},
		})
	}
	return clauses
}

// toDomain 将数据库模型转换为领域模型
func toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:        m.ID,
		UID:       m.UID,
		Title:     m.Title,
		Content:   m.Content,
		Summary:   m.Summary,
		Tags:      append([]string{}, m.Tags...),
		CreatedAt: m.CreatedAt.Time(),
		UpdatedAt: m.UpdatedAt.Time(),
	}
}

// toModel 将领域模型转换为数据库模型
func toModel(n *domain.Note) *model.Note {
	if n == nil {
		return nil
	}
	return &model.Note{
		ID:        n.ID,
		UID:       n.UID,
		Title:     n.Title,
		Content:   n.Content,
		Summary:   n.Summary,
		Tags:      model.Tags(n.Tags),
		CreatedAt: timex.Time(n.CreatedAt),
		UpdatedAt: timex.Time(n.UpdatedAt),
	}
}

// Create 创建笔记
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m := toModel(note)
	m.ID = 0
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()

	if err := r.dao.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return toDomain(m), nil
}

// List 获取用户的笔记列表
// 返回顺序固定为创建顺序（id 升序），保证同一存储实例内结果可复现
func (r *noteRepository) List(ctx context.Context, uid string, filter domain.NoteFilter) ([]*domain.Note, error) {
	tx := r.dao.db.WithContext(ctx).Model(&model.Note{})
	for _, clause := range buildListClauses(uid, filter) {
		tx = tx.Where(clause.expr, clause.args...)
	}

	var rows []*model.Note
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	notes := make([]*domain.Note, 0, len(rows))
	for _, m := range rows {
		n := toDomain(m)
		// 标签过滤在这里做精确的成员匹配
		if filter.Tag != "" && !n.HasTag(filter.Tag) {
			continue
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// GetByID 根据 (id, uid) 获取笔记
func (r *noteRepository) GetByID(ctx context.Context, id int64, uid string) (*domain.Note, error) {
	var m model.Note
	err := r.dao.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomain(&m), nil
}

// Update 整体替换 title/content/tags 并刷新 UpdatedAt
// 未命中 (id, uid) 时返回 gorm.ErrRecordNotFound
func (r *noteRepository) Update(ctx context.Context, id int64, uid string, title, content string, tags []string) (*domain.Note, error) {
	res := r.dao.db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]interface{}{
			"title":      title,
			"content":    content,
			"tags":       model.Tags(tags),
			"updated_at": timex.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errNotFound()
	}
	return r.GetByID(ctx, id, uid)
}

// Delete 物理删除笔记，返回是否真的删除了记录
func (r *noteRepository) Delete(ctx context.Context, id int64, uid string) (bool, error) {
	res := r.dao.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&model.Note{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CountByUID 统计用户的笔记数量
func (r *noteRepository) CountByUID(ctx context.Context, uid string) (int64, error) {
	var count int64
	err := r.dao.db.WithContext(ctx).Model(&model.Note{}).
		Where("uid = ?", uid).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
