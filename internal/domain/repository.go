// Package domain 定义领域模型和接口
package domain

import "context"

// NoteRepository 笔记仓储接口
// 所有单条记录操作都必须同时匹配 (id, uid)，归属他人与不存在表现一致
type NoteRepository interface {
	// Create 创建笔记，ID 与 CreatedAt 由存储层生成
	Create(ctx context.Context, note *Note) (*Note, error)

	// List 获取用户的笔记列表，按创建顺序返回
	List(ctx context.Context, uid string, filter NoteFilter) ([]*Note, error)

	// GetByID 根据 (id, uid) 获取笔记
	GetByID(ctx context.Context, id int64, uid string) (*Note, error)

	// Update 整体替换 title/content/tags 并刷新 UpdatedAt
	Update(ctx context.Context, id int64, uid string, title, content string, tags []string) (*Note, error)

	// Delete 物理删除笔记，返回是否真的删除了记录
	Delete(ctx context.Context, id int64, uid string) (bool, error)

	// CountByUID 统计用户的笔记数量
	CountByUID(ctx context.Context, uid string) (int64, error)
}
