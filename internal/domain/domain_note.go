// Package domain 定义领域模型和接口
package domain

import "time"

// Note 笔记领域模型
// UID 是创建者的主体标识，所有单条记录操作都以 (ID, UID) 为访问键
type Note struct {
	ID        int64
	UID       string
	Title     string
	Content   string
	Summary   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasTag 判断笔记是否包含指定标签（精确匹配，不做子串匹配）
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// NoteFilter 列表过滤条件，各条件按 AND 组合
type NoteFilter struct {
	// Tag 标签精确匹配
	Tag string
	// Query 标题或内容的大小写不敏感子串匹配
	Query string
}

// IsZero 判断过滤条件是否为空
func (f NoteFilter) IsZero() bool {
	return f.Tag == "" && f.Query == ""
}
