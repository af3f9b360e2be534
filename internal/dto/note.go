// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

// NoteCreateRequest 创建笔记的请求参数
type NoteCreateRequest struct {
	Title   string   `json:"title" form:"title" binding:"required"`
	Content string   `json:"content" form:"content" binding:"required"`
	Tags    []string `json:"tags" form:"tags"`
}

// NoteUpdateRequest 更新笔记的请求参数
// title/content/tags 整体替换，不做合并
type NoteUpdateRequest struct {
	Title   string   `json:"title" form:"title" binding:"required"`
	Content string   `json:"content" form:"content" binding:"required"`
	Tags    []string `json:"tags" form:"tags"`
}

// NoteListRequest 获取笔记列表的过滤参数
type NoteListRequest struct {
	Tag   string `json:"tag" form:"tag"`
	Query string `json:"q" form:"q"`
}

// NoteURI 单条笔记操作的路径参数
type NoteURI struct {
	ID int64 `uri:"id" binding:"required"`
}

// NoteStatsResponse 用户笔记统计
type NoteStatsResponse struct {
	Count int64 `json:"count"`
}
