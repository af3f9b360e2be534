// Package model 定义数据模型
package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/haierkeys/smart-note-api/pkg/timex"

	"github.com/bytedance/sonic"
)

// Tags 标签集合，按提交顺序存储为 JSON 数组文本
type Tags []string

// Value 实现 driver.Valuer
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	return sonic.MarshalString([]string(t))
}

// Scan 实现 sql.Scanner
func (t *Tags) Scan(v interface{}) error {
	var raw []byte
	switch value := v.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	default:
		return fmt.Errorf("cannot scan %T into model.Tags", v)
	}
	if len(raw) == 0 {
		*t = Tags{}
		return nil
	}
	return sonic.Unmarshal(raw, (*[]string)(t))
}

// Note 笔记数据库模型
type Note struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UID       string     `gorm:"column:uid;index;size:64;not null" json:"uid"`
	Title     string     `gorm:"column:title;size:255;not null" json:"title"`
	Content   string     `gorm:"column:content;type:text" json:"content"`
	Summary   string     `gorm:"column:summary;type:text" json:"summary"`
	Tags      Tags       `gorm:"column:tags;type:text" json:"tags"`
	CreatedAt timex.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName 返回表名
func (*Note) TableName() string {
	return "note"
}
