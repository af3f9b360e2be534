package dao

import (
	"errors"

	"gorm.io/gorm"
)

// errNotFound 返回存储层统一的未命中错误
func errNotFound() error {
	return gorm.ErrRecordNotFound
}

// IsNotFound 判断错误是否为记录未命中
// 归属他人的记录与不存在的记录都会走到这里，两者对调用方不可区分
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
