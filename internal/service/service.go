// Package service 实现业务逻辑层
package service

import (
	"time"
)

// ServiceConfig 业务层配置
type ServiceConfig struct {
	// SummaryTimeout 摘要调用的单次超时
	// 独立于请求超时，保证增强调用不会拖住写入路径
	SummaryTimeout time.Duration
}
