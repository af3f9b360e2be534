// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"fmt"

	"github.com/haierkeys/smart-note-api/internal/dao"
	"github.com/haierkeys/smart-note-api/internal/domain"
	"github.com/haierkeys/smart-note-api/internal/service"
	pkgapp "github.com/haierkeys/smart-note-api/pkg/app"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	NoteRepo domain.NoteRepository

	// Service 层
	noteService service.NoteService
	summarizer  service.Summarizer

	// 基础设施组件
	tokenManager pkgapp.TokenManager
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config: cfg,
		logger: logger,
		DB:     db,
	}

	// 初始化 DAO
	a.Dao = dao.New(db)

	// 初始化 TokenManager
	a.tokenManager = pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Issuer:    cfg.Security.TokenIssuer,
		Expiry:    cfg.GetTokenExpiry(),
	})

	// 初始化 Repository 层
	a.NoteRepo = dao.NewNoteRepository(a.Dao)

	// 初始化摘要网关
	a.summarizer = service.NewSummarizer(service.SummarizerConfig{
		APIKey:  cfg.Summarizer.APIKey,
		BaseURL: cfg.Summarizer.BaseURL,
		Model:   cfg.Summarizer.Model,
		Timeout: cfg.GetSummarizerTimeout(),
	}, logger)

	// 初始化 Service 层（依赖注入）
	svcConfig := &service.ServiceConfig{
		SummaryTimeout: cfg.GetSummarizerTimeout(),
	}
	a.noteService = service.NewNoteService(a.NoteRepo, a.summarizer, logger, svcConfig)

	logger.Info("App container initialized successfully",
		zap.String("authMode", cfg.Security.AuthMode),
		zap.String("database", cfg.Database.Type))

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// NoteService 获取笔记服务
func (a *App) NoteService() service.NoteService {
	return a.noteService
}

// TokenManager 获取 Token 管理器
func (a *App) TokenManager() pkgapp.TokenManager {
	return a.tokenManager
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// IsProductionMode 是否为生产模式
// 根据日志配置中的 Production 字段判断
func (a *App) IsProductionMode() bool {
	return a.config.Log.Production
}
