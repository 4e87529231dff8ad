package dependencies

import (
	"time"

	"github.com/Xushengqwer/go-common/core"

	"github.com/Xushengqwer/article_service/config"
)

// NewUserDirectory 开发环境返回跳过校验的实现，其余环境调用用户服务
func NewUserDirectory(cfg *config.ArticleConfig, logger *core.ZapLogger) UserDirectory {
	if cfg.ServerConfig.IsDevelopment() {
		logger.Info("开发模式: 用户校验已跳过")
		return NewBypassUserDirectory(logger)
	}
	return NewHTTPUserDirectory(cfg.CollaboratorConfig.UserServiceURL, collaboratorTimeout(cfg), logger)
}

// NewNotifier 开发环境返回空实现，其余环境调用通知服务
func NewNotifier(cfg *config.ArticleConfig, logger *core.ZapLogger) Notifier {
	if cfg.ServerConfig.IsDevelopment() {
		logger.Info("开发模式: 通知已关闭")
		return NewNoopNotifier(logger)
	}
	return NewHTTPNotifier(cfg.CollaboratorConfig.NotificationServiceURL, collaboratorTimeout(cfg), logger)
}

func collaboratorTimeout(cfg *config.ArticleConfig) time.Duration {
	return time.Duration(cfg.CollaboratorConfig.TimeoutSeconds) * time.Second
}
