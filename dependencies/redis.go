package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/article_service/config"
)

// InitRedis 创建 Redis 客户端并 Ping 一次。
// 未配置地址时返回 (nil, nil)，依赖 Redis 的功能会自动降级为直接读数据库。
func InitRedis(cfg *config.RedisConfig, logger *core.ZapLogger) (*redis.Client, error) {
	if cfg.Addr == "" {
		logger.Info("未配置 Redis 地址，热榜缓存与 outbox 中继将不可用")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Error("连接 Redis 失败", zap.String("addr", cfg.Addr), zap.Error(err))
		return nil, fmt.Errorf("连接 Redis '%s' 失败: %w", cfg.Addr, err)
	}
	logger.Info("成功连接到 Redis", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return client, nil
}
