package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Xushengqwer/article_service/constant"
)

// OutboxCursor 保存 outbox 中继已投递的最大事件 ID
type OutboxCursor interface {
	// GetCursor 尚未投递过任何事件时返回 0
	GetCursor(ctx context.Context) (uint64, error)
	SetCursor(ctx context.Context, id uint64) error
}

type outboxCursor struct {
	redisClient *redis.Client
}

func NewOutboxCursor(redisClient *redis.Client) OutboxCursor {
	return &outboxCursor{redisClient: redisClient}
}

func (c *outboxCursor) GetCursor(ctx context.Context) (uint64, error) {
	v, err := c.redisClient.Get(ctx, constant.OutboxRelayCursorKey).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("读取 outbox 游标失败: %w", err)
	}
	return v, nil
}

func (c *outboxCursor) SetCursor(ctx context.Context, id uint64) error {
	if err := c.redisClient.Set(ctx, constant.OutboxRelayCursorKey, id, 0).Err(); err != nil {
		return fmt.Errorf("写入 outbox 游标失败: %w", err)
	}
	return nil
}
