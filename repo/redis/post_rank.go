package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/myErrors"
)

// PostRankCache 定义了点赞热榜 ZSet (`LikeRankKey`) 的读写接口。
// - 成员为帖子 ID，分数为帖子的 like_count。
// - 数据库是唯一的事实来源，热榜只是加速读取的派生数据。
type PostRankCache interface {
	// UpdateLikeScore 把帖子的分数写为最新的 like_count。
	UpdateLikeScore(ctx context.Context, postID string, likeCount int64) error

	// GetTopPostIDs 按分数降序返回前 limit 个帖子 ID。
	// - 热榜为空时返回 myErrors.ErrCacheMiss，上层需要回源数据库。
	GetTopPostIDs(ctx context.Context, limit int) ([]string, error)

	// RebuildRank 用给定帖子整体替换热榜。
	// - 先写入临时 Key，再 RENAME 覆盖，读方不会看到半成品。
	RebuildRank(ctx context.Context, posts []*entities.Post) error

	// RemovePost 把帖子移出热榜，用于删除等场景。
	RemovePost(ctx context.Context, postID string) error
}

type postRankCache struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewPostRankCache 是 postRankCache 的构造函数。
func NewPostRankCache(redisClient *redis.Client, logger *core.ZapLogger) PostRankCache {
	return &postRankCache{redisClient: redisClient, logger: logger}
}

func (c *postRankCache) UpdateLikeScore(ctx context.Context, postID string, likeCount int64) error {
	err := c.redisClient.ZAdd(ctx, constant.LikeRankKey, redis.Z{Score: float64(likeCount), Member: postID}).Err()
	if err != nil {
		c.logger.Error("更新热榜分数失败",
			zap.String("postID", postID),
			zap.Int64("likeCount", likeCount),
			zap.Error(err))
		return fmt.Errorf("更新热榜分数失败: %w", err)
	}
	return nil
}

func (c *postRankCache) GetTopPostIDs(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}
	ids, err := c.redisClient.ZRevRange(ctx, constant.LikeRankKey, 0, int64(limit-1)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("读取热榜失败", zap.Int("limit", limit), zap.Error(err))
		return nil, fmt.Errorf("读取热榜失败: %w", err)
	}
	if len(ids) == 0 {
		return nil, myErrors.ErrCacheMiss
	}
	return ids, nil
}

func (c *postRankCache) RebuildRank(ctx context.Context, posts []*entities.Post) error {
	if len(posts) == 0 {
		// 没有可上榜的帖子时直接清空
		if err := c.redisClient.Del(ctx, constant.LikeRankKey).Err(); err != nil {
			return fmt.Errorf("清空热榜失败: %w", err)
		}
		return nil
	}

	members := make([]redis.Z, 0, len(posts))
	for _, p := range posts {
		members = append(members, redis.Z{Score: float64(p.LikeCount), Member: p.ID})
	}

	_, err := c.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, constant.LikeRankTempKey)
		pipe.ZAdd(ctx, constant.LikeRankTempKey, members...)
		pipe.Rename(ctx, constant.LikeRankTempKey, constant.LikeRankKey)
		return nil
	})
	if err != nil {
		c.logger.Error("重建热榜失败", zap.Int("size", len(posts)), zap.Error(err))
		return fmt.Errorf("重建热榜失败: %w", err)
	}
	c.logger.Info("热榜重建完成", zap.Int("size", len(posts)))
	return nil
}

func (c *postRankCache) RemovePost(ctx context.Context, postID string) error {
	if err := c.redisClient.ZRem(ctx, constant.LikeRankKey, postID).Err(); err != nil {
		return fmt.Errorf("移出热榜失败: %w", err)
	}
	return nil
}
