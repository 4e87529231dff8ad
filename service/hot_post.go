package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/models/enums"
	"github.com/Xushengqwer/article_service/models/vo"
	"github.com/Xushengqwer/article_service/myErrors"
	"github.com/Xushengqwer/article_service/repo/mysql"
	"github.com/Xushengqwer/article_service/repo/redis"
)

// HotPostService 定义了点赞热榜的查询与重建接口。
type HotPostService interface {
	// GetHotPosts 按点赞数降序返回公开且已发布的帖子。
	// - 优先读取 Redis 热榜，热榜不可用或为空时回源数据库。
	// - limit 缺省 10，上限 50。
	GetHotPosts(ctx context.Context, limit int) ([]vo.PostVO, error)

	// RefreshRank 从数据库读取前 size 个帖子整体重建热榜。
	RefreshRank(ctx context.Context, size int) error
}

type hotPostService struct {
	db       *gorm.DB
	postRepo mysql.PostRepository
	tagRepo  mysql.TagRepository
	// rankCache 可为 nil
	rankCache redis.PostRankCache
	logger    *core.ZapLogger
}

// NewHotPostService 是 hotPostService 的构造函数。
func NewHotPostService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	tagRepo mysql.TagRepository,
	rankCache redis.PostRankCache,
	logger *core.ZapLogger,
) HotPostService {
	return &hotPostService{
		db:        db,
		postRepo:  postRepo,
		tagRepo:   tagRepo,
		rankCache: rankCache,
		logger:    logger,
	}
}

func (s *hotPostService) GetHotPosts(ctx context.Context, limit int) ([]vo.PostVO, error) {
	if limit <= 0 {
		limit = constant.DefaultHotLimit
	}
	if limit > constant.MaxHotLimit {
		limit = constant.MaxHotLimit
	}

	posts, err := s.fromRank(ctx, limit)
	if err != nil {
		if !errors.Is(err, myErrors.ErrCacheMiss) {
			s.logger.Warn("读取热榜失败，回源数据库", zap.Error(err))
		}
		posts, err = s.postRepo.ListTopLiked(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("查询热门帖子失败: %w", err)
		}
	}

	if err := attachTags(ctx, s.db, s.tagRepo, posts); err != nil {
		return nil, fmt.Errorf("加载帖子标签失败: %w", err)
	}
	return vo.NewPostVOs(posts), nil
}

// fromRank 按热榜顺序加载帖子，跳过已不可见的帖子
func (s *hotPostService) fromRank(ctx context.Context, limit int) ([]*entities.Post, error) {
	if s.rankCache == nil {
		return nil, myErrors.ErrCacheMiss
	}
	ids, err := s.rankCache.GetTopPostIDs(ctx, limit)
	if err != nil {
		return nil, err
	}
	rows, err := s.postRepo.GetPostsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entities.Post, len(rows))
	for _, p := range rows {
		byID[p.ID] = p
	}
	posts := make([]*entities.Post, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok || p.Visibility != enums.VisibilityPublic || p.Status != enums.StatusPublished {
			// 已删除或不再公开的帖子顺手移出热榜
			if err := s.rankCache.RemovePost(ctx, id); err != nil {
				s.logger.Warn("移出热榜失败", zap.String("postID", id), zap.Error(err))
			}
			continue
		}
		posts = append(posts, p)
	}
	if len(posts) == 0 {
		return nil, myErrors.ErrCacheMiss
	}
	return posts, nil
}

func (s *hotPostService) RefreshRank(ctx context.Context, size int) error {
	if s.rankCache == nil {
		return nil
	}
	if size <= 0 {
		size = 100
	}
	posts, err := s.postRepo.ListTopLiked(ctx, size)
	if err != nil {
		return fmt.Errorf("读取热榜数据源失败: %w", err)
	}
	return s.rankCache.RebuildRank(ctx, posts)
}
