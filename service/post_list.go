package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/models/enums"
	"github.com/Xushengqwer/article_service/models/vo"
	"github.com/Xushengqwer/article_service/myErrors"
	"github.com/Xushengqwer/article_service/repo/mysql"
)

// PostListService 定义了与获取帖子列表相关的服务接口。
type PostListService interface {
	// ListPosts 按条件分页获取帖子。
	// - 分页参数会被规整：page 最小为 1，per_page 缺省 10，上限 50。
	// - visibility 缺省为 PUBLIC，sort 只接受 latest / popular。
	ListPosts(ctx context.Context, query *dto.ListPostsQuery) (*vo.PostPageVO, error)
}

type postListService struct {
	db       *gorm.DB
	postRepo mysql.PostRepository
	tagRepo  mysql.TagRepository
	logger   *core.ZapLogger
}

// NewPostListService 创建一个新的 PostListService 实例。
func NewPostListService(db *gorm.DB, postRepo mysql.PostRepository, tagRepo mysql.TagRepository, logger *core.ZapLogger) PostListService {
	return &postListService{db: db, postRepo: postRepo, tagRepo: tagRepo, logger: logger}
}

func (s *postListService) ListPosts(ctx context.Context, query *dto.ListPostsQuery) (*vo.PostPageVO, error) {
	q := *query
	q.Normalize()
	if !enums.SortOrder(q.Sort).IsValid() {
		return nil, fmt.Errorf("%w: 无效的排序方式 %s", myErrors.ErrValidation, q.Sort)
	}
	if !enums.Visibility(q.Visibility).IsValid() {
		return nil, fmt.Errorf("%w: 无效的可见性 %s", myErrors.ErrValidation, q.Visibility)
	}
	if q.Status != "" && !enums.PostStatus(q.Status).IsValid() {
		return nil, fmt.Errorf("%w: 无效的状态 %s", myErrors.ErrValidation, q.Status)
	}

	posts, total, err := s.postRepo.ListPosts(ctx, &q)
	if err != nil {
		s.logger.Error("分页查询帖子失败", zap.Int("page", q.Page), zap.Int("perPage", q.PerPage), zap.Error(err))
		return nil, fmt.Errorf("查询帖子列表失败: %w", err)
	}
	if err := attachTags(ctx, s.db, s.tagRepo, posts); err != nil {
		return nil, fmt.Errorf("加载帖子标签失败: %w", err)
	}

	return &vo.PostPageVO{
		Posts: vo.NewPostVOs(posts),
		Meta:  vo.NewPageMeta(q.Page, q.PerPage, total),
	}, nil
}
