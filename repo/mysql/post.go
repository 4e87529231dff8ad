package mysql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/models/enums"
	"github.com/Xushengqwer/article_service/myErrors"
)

// 计数器列名，只允许这些列参与原子增减
const (
	columnViewCount    = "view_count"
	columnLikeCount    = "like_count"
	columnCommentCount = "comment_count"
)

// PostRepository 定义了帖子数据在 MySQL 中的持久化操作接口。
// 需要参与事务的方法都接收 db 参数，服务层传入事务对象 tx。
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录，主键在 BeforeCreate 中生成。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// GetPostByID 根据 ID 读取帖子并预加载分类，不区分状态。
	// - 未找到时返回 myErrors.ErrRepoNotFound。
	GetPostByID(ctx context.Context, db *gorm.DB, id string) (*entities.Post, error)

	// LockActivePost 以 SELECT ... FOR UPDATE 锁定一个未删除的帖子行。
	// - 用于点赞切换、更新等读-改-写流程，保证同一帖子上的并发写入串行化。
	LockActivePost(ctx context.Context, db *gorm.DB, id string) (*entities.Post, error)

	// IncrementViewCount 原子地把浏览量加一，帖子不存在时返回 myErrors.ErrRepoNotFound。
	IncrementViewCount(ctx context.Context, db *gorm.DB, id string) error

	// AdjustLikeCount 原子地调整点赞数，减少时下限为 0。
	AdjustLikeCount(ctx context.Context, db *gorm.DB, id string, delta int64) error

	// AdjustCommentCount 原子地调整评论数，减少时下限为 0。
	AdjustCommentCount(ctx context.Context, db *gorm.DB, id string, delta int64) error

	// UpdatePostFields 按列名更新帖子，总会刷新 updated_at。
	UpdatePostFields(ctx context.Context, db *gorm.DB, id string, fields map[string]interface{}) error

	// SoftDeletePost 把帖子状态置为 DELETED，行记录保留。
	SoftDeletePost(ctx context.Context, db *gorm.DB, id string) error

	// ListPosts 按条件分页查询，返回当前页与符合条件的总数。
	ListPosts(ctx context.Context, query *dto.ListPostsQuery) ([]*entities.Post, int64, error)

	// GetPostsByIDs 批量读取帖子，结果顺序不保证。
	GetPostsByIDs(ctx context.Context, ids []string) ([]*entities.Post, error)

	// ListTopLiked 读取公开且已发布的帖子中点赞数最高的 limit 条。
	ListTopLiked(ctx context.Context, limit int) ([]*entities.Post, error)
}

// postRepository 是 PostRepository 接口针对 MySQL 的具体实现。
type postRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *core.ZapLogger) PostRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

func (r *postRepository) GetPostByID(ctx context.Context, db *gorm.DB, id string) (*entities.Post, error) {
	var post entities.Post
	err := db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrRepoNotFound
		}
		r.logger.Error("查询帖子失败", zap.String("postID", id), zap.Error(err))
		return nil, fmt.Errorf("查询帖子 %s 失败: %w", id, err)
	}
	return &post, nil
}

func (r *postRepository) LockActivePost(ctx context.Context, db *gorm.DB, id string) (*entities.Post, error) {
	var post entities.Post
	err := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND status <> ?", id, enums.StatusDeleted).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrRepoNotFound
		}
		r.logger.Error("锁定帖子行失败", zap.String("postID", id), zap.Error(err))
		return nil, fmt.Errorf("锁定帖子 %s 失败: %w", id, err)
	}
	return &post, nil
}

func (r *postRepository) IncrementViewCount(ctx context.Context, db *gorm.DB, id string) error {
	result := db.WithContext(ctx).Model(&entities.Post{}).
		Where("id = ?", id).
		UpdateColumn(columnViewCount, gorm.Expr(columnViewCount+" + ?", 1))
	if result.Error != nil {
		r.logger.Error("增加浏览量失败", zap.String("postID", id), zap.Error(result.Error))
		return fmt.Errorf("增加帖子 %s 浏览量失败: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return myErrors.ErrRepoNotFound
	}
	return nil
}

func (r *postRepository) AdjustLikeCount(ctx context.Context, db *gorm.DB, id string, delta int64) error {
	return r.adjustCounter(ctx, db, id, columnLikeCount, delta)
}

func (r *postRepository) AdjustCommentCount(ctx context.Context, db *gorm.DB, id string, delta int64) error {
	return r.adjustCounter(ctx, db, id, columnCommentCount, delta)
}

// adjustCounter 用单条 UPDATE 完成增减，避免读-改-写丢失更新；减少时用 CASE 保证不低于 0
func (r *postRepository) adjustCounter(ctx context.Context, db *gorm.DB, id, column string, delta int64) error {
	if delta == 0 {
		return nil
	}
	var expr clause.Expr
	if delta > 0 {
		expr = gorm.Expr(column+" + ?", delta)
	} else {
		dec := -delta
		expr = gorm.Expr("CASE WHEN "+column+" >= ? THEN "+column+" - ? ELSE 0 END", dec, dec)
	}
	result := db.WithContext(ctx).Model(&entities.Post{}).Where("id = ?", id).UpdateColumn(column, expr)
	if result.Error != nil {
		r.logger.Error("调整帖子计数失败",
			zap.String("postID", id),
			zap.String("column", column),
			zap.Int64("delta", delta),
			zap.Error(result.Error))
		return fmt.Errorf("调整帖子 %s 的 %s 失败: %w", id, column, result.Error)
	}
	if result.RowsAffected == 0 {
		return myErrors.ErrRepoNotFound
	}
	return nil
}

func (r *postRepository) UpdatePostFields(ctx context.Context, db *gorm.DB, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		r.logger.Info("没有需要更新的帖子字段", zap.String("postID", id))
		return nil
	}
	fields["updated_at"] = time.Now()
	if err := db.WithContext(ctx).Model(&entities.Post{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		r.logger.Error("更新帖子失败", zap.String("postID", id), zap.Error(err))
		return fmt.Errorf("更新帖子 %s 失败: %w", id, err)
	}
	return nil
}

func (r *postRepository) SoftDeletePost(ctx context.Context, db *gorm.DB, id string) error {
	return r.UpdatePostFields(ctx, db, id, map[string]interface{}{"status": enums.StatusDeleted})
}

// likeEscaper 转义 LIKE 通配符，转义符为 '!'
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike 让关键字按字面匹配
func escapeLike(q string) string {
	return likeEscaper.Replace(q)
}

func (r *postRepository) ListPosts(ctx context.Context, query *dto.ListPostsQuery) ([]*entities.Post, int64, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Post{})

	if query.Visibility != "" {
		tx = tx.Where("visibility = ?", query.Visibility)
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}
	if query.CategoryID != "" {
		tx = tx.Where("category_id = ?", query.CategoryID)
	}
	if query.Q != "" {
		like := "%" + escapeLike(query.Q) + "%"
		tx = tx.Where("(title LIKE ? ESCAPE '!' OR content_md LIKE ? ESCAPE '!')", like, like)
	}

	// Session 使条件可以在统计与分页查询之间复用
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		r.logger.Error("统计帖子数量失败", zap.Error(err))
		return nil, 0, fmt.Errorf("统计帖子数量失败: %w", err)
	}
	if total == 0 {
		return []*entities.Post{}, 0, nil
	}

	page := tx
	if enums.SortOrder(query.Sort) == enums.SortPopular {
		page = page.Order("like_count DESC").Order("created_at DESC")
	} else {
		page = page.Order("created_at DESC")
	}
	page = page.Order("id DESC")

	var posts []*entities.Post
	if err := page.Preload("Category").Offset(query.Offset()).Limit(query.PerPage).Find(&posts).Error; err != nil {
		r.logger.Error("分页查询帖子失败", zap.Error(err))
		return nil, 0, fmt.Errorf("分页查询帖子失败: %w", err)
	}
	return posts, total, nil
}

func (r *postRepository) GetPostsByIDs(ctx context.Context, ids []string) ([]*entities.Post, error) {
	if len(ids) == 0 {
		return []*entities.Post{}, nil
	}
	var posts []*entities.Post
	if err := r.db.WithContext(ctx).Preload("Category").Where("id IN ?", ids).Find(&posts).Error; err != nil {
		r.logger.Error("批量查询帖子失败", zap.Int("count", len(ids)), zap.Error(err))
		return nil, fmt.Errorf("批量查询帖子失败: %w", err)
	}
	return posts, nil
}

func (r *postRepository) ListTopLiked(ctx context.Context, limit int) ([]*entities.Post, error) {
	var posts []*entities.Post
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("visibility = ? AND status = ?", enums.VisibilityPublic, enums.StatusPublished).
		Order("like_count DESC").Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		r.logger.Error("查询点赞榜帖子失败", zap.Int("limit", limit), zap.Error(err))
		return nil, fmt.Errorf("查询点赞榜帖子失败: %w", err)
	}
	return posts, nil
}
