package mysql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/myErrors"
)

// CategoryRepository 分类的持久化操作
type CategoryRepository interface {
	CreateCategory(ctx context.Context, db *gorm.DB, category *entities.Category) error
	// GetCategoryByID 未找到时返回 myErrors.ErrRepoNotFound
	GetCategoryByID(ctx context.Context, db *gorm.DB, id string) (*entities.Category, error)
	// GetCategoryByName 未找到时返回 myErrors.ErrRepoNotFound
	GetCategoryByName(ctx context.Context, name string) (*entities.Category, error)
	ListCategories(ctx context.Context) ([]*entities.Category, error)
	// EnsureCategories 幂等地创建给定名称的分类，已存在的跳过
	EnsureCategories(ctx context.Context, names []string) error
}

type categoryRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

func NewCategoryRepository(db *gorm.DB, logger *core.ZapLogger) CategoryRepository {
	return &categoryRepository{db: db, logger: logger}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, db *gorm.DB, category *entities.Category) error {
	return db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, db *gorm.DB, id string) (*entities.Category, error) {
	var category entities.Category
	if err := db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrRepoNotFound
		}
		return nil, fmt.Errorf("查询分类 %s 失败: %w", id, err)
	}
	return &category, nil
}

func (r *categoryRepository) GetCategoryByName(ctx context.Context, name string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrRepoNotFound
		}
		return nil, fmt.Errorf("按名称查询分类失败: %w", err)
	}
	return &category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		r.logger.Error("查询分类列表失败", zap.Error(err))
		return nil, fmt.Errorf("查询分类列表失败: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) EnsureCategories(ctx context.Context, names []string) error {
	for _, name := range names {
		category := entities.Category{Name: name}
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&category).Error
		if err != nil {
			r.logger.Error("初始化默认分类失败", zap.String("name", name), zap.Error(err))
			return fmt.Errorf("初始化默认分类 %s 失败: %w", name, err)
		}
	}
	return nil
}

// TagRepository 标签及帖子-标签关联的持久化操作
type TagRepository interface {
	CreateTag(ctx context.Context, db *gorm.DB, tag *entities.Tag) error
	// GetTagByName 未找到时返回 myErrors.ErrRepoNotFound
	GetTagByName(ctx context.Context, name string) (*entities.Tag, error)
	ListTags(ctx context.Context) ([]*entities.Tag, error)
	// FindOrCreateTags 按名称解析标签，不存在的创建，返回顺序与去重后的入参一致
	FindOrCreateTags(ctx context.Context, db *gorm.DB, names []string) ([]entities.Tag, error)
	// ReplacePostTags 用给定标签集合覆盖帖子的标签
	ReplacePostTags(ctx context.Context, db *gorm.DB, postID string, tagIDs []string) error
	// GetTagsByPostIDs 批量读取帖子的标签，按标签名排序
	GetTagsByPostIDs(ctx context.Context, db *gorm.DB, postIDs []string) (map[string][]entities.Tag, error)
}

type tagRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

func NewTagRepository(db *gorm.DB, logger *core.ZapLogger) TagRepository {
	return &tagRepository{db: db, logger: logger}
}

func (r *tagRepository) CreateTag(ctx context.Context, db *gorm.DB, tag *entities.Tag) error {
	return db.WithContext(ctx).Create(tag).Error
}

func (r *tagRepository) GetTagByName(ctx context.Context, name string) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrRepoNotFound
		}
		return nil, fmt.Errorf("按名称查询标签失败: %w", err)
	}
	return &tag, nil
}

func (r *tagRepository) ListTags(ctx context.Context) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		r.logger.Error("查询标签列表失败", zap.Error(err))
		return nil, fmt.Errorf("查询标签列表失败: %w", err)
	}
	return tags, nil
}

func (r *tagRepository) FindOrCreateTags(ctx context.Context, db *gorm.DB, names []string) ([]entities.Tag, error) {
	unique := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		unique = append(unique, n)
	}
	if len(unique) == 0 {
		return []entities.Tag{}, nil
	}

	var existing []entities.Tag
	if err := db.WithContext(ctx).Where("name IN ?", unique).Find(&existing).Error; err != nil {
		return nil, fmt.Errorf("查询标签失败: %w", err)
	}
	byName := make(map[string]entities.Tag, len(existing))
	for _, t := range existing {
		byName[t.Name] = t
	}

	result := make([]entities.Tag, 0, len(unique))
	for _, n := range unique {
		if t, ok := byName[n]; ok {
			result = append(result, t)
			continue
		}
		tag := entities.Tag{Name: n}
		if err := db.WithContext(ctx).Create(&tag).Error; err != nil {
			return nil, fmt.Errorf("创建标签 %s 失败: %w", n, err)
		}
		result = append(result, tag)
	}
	return result, nil
}

func (r *tagRepository) ReplacePostTags(ctx context.Context, db *gorm.DB, postID string, tagIDs []string) error {
	if err := db.WithContext(ctx).Where("post_id = ?", postID).Delete(&entities.PostTag{}).Error; err != nil {
		return fmt.Errorf("清除帖子 %s 的标签失败: %w", postID, err)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	links := make([]entities.PostTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		links = append(links, entities.PostTag{PostID: postID, TagID: id})
	}
	if err := db.WithContext(ctx).Create(&links).Error; err != nil {
		return fmt.Errorf("写入帖子 %s 的标签失败: %w", postID, err)
	}
	return nil
}

func (r *tagRepository) GetTagsByPostIDs(ctx context.Context, db *gorm.DB, postIDs []string) (map[string][]entities.Tag, error) {
	result := make(map[string][]entities.Tag, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}
	type row struct {
		PostID string
		entities.Tag
	}
	var rows []row
	err := db.WithContext(ctx).
		Table("post_tags").
		Select("post_tags.post_id, tags.id, tags.name, tags.created_at").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("post_tags.post_id IN ?", postIDs).
		Order("tags.name ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("批量查询帖子标签失败", zap.Int("postCount", len(postIDs)), zap.Error(err))
		return nil, fmt.Errorf("批量查询帖子标签失败: %w", err)
	}
	for _, rw := range rows {
		result[rw.PostID] = append(result[rw.PostID], rw.Tag)
	}
	return result, nil
}
