package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/myErrors"
)

// MediaRepository 帖子图片记录的持久化操作
type MediaRepository interface {
	CreateMedia(ctx context.Context, db *gorm.DB, media *entities.PostMedia) error
	// GetMedia 要求图片属于给定帖子，否则返回 myErrors.ErrRepoNotFound
	GetMedia(ctx context.Context, db *gorm.DB, postID, mediaID string) (*entities.PostMedia, error)
	DeleteMedia(ctx context.Context, db *gorm.DB, mediaID string) error
	// ListMediaByPostID 按上传时间倒序返回
	ListMediaByPostID(ctx context.Context, postID string) ([]*entities.PostMedia, error)
}

type mediaRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

func NewMediaRepository(db *gorm.DB, logger *core.ZapLogger) MediaRepository {
	return &mediaRepository{db: db, logger: logger}
}

func (r *mediaRepository) CreateMedia(ctx context.Context, db *gorm.DB, media *entities.PostMedia) error {
	if err := db.WithContext(ctx).Create(media).Error; err != nil {
		r.logger.Error("保存图片记录失败", zap.String("postID", media.PostID), zap.Error(err))
		return fmt.Errorf("保存图片记录失败: %w", err)
	}
	return nil
}

func (r *mediaRepository) GetMedia(ctx context.Context, db *gorm.DB, postID, mediaID string) (*entities.PostMedia, error) {
	var media entities.PostMedia
	err := db.WithContext(ctx).Where("id = ? AND post_id = ?", mediaID, postID).First(&media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrRepoNotFound
		}
		return nil, fmt.Errorf("查询图片 %s 失败: %w", mediaID, err)
	}
	return &media, nil
}

func (r *mediaRepository) DeleteMedia(ctx context.Context, db *gorm.DB, mediaID string) error {
	if err := db.WithContext(ctx).Where("id = ?", mediaID).Delete(&entities.PostMedia{}).Error; err != nil {
		return fmt.Errorf("删除图片记录 %s 失败: %w", mediaID, err)
	}
	return nil
}

func (r *mediaRepository) ListMediaByPostID(ctx context.Context, postID string) ([]*entities.PostMedia, error) {
	var list []*entities.PostMedia
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").Order("id DESC").
		Find(&list).Error
	if err != nil {
		r.logger.Error("查询帖子图片失败", zap.String("postID", postID), zap.Error(err))
		return nil, fmt.Errorf("查询帖子图片失败: %w", err)
	}
	return list, nil
}
