package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/models/enums"
	"github.com/Xushengqwer/article_service/myErrors"
)

// ReactionRepository 用户表态的持久化操作，全部方法都在调用方的事务内执行
type ReactionRepository interface {
	// GetReaction 未找到时返回 myErrors.ErrRepoNotFound
	GetReaction(ctx context.Context, db *gorm.DB, postID, userID string) (*entities.PostReaction, error)
	// CreateReaction 撞上复合主键时返回的错误可用 myErrors.IsDuplicateKey 识别
	CreateReaction(ctx context.Context, db *gorm.DB, reaction *entities.PostReaction) error
	DeleteReaction(ctx context.Context, db *gorm.DB, postID, userID string) error
	UpdateReactionType(ctx context.Context, db *gorm.DB, postID, userID string, t enums.ReactionType) error
	// CountByType 统计某帖子某类表态的数量
	CountByType(ctx context.Context, db *gorm.DB, postID string, t enums.ReactionType) (int64, error)
}

type reactionRepository struct {
	logger *core.ZapLogger
}

func NewReactionRepository(logger *core.ZapLogger) ReactionRepository {
	return &reactionRepository{logger: logger}
}

func (r *reactionRepository) GetReaction(ctx context.Context, db *gorm.DB, postID, userID string) (*entities.PostReaction, error) {
	var reaction entities.PostReaction
	err := db.WithContext(ctx).Where("post_id = ? AND user_id = ?", postID, userID).First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, myErrors.ErrRepoNotFound
		}
		r.logger.Error("查询表态失败", zap.String("postID", postID), zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("查询表态失败: %w", err)
	}
	return &reaction, nil
}

func (r *reactionRepository) CreateReaction(ctx context.Context, db *gorm.DB, reaction *entities.PostReaction) error {
	return db.WithContext(ctx).Create(reaction).Error
}

func (r *reactionRepository) DeleteReaction(ctx context.Context, db *gorm.DB, postID, userID string) error {
	err := db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&entities.PostReaction{}).Error
	if err != nil {
		return fmt.Errorf("删除表态失败: %w", err)
	}
	return nil
}

func (r *reactionRepository) UpdateReactionType(ctx context.Context, db *gorm.DB, postID, userID string, t enums.ReactionType) error {
	err := db.WithContext(ctx).Model(&entities.PostReaction{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Updates(map[string]interface{}{"type": t, "updated_at": time.Now()}).Error
	if err != nil {
		return fmt.Errorf("更新表态失败: %w", err)
	}
	return nil
}

func (r *reactionRepository) CountByType(ctx context.Context, db *gorm.DB, postID string, t enums.ReactionType) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entities.PostReaction{}).
		Where("post_id = ? AND type = ?", postID, t).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计表态数量失败: %w", err)
	}
	return count, nil
}
