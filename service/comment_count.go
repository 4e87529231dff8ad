package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/myErrors"
	"github.com/Xushengqwer/article_service/repo/mysql"
)

// CommentCountService 根据评论服务的事件维护帖子的 comment_count
type CommentCountService interface {
	// ApplyCommentEvent 未知事件类型与不存在的帖子会被忽略并返回 nil
	ApplyCommentEvent(ctx context.Context, postID, eventType string) error
}

type commentCountService struct {
	db       *gorm.DB
	postRepo mysql.PostRepository
	logger   *core.ZapLogger
}

func NewCommentCountService(db *gorm.DB, postRepo mysql.PostRepository, logger *core.ZapLogger) CommentCountService {
	return &commentCountService{db: db, postRepo: postRepo, logger: logger}
}

func (s *commentCountService) ApplyCommentEvent(ctx context.Context, postID, eventType string) error {
	var delta int64
	switch eventType {
	case constant.EventCommentCreated:
		delta = 1
	case constant.EventCommentDeleted:
		delta = -1
	default:
		s.logger.Warn("忽略未知的评论事件类型", zap.String("eventType", eventType), zap.String("postID", postID))
		return nil
	}

	err := s.postRepo.AdjustCommentCount(ctx, s.db, postID, delta)
	if err != nil {
		if errors.Is(err, myErrors.ErrRepoNotFound) {
			s.logger.Warn("评论事件对应的帖子不存在，已忽略", zap.String("postID", postID))
			return nil
		}
		return fmt.Errorf("更新评论数失败: %w", err)
	}
	return nil
}
