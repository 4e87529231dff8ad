package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/models/enums"
	"github.com/Xushengqwer/article_service/models/events"
	"github.com/Xushengqwer/article_service/models/vo"
	"github.com/Xushengqwer/article_service/myErrors"
	"github.com/Xushengqwer/article_service/repo/mysql"
	"github.com/Xushengqwer/article_service/repo/redis"
)

// ReactionService 点赞/点踩切换
type ReactionService interface {
	// ToggleReaction 切换用户对帖子的表态，action 为空时按 LIKE 处理。
	// - 无表态时新增，相同表态时撤销，不同表态时切换。
	// - 表态行与 like_count 的变化在同一事务内完成，并写入 POST_REACTION_CHANGED 事件。
	// - 并发插入撞上复合主键时返回 myErrors.ErrConflict。
	ToggleReaction(ctx context.Context, postID, userID, action string) (*vo.ReactionResultVO, error)
}

type reactionService struct {
	db           *gorm.DB
	postRepo     mysql.PostRepository
	reactionRepo mysql.ReactionRepository
	outbox       OutboxRecorder
	// rankCache 可为 nil，未启用 Redis 时不维护热榜
	rankCache redis.PostRankCache
	logger    *core.ZapLogger
}

func NewReactionService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	reactionRepo mysql.ReactionRepository,
	outbox OutboxRecorder,
	rankCache redis.PostRankCache,
	logger *core.ZapLogger,
) ReactionService {
	return &reactionService{
		db:           db,
		postRepo:     postRepo,
		reactionRepo: reactionRepo,
		outbox:       outbox,
		rankCache:    rankCache,
		logger:       logger,
	}
}

// reactionTransition 根据已有表态与本次动作计算新表态与 like_count 的增量。
// next 为 nil 表示撤销。
func reactionTransition(existing *enums.ReactionType, action enums.ReactionType) (next *enums.ReactionType, delta int64) {
	switch {
	case existing == nil:
		next = &action
		if action == enums.ReactionLike {
			delta = 1
		}
	case *existing == action:
		next = nil
		if action == enums.ReactionLike {
			delta = -1
		}
	default:
		next = &action
		if action == enums.ReactionLike {
			delta = 1
		} else {
			delta = -1
		}
	}
	return next, delta
}

// ParseReactionAction 规整动作，空值为 LIKE，大小写不敏感
func ParseReactionAction(action string) (enums.ReactionType, error) {
	a := enums.ReactionType(strings.ToUpper(strings.TrimSpace(action)))
	if a == "" {
		return enums.ReactionLike, nil
	}
	if !a.IsValid() {
		return "", fmt.Errorf("%w: 无效的表态 %s", myErrors.ErrValidation, action)
	}
	return a, nil
}

func (s *reactionService) ToggleReaction(ctx context.Context, postID, userID, action string) (*vo.ReactionResultVO, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id 不能为空", myErrors.ErrValidation)
	}
	act, err := ParseReactionAction(action)
	if err != nil {
		return nil, err
	}

	result := &vo.ReactionResultVO{PostID: postID, UserID: userID}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 锁住帖子行，同一帖子上的切换串行执行
		if _, err := s.postRepo.LockActivePost(ctx, tx, postID); err != nil {
			return err
		}

		var existing *enums.ReactionType
		row, err := s.reactionRepo.GetReaction(ctx, tx, postID, userID)
		switch {
		case err == nil:
			existing = &row.Type
		case errors.Is(err, myErrors.ErrRepoNotFound):
		default:
			return err
		}

		next, delta := reactionTransition(existing, act)
		switch {
		case existing == nil:
			err = s.reactionRepo.CreateReaction(ctx, tx, &entities.PostReaction{PostID: postID, UserID: userID, Type: act})
			if myErrors.IsDuplicateKey(err) {
				return fmt.Errorf("%w: 用户 %s 对帖子 %s 的表态正在被并发修改", myErrors.ErrConflict, userID, postID)
			}
		case next == nil:
			err = s.reactionRepo.DeleteReaction(ctx, tx, postID, userID)
		default:
			err = s.reactionRepo.UpdateReactionType(ctx, tx, postID, userID, *next)
		}
		if err != nil {
			return err
		}

		if err := s.postRepo.AdjustLikeCount(ctx, tx, postID, delta); err != nil {
			return err
		}
		post, err := s.postRepo.GetPostByID(ctx, tx, postID)
		if err != nil {
			return err
		}

		result.LikeCount = post.LikeCount
		result.Reaction = reactionString(next)
		return s.outbox.RecordEvent(ctx, tx, postID, constant.EventPostReactionChanged, events.ReactionPayload{
			PostID:     postID,
			UserID:     userID,
			Previous:   reactionString(existing),
			Current:    result.Reaction,
			LikeCount:  post.LikeCount,
			OccurredAt: time.Now().UTC(),
		})
	})
	if err != nil {
		if !errors.Is(err, myErrors.ErrRepoNotFound) {
			s.logger.Error("切换表态失败",
				zap.String("postID", postID),
				zap.String("userID", userID),
				zap.String("action", string(act)),
				zap.Error(err))
		}
		return nil, err
	}

	if s.rankCache != nil {
		if err := s.rankCache.UpdateLikeScore(ctx, postID, result.LikeCount); err != nil {
			s.logger.Warn("同步热榜分数失败", zap.String("postID", postID), zap.Error(err))
		}
	}
	return result, nil
}

func reactionString(t *enums.ReactionType) *string {
	if t == nil {
		return nil
	}
	v := string(*t)
	return &v
}
