package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/models/events"
	"github.com/Xushengqwer/article_service/service"
)

// CommentEventHandler 消费评论服务的事件，维护帖子的 comment_count
type CommentEventHandler struct {
	logger   *core.ZapLogger
	counters service.CommentCountService
}

func NewCommentEventHandler(logger *core.ZapLogger, counters service.CommentCountService) *CommentEventHandler {
	return &CommentEventHandler{logger: logger, counters: counters}
}

func (h *CommentEventHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.CommentEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("反序列化评论事件失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 无法解析的消息不重试
	}
	if event.PostID == "" {
		h.logger.Warn("评论事件缺少 post_id，已跳过", zap.String("eventID", event.EventID))
		return nil
	}
	switch event.EventType {
	case constant.EventCommentCreated, constant.EventCommentDeleted:
	default:
		h.logger.Debug("忽略未知的评论事件类型", zap.String("eventType", event.EventType))
		return nil
	}

	if err := h.counters.ApplyCommentEvent(ctx, event.PostID, event.EventType); err != nil {
		return fmt.Errorf("更新评论数失败 (post_id=%s): %w", event.PostID, err)
	}
	h.logger.Debug("评论数已更新",
		zap.String("postID", event.PostID),
		zap.String("eventType", event.EventType),
	)
	return nil
}
