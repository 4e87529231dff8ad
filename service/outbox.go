package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/myErrors"
	"github.com/Xushengqwer/article_service/repo/mysql"
)

// OutboxRecorder 在业务事务内追加一条发件箱事件。
// 事件与业务变更同生共死，由 outbox 中继异步投递到 Kafka。
type OutboxRecorder interface {
	RecordEvent(ctx context.Context, tx *gorm.DB, aggregateID, eventType string, payload interface{}) error
}

type outboxRecorder struct {
	outboxRepo mysql.OutboxRepository
}

func NewOutboxRecorder(outboxRepo mysql.OutboxRepository) OutboxRecorder {
	return &outboxRecorder{outboxRepo: outboxRepo}
}

func (r *outboxRecorder) RecordEvent(ctx context.Context, tx *gorm.DB, aggregateID, eventType string, payload interface{}) error {
	if strings.TrimSpace(eventType) == "" {
		return fmt.Errorf("%w: 事件类型不能为空", myErrors.ErrValidation)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: 事件载荷无法序列化: %v", myErrors.ErrValidation, err)
	}
	return r.outboxRepo.CreateEvent(ctx, tx, &entities.OutboxEvent{
		AggregateID: aggregateID,
		EventType:   eventType,
		Payload:     datatypes.JSON(raw),
	})
}
