package mysql

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/Xushengqwer/article_service/models/entities"
)

// OutboxRepository 发件箱事件表，只追加
type OutboxRepository interface {
	// CreateEvent 必须传入业务变更所在的事务
	CreateEvent(ctx context.Context, db *gorm.DB, event *entities.OutboxEvent) error
	// ListEventsAfter 按 ID 升序读取 afterID 之后的至多 limit 条事件，固定读主库
	ListEventsAfter(ctx context.Context, afterID uint64, limit int) ([]*entities.OutboxEvent, error)
	// ListEventsByAggregate 按 ID 升序读取某聚合的全部事件
	ListEventsByAggregate(ctx context.Context, aggregateID string) ([]*entities.OutboxEvent, error)
}

type outboxRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

func NewOutboxRepository(db *gorm.DB, logger *core.ZapLogger) OutboxRepository {
	return &outboxRepository{db: db, logger: logger}
}

func (r *outboxRepository) CreateEvent(ctx context.Context, db *gorm.DB, event *entities.OutboxEvent) error {
	if err := db.WithContext(ctx).Create(event).Error; err != nil {
		r.logger.Error("写入 outbox 事件失败",
			zap.String("aggregateID", event.AggregateID),
			zap.String("eventType", event.EventType),
			zap.Error(err))
		return fmt.Errorf("写入 outbox 事件失败: %w", err)
	}
	return nil
}

func (r *outboxRepository) ListEventsAfter(ctx context.Context, afterID uint64, limit int) ([]*entities.OutboxEvent, error) {
	var list []*entities.OutboxEvent
	err := r.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("读取 outbox 事件失败: %w", err)
	}
	return list, nil
}

func (r *outboxRepository) ListEventsByAggregate(ctx context.Context, aggregateID string) ([]*entities.OutboxEvent, error) {
	var list []*entities.OutboxEvent
	if err := r.db.WithContext(ctx).Where("aggregate_id = ?", aggregateID).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("读取聚合 %s 的 outbox 事件失败: %w", aggregateID, err)
	}
	return list, nil
}
