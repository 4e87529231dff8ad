package entities

import (
	"time"

	"gorm.io/datatypes"
)

// OutboxEvent 发件箱事件，与触发它的业务变更在同一事务内写入。
// 只追加，本服务从不更新或删除；自增 ID 决定同一聚合内的事件顺序。
type OutboxEvent struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement"`
	AggregateID string         `gorm:"type:varchar(64);not null;index"`
	EventType   string         `gorm:"type:varchar(64);not null;index"`
	Payload     datatypes.JSON `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"index"`
}

func (OutboxEvent) TableName() string {
	return "outbox_events"
}
