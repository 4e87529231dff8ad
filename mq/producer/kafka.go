package producer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Xushengqwer/article_service/config"
	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/models/events"
	"github.com/Xushengqwer/article_service/mq"
)

// EventPublisher 把 outbox 事件投递到消息队列
type EventPublisher interface {
	PublishOutboxEvent(ctx context.Context, event *entities.OutboxEvent) error
	Close() error
}

// messageWriter 是 kafka.Writer 中被用到的部分
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer messageWriter
	logger *core.ZapLogger
	topic  string
}

// NewKafkaProducer 创建文章事件的生产者。
// 消息以 aggregate_id 为 key 经 Hash 分区，同一帖子的事件落在同一分区并保持顺序。
func NewKafkaProducer(cfg config.KafkaConfig, logger *core.ZapLogger) (*KafkaProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers 配置不能为空")
	}
	if cfg.Topics.ArticleEvents == "" {
		return nil, errors.New("kafka 文章事件主题未配置")
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topics.ArticleEvents,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	return newKafkaProducer(writer, cfg.Topics.ArticleEvents, logger), nil
}

func newKafkaProducer(writer messageWriter, topic string, logger *core.ZapLogger) *KafkaProducer {
	return &KafkaProducer{writer: writer, logger: logger, topic: topic}
}

// PublishOutboxEvent 序列化事件并同步写入 Kafka，写入失败时返回错误由调用方重试。
// 当前 trace 上下文写入消息头，下游消费者据此续接链路。
func (p *KafkaProducer) PublishOutboxEvent(ctx context.Context, event *entities.OutboxEvent) (err error) {
	ctx, span := otel.Tracer(constant.ServiceName).Start(ctx, "outbox.publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.destination.name", p.topic),
			attribute.String("outbox.event_type", event.EventType),
			attribute.Int64("outbox.event_id", int64(event.ID)),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	body, err := json.Marshal(events.OutboxMessage{
		EventID:     event.ID,
		AggregateID: event.AggregateID,
		EventType:   event.EventType,
		Payload:     json.RawMessage(event.Payload),
		CreatedAt:   event.CreatedAt,
	})
	if err != nil {
		p.logger.Error("序列化 outbox 事件失败", zap.Uint64("eventID", event.ID), zap.Error(err))
		return fmt.Errorf("序列化 outbox 事件 %d 失败: %w", event.ID, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.AggregateID),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "event_id", Value: []byte(strconv.FormatUint(event.ID, 10))},
		},
	}
	otel.GetTextMapPropagator().Inject(ctx, mq.HeaderCarrier{Headers: &msg.Headers})
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("写入 Kafka 消息失败",
			zap.String("topic", p.topic),
			zap.Uint64("eventID", event.ID),
			zap.Error(err),
		)
		return fmt.Errorf("投递 outbox 事件 %d 失败: %w", event.ID, err)
	}
	p.logger.Debug("outbox 事件已投递",
		zap.String("topic", p.topic),
		zap.Uint64("eventID", event.ID),
		zap.String("eventType", event.EventType),
	)
	return nil
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
