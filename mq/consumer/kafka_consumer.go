package consumer

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/article_service/config"
	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/mq"
)

// MessageHandler 处理单条 Kafka 消息。
// 返回错误只会被记录，消息已随 ReadMessage 提交，不会重投。
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// messageReader 是 kafka.Reader 中被用到的部分
type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// Consumer 定义 Kafka 消费者结构
type Consumer struct {
	reader     messageReader
	handler    MessageHandler
	logger     *core.ZapLogger
	topic      string
	retryDelay time.Duration
}

// NewConsumer 创建 Kafka Consumer 实例
func NewConsumer(cfg *appConfig.KafkaConfig, groupID string, topicName string, handler MessageHandler, logger *core.ZapLogger) (*Consumer, error) {
	if topicName == "" {
		return nil, errors.New("kafka topic 名称不能为空")
	}
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers 配置不能为空")
	}

	logger.Info("初始化 Kafka 消费者",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", topicName),
		zap.String("group_id", groupID))

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          topicName,
		GroupID:        groupID,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	return newConsumer(reader, topicName, handler, logger), nil
}

func newConsumer(reader messageReader, topic string, handler MessageHandler, logger *core.ZapLogger) *Consumer {
	return &Consumer{
		reader:     reader,
		handler:    handler,
		logger:     logger,
		topic:      topic,
		retryDelay: time.Second,
	}
}

// Start 阻塞地读取并处理消息，直到 ctx 取消或 Reader 关闭
func (c *Consumer) Start(ctx context.Context) {
	c.logger.Info("Kafka 消费者已启动", zap.String("topic", c.topic))
	defer c.logger.Info("Kafka 消费者已停止", zap.String("topic", c.topic))

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				c.logger.Warn("消费者读取循环退出", zap.String("topic", c.topic), zap.Error(err))
				return
			}
			c.logger.Error("读取 Kafka 消息失败", zap.String("topic", c.topic), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.retryDelay):
			}
			continue
		}

		c.handle(ctx, msg)
	}
}

// handle 续接消息头中的 trace 上下文后交给 handler
func (c *Consumer) handle(ctx context.Context, msg kafka.Message) {
	ctx = otel.GetTextMapPropagator().Extract(ctx, mq.HeaderCarrier{Headers: &msg.Headers})
	ctx, span := otel.Tracer(constant.ServiceName).Start(ctx, "kafka.consume",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.destination.name", c.topic),
			attribute.Int64("messaging.kafka.offset", msg.Offset),
		),
	)
	defer span.End()

	handleCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := c.handler.Handle(handleCtx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error("处理 Kafka 消息时发生错误",
			zap.Error(err),
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset))
	}
}

// Close 关闭 Kafka Reader
func (c *Consumer) Close() error {
	c.logger.Info("正在关闭 Kafka 消费者...", zap.String("topic", c.topic))
	if err := c.reader.Close(); err != nil {
		c.logger.Error("关闭 Kafka Reader 失败", zap.Error(err), zap.String("topic", c.topic))
		return err
	}
	return nil
}
