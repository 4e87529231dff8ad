package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/article_service/mq/producer"
	"github.com/Xushengqwer/article_service/repo/mysql"
	"github.com/Xushengqwer/article_service/repo/redis"
)

const defaultRelayBatchSize = 100

// OutboxRelay 定时把 outbox 中的新事件投递到 Kafka。
// 进度保存在 Redis 游标中，投递失败时本批停止，下一轮从游标处重试，保证至少一次投递。
// 自增 ID 的分配顺序与事务提交顺序不一定一致，较小的 ID 可能晚于较大的 ID 可见。
// 因此只投递创建时间早于 settle 的事件，遇到第一个未沉淀的事件即停止，游标不会越过它。
// outbox 表只读不写。
type OutboxRelay struct {
	outboxRepo mysql.OutboxRepository
	cursor     redis.OutboxCursor
	publisher  producer.EventPublisher
	batchSize  int
	settle     time.Duration
	now        func() time.Time
	cron       *cron.Cron
	logger     *core.ZapLogger
}

func NewOutboxRelay(
	outboxRepo mysql.OutboxRepository,
	cursor redis.OutboxCursor,
	publisher producer.EventPublisher,
	batchSize int,
	settle time.Duration,
	logger *core.ZapLogger,
) *OutboxRelay {
	if batchSize <= 0 {
		batchSize = defaultRelayBatchSize
	}
	if settle < 0 {
		settle = 0
	}
	return &OutboxRelay{
		outboxRepo: outboxRepo,
		cursor:     cursor,
		publisher:  publisher,
		batchSize:  batchSize,
		settle:     settle,
		now:        time.Now,
		cron:       newCron(logger),
		logger:     logger,
	}
}

// Start 按 schedule 启动定时投递
func (r *OutboxRelay) Start(schedule string) error {
	r.logger.Info("准备启动 outbox 中继定时任务", zap.String("schedule", schedule))
	entryID, err := r.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		n, err := r.RelayOnce(ctx)
		if err != nil {
			r.logger.Error("outbox 中继本轮中断", zap.Int("published", n), zap.Error(err))
			return
		}
		if n > 0 {
			r.logger.Info("outbox 中继本轮完成", zap.Int("published", n))
		}
	})
	if err != nil {
		return fmt.Errorf("添加 outbox 中继 cron 作业失败: %w", err)
	}
	r.cron.Start()
	r.logger.Info("outbox 中继定时任务已启动", zap.Int("cronEntryID", int(entryID)))
	return nil
}

// RelayOnce 投递游标之后的一批已沉淀事件，返回成功投递的数量。
// 游标推进到最后一个成功投递的事件，遇到未沉淀的事件或第一个失败即停止。
func (r *OutboxRelay) RelayOnce(ctx context.Context) (int, error) {
	after, err := r.cursor.GetCursor(ctx)
	if err != nil {
		return 0, err
	}
	batch, err := r.outboxRepo.ListEventsAfter(ctx, after, r.batchSize)
	if err != nil {
		return 0, fmt.Errorf("读取 outbox 事件失败: %w", err)
	}

	cutoff := r.now().Add(-r.settle)
	published := 0
	var last uint64
	var publishErr error
	for _, event := range batch {
		if event.CreatedAt.After(cutoff) {
			r.logger.Debug("outbox 事件尚未沉淀，留待下一轮",
				zap.Uint64("eventID", event.ID),
				zap.Time("createdAt", event.CreatedAt))
			break
		}
		if err := r.publisher.PublishOutboxEvent(ctx, event); err != nil {
			publishErr = err
			break
		}
		last = event.ID
		published++
	}

	if published > 0 {
		if err := r.cursor.SetCursor(ctx, last); err != nil {
			return published, err
		}
	}
	return published, publishErr
}

// Stop 停止调度，返回的 context 在正在执行的任务结束后关闭
func (r *OutboxRelay) Stop() context.Context {
	r.logger.Info("正在停止 outbox 中继定时任务...")
	return r.cron.Stop()
}
