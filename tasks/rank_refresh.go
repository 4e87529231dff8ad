package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/article_service/service"
)

// RankRefresher 定时从数据库整体重建点赞热榜，修正增量写入可能产生的偏差
type RankRefresher struct {
	hotPostService service.HotPostService
	size           int
	cron           *cron.Cron
	logger         *core.ZapLogger
}

func NewRankRefresher(hotPostService service.HotPostService, size int, logger *core.ZapLogger) *RankRefresher {
	return &RankRefresher{
		hotPostService: hotPostService,
		size:           size,
		cron:           newCron(logger),
		logger:         logger,
	}
}

// Start 按 schedule 启动重建任务，并立即执行一次
func (t *RankRefresher) Start(schedule string) error {
	t.logger.Info("准备启动热榜重建定时任务", zap.String("schedule", schedule))
	entryID, err := t.cron.AddFunc(schedule, t.run)
	if err != nil {
		return fmt.Errorf("添加热榜重建 cron 作业失败: %w", err)
	}
	t.cron.Start()
	go t.run()
	t.logger.Info("热榜重建定时任务已启动", zap.Int("cronEntryID", int(entryID)))
	return nil
}

func (t *RankRefresher) run() {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := t.hotPostService.RefreshRank(ctx, t.size); err != nil {
		t.logger.Error("重建点赞热榜失败", zap.Error(err))
		return
	}
	t.logger.Info("点赞热榜已重建", zap.Duration("duration", time.Since(start)))
}

func (t *RankRefresher) Stop() context.Context {
	t.logger.Info("正在停止热榜重建定时任务...")
	return t.cron.Stop()
}
