package tasks

import (
	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// cronLogger 把 cron 内部日志转到 zap
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func newCronLogger(logger *core.ZapLogger) cron.Logger {
	return cronLogger{sugar: logger.Logger().Sugar()}
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}

// newCron 创建跳过重叠执行的调度器，上一轮未结束时本轮直接跳过
func newCron(logger *core.ZapLogger) *cron.Cron {
	cl := newCronLogger(logger)
	return cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
}
