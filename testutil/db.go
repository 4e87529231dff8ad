// Package testutil 提供测试共用的内存数据库、Redis 与日志记录器。
package testutil

import (
	"testing"

	"github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/article_service/models/entities"
)

// NewTestDB 创建一个迁移好全部表的独立内存 SQLite 库。
// 只开一个连接，事务内的操作必须使用事务对象，否则会互相等待。
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(entities.AllModels()...))
	return db
}

// NewTestRedis 启动一个 miniredis 并返回连接它的客户端
func NewTestRedis(t testing.TB) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

// NewLogger 返回只输出 fatal 级别日志的记录器
func NewLogger(t testing.TB) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(config.ZapConfig{Level: "fatal", Encoding: "json"})
	require.NoError(t, err)
	return logger
}
