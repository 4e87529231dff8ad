package dependencies

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/Xushengqwer/article_service/config"
	"github.com/Xushengqwer/article_service/models/entities"
)

// InitMySQL 初始化 MySQL 连接，配置读写分离 (如果配置了从库) 并执行自动迁移
func InitMySQL(cfg *config.ArticleConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	mysqlCfg := cfg.MySQLConfig

	if mysqlCfg.Write.DSN == "" {
		return nil, fmt.Errorf("主数据库 DSN (mysqlConfig.write.dsn / DATABASE_URL) 未配置")
	}
	gormConfig := &gorm.Config{
		Logger: core.NewGormLogger(logger, cfg.GormLogConfig),
		// 唯一键冲突统一翻译为 gorm.ErrDuplicatedKey
		TranslateError: true,
	}

	maxRetries := mysqlCfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}
	retryInterval := 2 * time.Second

	var db *gorm.DB
	var err error
	logger.Info("开始连接主数据库...")
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(mysql.Open(mysqlCfg.Write.DSN), gormConfig)
		if err == nil {
			var sqlDB *sql.DB
			sqlDB, err = db.DB()
			if err == nil {
				if err = sqlDB.Ping(); err == nil {
					break
				}
			}
		}
		logger.Warn("无法连接到主数据库，尝试重试", zap.Int("retry", i+1), zap.Int("maxRetries", maxRetries), zap.Error(err))
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}
	if err != nil {
		logger.Error("无法连接到主数据库", zap.Error(err))
		return nil, fmt.Errorf("无法连接到主数据库: %w", err)
	}
	logger.Info("成功连接到主数据库")

	// --- 读写分离 ---
	readReplicas := make([]gorm.Dialector, 0, len(mysqlCfg.Read))
	for i, replicaCfg := range mysqlCfg.Read {
		if replicaCfg.DSN == "" {
			logger.Warn("发现空的从库 DSN 配置，已跳过", zap.Int("index", i))
			continue
		}
		readReplicas = append(readReplicas, mysql.Open(replicaCfg.DSN))
	}
	if len(readReplicas) > 0 {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Sources:  []gorm.Dialector{mysql.Open(mysqlCfg.Write.DSN)},
			Replicas: readReplicas,
			Policy:   dbresolver.StrictRoundRobinPolicy(),
		}))
		if err != nil {
			logger.Error("配置 GORM 读写分离插件失败", zap.Error(err))
			return nil, fmt.Errorf("配置 GORM 读写分离失败: %w", err)
		}
		logger.Info("成功配置 GORM 读写分离插件", zap.Int("从库数量", len(readReplicas)))
	} else {
		logger.Info("未配置有效的从数据库，不启用读写分离")
	}

	// --- 连接池 ---
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("无法获取数据库对象: %w", err)
	}
	maxIdle := mysqlCfg.SharedMaxIdleConns
	maxOpen := mysqlCfg.SharedMaxOpenConns
	maxLife := mysqlCfg.SharedConnMaxLifetime
	if mysqlCfg.Write.MaxIdleConns != nil {
		maxIdle = *mysqlCfg.Write.MaxIdleConns
	}
	if mysqlCfg.Write.MaxOpenConns != nil {
		maxOpen = *mysqlCfg.Write.MaxOpenConns
	}
	if mysqlCfg.Write.ConnMaxLifetime != nil {
		maxLife = *mysqlCfg.Write.ConnMaxLifetime
	}
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLife) * time.Second)
	logger.Info("配置数据库连接池",
		zap.Int("最大空闲连接数", maxIdle),
		zap.Int("最大打开连接数", maxOpen),
		zap.Int("连接最大生命周期(秒)", maxLife),
	)

	// --- 自动迁移，发送到主库 ---
	logger.Info("开始执行数据库自动迁移...")
	if err := db.AutoMigrate(entities.AllModels()...); err != nil {
		logger.Error("数据库自动迁移失败", zap.Error(err))
		return nil, fmt.Errorf("数据库自动迁移失败: %w", err)
	}
	logger.Info("数据库自动迁移完成")
	return db, nil
}
