package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/core/tracing"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/article_service/config"
	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/controller"
	"github.com/Xushengqwer/article_service/dependencies"
	_ "github.com/Xushengqwer/article_service/docs"
	"github.com/Xushengqwer/article_service/mq/consumer"
	"github.com/Xushengqwer/article_service/mq/producer"
	"github.com/Xushengqwer/article_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/article_service/repo/redis"
	"github.com/Xushengqwer/article_service/router"
	"github.com/Xushengqwer/article_service/service"
	"github.com/Xushengqwer/article_service/tasks"
)

// @title           Article Service API
// @version         1.0
// @description     文章服务，提供帖子、分类标签、点赞和图片管理。

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8083
// @schemes http https
func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置，文件缺失时只使用默认值与环境变量
	var cfg appConfig.ArticleConfig
	if err := appConfig.Load(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 2. 初始化 Logger
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功",
		zap.String("environment", cfg.ServerConfig.Environment),
		zap.Bool("development", cfg.ServerConfig.IsDevelopment()),
	)

	// 3. 分布式追踪
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := tracing.InitTracerProvider(constant.ServiceName, constant.ServiceVersion, cfg.TracerConfig)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// --- 4. 初始化核心依赖 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}

	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}

	storage, storageErr := dependencies.NewObjectStorage(&cfg, logger)
	if storageErr != nil {
		logger.Fatal("初始化对象存储失败", zap.Error(storageErr))
	}

	users := dependencies.NewUserDirectory(&cfg, logger)
	notifier := dependencies.NewNotifier(&cfg, logger)

	// --- 5. 数据仓库层 ---
	postRepo := mysql.NewPostRepository(db, logger)
	categoryRepo := mysql.NewCategoryRepository(db, logger)
	tagRepo := mysql.NewTagRepository(db, logger)
	reactionRepo := mysql.NewReactionRepository(logger)
	mediaRepo := mysql.NewMediaRepository(db, logger)
	outboxRepo := mysql.NewOutboxRepository(db, logger)

	// 未启用 Redis 时热榜回源数据库
	var rankCache redisrepo.PostRankCache
	if rdb != nil {
		rankCache = redisrepo.NewPostRankCache(rdb, logger)
	}

	// --- 6. 服务层 ---
	outboxRecorder := service.NewOutboxRecorder(outboxRepo)
	postService := service.NewPostService(db, postRepo, categoryRepo, tagRepo, outboxRecorder, users, notifier, logger)
	postListService := service.NewPostListService(db, postRepo, tagRepo, logger)
	reactionService := service.NewReactionService(db, postRepo, reactionRepo, outboxRecorder, rankCache, logger)
	mediaService := service.NewMediaService(db, postRepo, mediaRepo, outboxRecorder, storage, cfg.StorageConfig.MaxUploadBytes, logger)
	taxonomyService := service.NewTaxonomyService(db, categoryRepo, tagRepo, logger)
	hotPostService := service.NewHotPostService(db, postRepo, tagRepo, rankCache, logger)
	commentCountService := service.NewCommentCountService(db, postRepo, logger)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := taxonomyService.EnsureDefaultCategories(seedCtx); err != nil {
		logger.Error("补齐默认分类失败", zap.Error(err))
	}
	seedCancel()

	// --- 7. 控制器 ---
	ctrls := router.Controllers{
		Post:     controller.NewPostController(postService, postListService),
		HotPost:  controller.NewHotPostController(hotPostService),
		Reaction: controller.NewReactionController(reactionService),
		Media:    controller.NewMediaController(mediaService),
		Taxonomy: controller.NewTaxonomyController(taxonomyService),
	}

	// --- 8. Kafka：outbox 中继与评论数消费者 ---
	var consumers []*consumer.Consumer
	var consumerWg sync.WaitGroup
	consumerCtx, consumerCancel := context.WithCancel(context.Background())

	var relay *tasks.OutboxRelay
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		if cfg.OutboxRelayConfig.Enabled {
			if rdb == nil {
				logger.Warn("outbox 中继需要 Redis 保存游标，未配置 Redis，跳过中继")
			} else {
				var err error
				kafkaProducer, err = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
				if err != nil {
					logger.Fatal("初始化 Kafka 生产者失败", zap.Error(err))
				}
				relay = tasks.NewOutboxRelay(outboxRepo, redisrepo.NewOutboxCursor(rdb), kafkaProducer,
					cfg.OutboxRelayConfig.BatchSize, time.Duration(cfg.OutboxRelayConfig.SettleSeconds)*time.Second, logger)
				if err := relay.Start(cfg.OutboxRelayConfig.Cron); err != nil {
					logger.Fatal("启动 outbox 中继失败", zap.Error(err))
				}
			}
		}

		if topic := cfg.KafkaConfig.Topics.CommentEvents; topic != "" {
			groupID := cfg.KafkaConfig.ConsumerGroupID
			if groupID == "" {
				groupID = "article_service_group"
			}
			handler := consumer.NewCommentEventHandler(logger, commentCountService)
			commentConsumer, err := consumer.NewConsumer(&cfg.KafkaConfig, groupID, topic, handler, logger)
			if err != nil {
				logger.Fatal("初始化评论事件消费者失败", zap.Error(err))
			}
			consumers = append(consumers, commentConsumer)
		}

		for _, c := range consumers {
			consumerWg.Add(1)
			go func(cons *consumer.Consumer) {
				defer consumerWg.Done()
				cons.Start(consumerCtx)
			}(c)
		}
	} else {
		logger.Warn("Kafka Brokers 未配置，跳过 outbox 中继与评论事件消费者")
	}

	// --- 9. 热榜重建 ---
	var refresher *tasks.RankRefresher
	if rankCache != nil && cfg.RankConfig.RefreshCron != "" {
		refresher = tasks.NewRankRefresher(hotPostService, cfg.RankConfig.Size, logger)
		if err := refresher.Start(cfg.RankConfig.RefreshCron); err != nil {
			logger.Fatal("启动热榜重建任务失败", zap.Error(err))
		}
	}

	// --- 10. HTTP 服务 ---
	ginRouter := router.SetupRouter(logger, &cfg, ctrls, storage)
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:              serverAddr,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
	}()

	// --- 11. 优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// a. 停止接收新请求
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	}

	// b. 停止消费者
	consumerCancel()
	consumerWg.Wait()
	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("关闭 Kafka 消费者时出错", zap.Error(err))
		}
	}

	// c. 等待定时任务结束
	var stopped []context.Context
	if relay != nil {
		stopped = append(stopped, relay.Stop())
	}
	if refresher != nil {
		stopped = append(stopped, refresher.Stop())
	}
	for _, done := range stopped {
		select {
		case <-done.Done():
		case <-shutdownCtx.Done():
			logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
		}
	}
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		}
	}

	// d. 关闭 Redis 与数据库连接
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("关闭 Redis 客户端失败", zap.Error(err))
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("服务已成功关闭")
}
