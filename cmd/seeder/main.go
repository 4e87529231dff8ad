package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/article_service/config"
	"github.com/Xushengqwer/article_service/dependencies"
	"github.com/Xushengqwer/article_service/repo/mysql"
	"github.com/Xushengqwer/article_service/service"
)

func main() {
	var (
		configFile  string
		numPosts    int
		seed        int64
		concurrency int
	)
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numPosts, "n", 50, "要生成的帖子数量")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "随机种子，相同种子生成相同数据")
	flag.IntVar(&concurrency, "c", 4, "并发数")
	flag.Parse()

	if numPosts <= 0 {
		fmt.Println("错误: 生成的帖子数量必须大于 0")
		os.Exit(1)
	}

	var cfg appConfig.ArticleConfig
	if err := appConfig.Load(configFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", configFile, err)
		os.Exit(1)
	}

	logger, err := core.NewZapLogger(cfg.ZapConfig)
	if err != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Logger().Sync() }()

	db, err := dependencies.InitMySQL(&cfg, logger)
	if err != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(err))
	}

	postRepo := mysql.NewPostRepository(db, logger)
	categoryRepo := mysql.NewCategoryRepository(db, logger)
	tagRepo := mysql.NewTagRepository(db, logger)
	recorder := service.NewOutboxRecorder(mysql.NewOutboxRepository(db, logger))

	// 随机作者在用户服务中不存在，填充时总是跳过校验和通知
	seeder := &Seeder{
		Posts: service.NewPostService(db, postRepo, categoryRepo, tagRepo, recorder,
			dependencies.NewBypassUserDirectory(logger), dependencies.NewNoopNotifier(logger), logger),
		Reactions:   service.NewReactionService(db, postRepo, mysql.NewReactionRepository(logger), recorder, nil, logger),
		Taxonomy:    service.NewTaxonomyService(db, categoryRepo, tagRepo, logger),
		Logger:      logger,
		Concurrency: concurrency,
	}

	start := time.Now()
	result, err := seeder.Seed(context.Background(), numPosts, seed)
	if err != nil {
		logger.Fatal("数据填充失败", zap.Error(err))
	}
	fmt.Printf("数据填充完成: 成功 %d, 失败 %d, 表态 %d, 种子 %d, 耗时 %v\n",
		result.Created, result.Failed, result.Reactions, seed, time.Since(start))
}
