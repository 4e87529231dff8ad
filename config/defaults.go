package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Xushengqwer/go-common/core"
	"github.com/spf13/viper"
)

// envBindings 把部署环境中约定俗成的变量名绑定到配置键上
var envBindings = map[string]string{
	"serverConfig.environment":                  "ENVIRONMENT",
	"serverConfig.secretKey":                    "SECRET_KEY",
	"mysqlConfig.write.dsn":                     "DATABASE_URL",
	"collaboratorConfig.userServiceURL":         "USER_SERVICE_URL",
	"collaboratorConfig.notificationServiceURL": "NOTIFICATION_SERVICE_URL",
	"cosConfig.secretID":                        "COS_SECRET_ID",
	"cosConfig.secretKey":                       "COS_SECRET_KEY",
	"cosConfig.bucketName":                      "COS_BUCKET_NAME",
	"cosConfig.appID":                           "COS_APP_ID",
	"cosConfig.region":                          "COS_REGION",
	"cosConfig.baseURL":                         "COS_CDN_DOMAIN",
}

// Load 先写入默认值，再由 core.LoadConfig 叠加配置文件与自动环境变量，最后叠加 envBindings。
// 配置文件不存在时只使用默认值与环境变量。
func Load(path string, cfg *ArticleConfig) error {
	if err := ApplyDefaults(cfg); err != nil {
		return fmt.Errorf("写入默认配置失败: %w", err)
	}
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}
	if err := core.LoadConfig(path, cfg); err != nil {
		return err
	}
	if err := ApplyEnvBindings(cfg); err != nil {
		return fmt.Errorf("读取环境变量失败: %w", err)
	}
	return nil
}

// ApplyDefaults 把默认值解码到 cfg，已有的值会被覆盖，因此须在读取配置文件之前调用
func ApplyDefaults(cfg *ArticleConfig) error {
	v := viper.New()
	v.SetDefault("zapConfig.level", "info")
	v.SetDefault("zapConfig.encoding", "json")

	v.SetDefault("gormLogConfig.level", "warn")
	v.SetDefault("gormLogConfig.slowThresholdMs", 200)
	v.SetDefault("gormLogConfig.ignoreRecordNotFoundError", true)

	v.SetDefault("serverConfig.port", "8083")
	v.SetDefault("serverConfig.requestTimeout", 30)
	v.SetDefault("serverConfig.environment", "development")

	v.SetDefault("tracerConfig.enabled", false)
	v.SetDefault("tracerConfig.exporter_type", "stdout")
	v.SetDefault("tracerConfig.exporter_endpoint", "localhost:4317")
	v.SetDefault("tracerConfig.sampler_type", "parent_based_traceid_ratio")
	v.SetDefault("tracerConfig.sampler_param", 1.0)

	v.SetDefault("mysqlConfig.max_idle_conns", 10)
	v.SetDefault("mysqlConfig.max_open_conns", 100)
	v.SetDefault("mysqlConfig.conn_max_lifetime", 3600)
	v.SetDefault("mysqlConfig.max_retries", 5)

	v.SetDefault("redisConfig.poolSize", 10)
	v.SetDefault("redisConfig.dialTimeout", 5)
	v.SetDefault("redisConfig.readTimeout", 3)
	v.SetDefault("redisConfig.writeTimeout", 3)

	v.SetDefault("kafkaConfig.topics.articleEvents", "article-events")
	v.SetDefault("kafkaConfig.consumer_group_id", "article_service_group")

	v.SetDefault("storageConfig.localDir", "uploads")
	v.SetDefault("storageConfig.publicPrefix", "/uploads")
	v.SetDefault("storageConfig.maxUploadBytes", 10<<20)

	v.SetDefault("collaboratorConfig.timeoutSeconds", 5)

	v.SetDefault("outboxRelayConfig.enabled", false)
	v.SetDefault("outboxRelayConfig.cron", "@every 5s")
	v.SetDefault("outboxRelayConfig.batchSize", 100)
	v.SetDefault("outboxRelayConfig.settleSeconds", 10)

	v.SetDefault("rankConfig.refreshCron", "@every 10m")
	v.SetDefault("rankConfig.size", 100)

	return v.Unmarshal(cfg)
}

// ApplyEnvBindings 只覆盖 envBindings 中已设置的变量，未设置的键保持原值
func ApplyEnvBindings(cfg *ArticleConfig) error {
	v := viper.New()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return v.Unmarshal(cfg)
}
