package config

import commonConfig "github.com/Xushengqwer/go-common/config"

// ArticleConfig 是文章服务的根配置，由 Load 按默认值、YAML、环境变量的顺序叠加得到
type ArticleConfig struct {
	ZapConfig          commonConfig.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig      commonConfig.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig       ServerConfig               `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig       commonConfig.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig        MySQLConfig                `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig        RedisConfig                `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig        KafkaConfig                `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig          COSConfig                  `mapstructure:"cosConfig" json:"cosConfig" yaml:"cosConfig"`
	StorageConfig      StorageConfig              `mapstructure:"storageConfig" json:"storageConfig" yaml:"storageConfig"`
	CollaboratorConfig CollaboratorConfig         `mapstructure:"collaboratorConfig" json:"collaboratorConfig" yaml:"collaboratorConfig"`
	OutboxRelayConfig  OutboxRelayConfig          `mapstructure:"outboxRelayConfig" json:"outboxRelayConfig" yaml:"outboxRelayConfig"`
	RankConfig         RankConfig                 `mapstructure:"rankConfig" json:"rankConfig" yaml:"rankConfig"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port           string `mapstructure:"port" json:"port" yaml:"port"`
	RequestTimeout int    `mapstructure:"requestTimeout" json:"requestTimeout" yaml:"requestTimeout"` // 秒
	Environment    string `mapstructure:"environment" json:"environment" yaml:"environment"`          // development / production
	SecretKey      string `mapstructure:"secretKey" json:"-" yaml:"secretKey"`
}

// IsDevelopment 开发模式下会跳过用户校验并关闭通知
func (s ServerConfig) IsDevelopment() bool {
	return s.Environment == "" || s.Environment == "development"
}
