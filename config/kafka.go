package config

type KafkaConfig struct {
	Brokers         []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics          Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
	ConsumerGroupID string   `mapstructure:"consumer_group_id" json:"consumer_group_id" yaml:"consumer_group_id"`
}

type Topics struct {
	ArticleEvents string `mapstructure:"articleEvents" json:"articleEvents" yaml:"articleEvents"` //  outbox 中继发布的文章事件主题
	CommentEvents string `mapstructure:"commentEvents" json:"commentEvents" yaml:"commentEvents"` //  评论服务发布的评论事件主题
}

// OutboxRelayConfig outbox 中继任务配置
type OutboxRelayConfig struct {
	Enabled   bool   `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Cron      string `mapstructure:"cron" json:"cron" yaml:"cron"`
	BatchSize int    `mapstructure:"batchSize" json:"batchSize" yaml:"batchSize"`
	// SettleSeconds 是事件写入后等待并发事务提交的时间，只中继早于该窗口的事件
	SettleSeconds int `mapstructure:"settleSeconds" json:"settleSeconds" yaml:"settleSeconds"`
}
