package config

// RedisConfig Redis 连接配置。Addr 为空表示不启用 Redis，热榜将直接回源数据库
type RedisConfig struct {
	Addr         string `mapstructure:"addr" json:"addr" yaml:"addr"`
	Password     string `mapstructure:"password" json:"-" yaml:"password"`
	DB           int    `mapstructure:"db" json:"db" yaml:"db"`
	PoolSize     int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"`
	DialTimeout  int    `mapstructure:"dialTimeout" json:"dialTimeout" yaml:"dialTimeout"`    // 秒
	ReadTimeout  int    `mapstructure:"readTimeout" json:"readTimeout" yaml:"readTimeout"`    // 秒
	WriteTimeout int    `mapstructure:"writeTimeout" json:"writeTimeout" yaml:"writeTimeout"` // 秒
}

// RankConfig 点赞热榜配置
type RankConfig struct {
	// RefreshCron 是从数据库重建热榜 ZSet 的 cron 表达式，为空则不启动重建任务。
	RefreshCron string `mapstructure:"refreshCron" json:"refreshCron" yaml:"refreshCron"`
	// Size 是重建时写入 ZSet 的帖子数量上限。
	Size int `mapstructure:"size" json:"size" yaml:"size"`
}
