package config

// SourceConfig 代表一个数据库源（主库或从库）的配置
type SourceConfig struct {
	DSN string `mapstructure:"dsn" json:"-" yaml:"dsn"`
	// 独立的连接池设置，未设置时使用共享设置
	MaxIdleConns    *int `mapstructure:"max_idle_conns,omitempty" json:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int `mapstructure:"max_open_conns,omitempty" json:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int `mapstructure:"conn_max_lifetime,omitempty" json:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// MySQLConfig 包含主库和从库的配置 (使用 DSN)
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" json:"write" yaml:"write"` // 主库，可由 DATABASE_URL 覆盖
	Read  []SourceConfig `mapstructure:"read" json:"read" yaml:"read"`    // 从库列表，为空表示不启用读写分离

	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" json:"max_idle_conns" yaml:"max_idle_conns"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conns" json:"max_open_conns" yaml:"max_open_conns"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" json:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒

	MaxRetries int `mapstructure:"max_retries" json:"max_retries" yaml:"max_retries"`
}
