package config

// COSConfig 腾讯云 COS 对象存储配置
type COSConfig struct {
	SecretID   string `mapstructure:"secretID" json:"-" yaml:"secretID"`
	SecretKey  string `mapstructure:"secretKey" json:"-" yaml:"secretKey"`
	BucketName string `mapstructure:"bucketName" json:"bucketName" yaml:"bucketName"`
	AppID      string `mapstructure:"appID" json:"appID" yaml:"appID"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`
	// BaseURL 为 CDN 或自定义域名，配置后公开访问 URL 优先使用它
	BaseURL string `mapstructure:"baseURL" json:"baseURL" yaml:"baseURL"`
}

// StorageConfig 媒体文件存储配置
type StorageConfig struct {
	// Driver 可选 local / cos，为空时开发环境使用 local，其余环境使用 cos
	Driver string `mapstructure:"driver" json:"driver" yaml:"driver"`
	// LocalDir 是本地存储的根目录
	LocalDir string `mapstructure:"localDir" json:"localDir" yaml:"localDir"`
	// PublicPrefix 是本地文件对外暴露的 URL 前缀
	PublicPrefix string `mapstructure:"publicPrefix" json:"publicPrefix" yaml:"publicPrefix"`
	// MaxUploadBytes 单个上传文件的大小上限
	MaxUploadBytes int64 `mapstructure:"maxUploadBytes" json:"maxUploadBytes" yaml:"maxUploadBytes"`
}

// CollaboratorConfig 外部协作服务配置
type CollaboratorConfig struct {
	UserServiceURL         string `mapstructure:"userServiceURL" json:"userServiceURL" yaml:"userServiceURL"`
	NotificationServiceURL string `mapstructure:"notificationServiceURL" json:"notificationServiceURL" yaml:"notificationServiceURL"`
	TimeoutSeconds         int    `mapstructure:"timeoutSeconds" json:"timeoutSeconds" yaml:"timeoutSeconds"`
}
