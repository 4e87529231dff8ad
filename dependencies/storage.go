package dependencies

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/article_service/config"
)

// 存储驱动
const (
	StorageDriverLocal = "local"
	StorageDriverCOS   = "cos"
)

// ObjectStorage 是图片等媒体文件的存储抽象，key 为存储内的相对路径
type ObjectStorage interface {
	// Upload 写入对象并返回其公开访问 URL
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	// Delete 删除对象，对象不存在时视为成功
	Delete(ctx context.Context, key string) error
	// URL 返回对象的公开访问 URL
	URL(key string) string
}

// NewObjectStorage 按配置选择存储驱动。
// 未指定驱动时，开发环境使用本地磁盘，其余环境使用 COS。
func NewObjectStorage(cfg *config.ArticleConfig, logger *core.ZapLogger) (ObjectStorage, error) {
	driver := ResolveStorageDriver(cfg)
	switch driver {
	case StorageDriverLocal:
		s, err := NewLocalStorage(cfg.StorageConfig.LocalDir, cfg.StorageConfig.PublicPrefix, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case StorageDriverCOS:
		s, err := InitCOS(&cfg.COSConfig, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("未知的存储驱动 '%s'", driver)
	}
}

// ResolveStorageDriver 返回实际生效的存储驱动名
func ResolveStorageDriver(cfg *config.ArticleConfig) string {
	driver := strings.ToLower(strings.TrimSpace(cfg.StorageConfig.Driver))
	if driver != "" {
		return driver
	}
	if cfg.ServerConfig.IsDevelopment() {
		return StorageDriverLocal
	}
	return StorageDriverCOS
}

// LocalStorage 把对象写到本地目录，由 HTTP 服务以静态文件方式暴露
type LocalStorage struct {
	root         string
	publicPrefix string
	logger       *core.ZapLogger
}

// NewLocalStorage 创建本地存储，根目录不存在时自动创建
func NewLocalStorage(root, publicPrefix string, logger *core.ZapLogger) (*LocalStorage, error) {
	if root == "" {
		return nil, errors.New("本地存储根目录未配置")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("创建本地存储目录 '%s' 失败: %w", root, err)
	}
	if publicPrefix == "" {
		publicPrefix = "/uploads"
	}
	logger.Info("使用本地磁盘存储媒体文件", zap.String("root", root), zap.String("publicPrefix", publicPrefix))
	return &LocalStorage{
		root:         root,
		publicPrefix: "/" + strings.Trim(publicPrefix, "/"),
		logger:       logger,
	}, nil
}

// Root 返回本地存储根目录
func (s *LocalStorage) Root() string {
	return s.root
}

// PublicPrefix 返回规整后的对外 URL 前缀，如 /uploads
func (s *LocalStorage) PublicPrefix() string {
	return s.publicPrefix
}

// resolve 把 key 映射到根目录下的路径，拒绝越出根目录的 key
func (s *LocalStorage) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("非法的对象键 '%s'", key)
	}
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

func (s *LocalStorage) Upload(ctx context.Context, key string, reader io.Reader, _ int64, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("创建目录失败: %w", err)
	}
	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("创建文件 '%s' 失败: %w", key, err)
	}
	if _, err := io.Copy(f, reader); err != nil {
		_ = f.Close()
		_ = os.Remove(p)
		return "", fmt.Errorf("写入文件 '%s' 失败: %w", key, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(p)
		return "", fmt.Errorf("关闭文件 '%s' 失败: %w", key, err)
	}
	s.logger.Debug("本地文件写入成功", zap.String("key", key))
	return s.URL(key), nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	p, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("删除文件 '%s' 失败: %w", key, err)
	}
	return nil
}

func (s *LocalStorage) URL(key string) string {
	return s.publicPrefix + "/" + strings.TrimPrefix(key, "/")
}
