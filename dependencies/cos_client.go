package dependencies

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"github.com/tencentyun/cos-go-sdk-v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/article_service/config"
)

// COSStorage 基于腾讯云 COS 的 ObjectStorage 实现
type COSStorage struct {
	client              *cos.Client
	publicAccessURLBase *url.URL
	logger              *core.ZapLogger
}

// InitCOS 初始化腾讯云 COS 客户端
func InitCOS(cfg *config.COSConfig, logger *core.ZapLogger) (*COSStorage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("COS 配置不能为nil")
	}
	if cfg.SecretID == "" || cfg.SecretKey == "" || cfg.BucketName == "" || cfg.AppID == "" || cfg.Region == "" {
		logger.Error("COS 配置不完整",
			zap.String("bucket", cfg.BucketName),
			zap.String("appID", cfg.AppID),
			zap.String("region", cfg.Region))
		return nil, fmt.Errorf("COS 配置不完整，缺少关键字段 (SecretID, SecretKey, BucketName, AppID, Region)")
	}

	bucketURLStr := fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", cfg.BucketName, cfg.AppID, cfg.Region)
	bucketURL, err := url.Parse(bucketURLStr)
	if err != nil {
		return nil, fmt.Errorf("解析 COS 存储桶 URL '%s' 失败: %w", bucketURLStr, err)
	}

	publicBase := bucketURL
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.Contains(base, "://") {
			base = "https://" + base
		}
		pu, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("解析 COS 公共访问域名 '%s' 失败: %w", cfg.BaseURL, err)
		}
		publicBase = pu
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	})

	logger.Info("COS 客户端初始化成功",
		zap.String("存储桶名称", cfg.BucketName),
		zap.String("地域", cfg.Region),
		zap.String("公共访问基础URL", publicBase.String()),
	)
	return &COSStorage{client: client, publicAccessURLBase: publicBase, logger: logger}, nil
}

// URL 构建对象的完整公共访问 URL
func (c *COSStorage) URL(objectKey string) string {
	basePath := c.publicAccessURLBase.Path
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	u := *c.publicAccessURLBase
	u.Path = basePath + strings.TrimPrefix(objectKey, "/")
	return u.String()
}

func (c *COSStorage) Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	opts := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   contentType,
			ContentLength: size,
		},
	}
	resp, err := c.client.Object.Put(ctx, objectKey, reader, opts)
	if err != nil {
		c.logger.Error("COS 文件上传 API 调用失败", zap.String("对象键", objectKey), zap.Error(err))
		return "", fmt.Errorf("上传文件 '%s' 到 COS 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		c.logger.Error("COS 文件上传返回非200状态码",
			zap.String("对象键", objectKey),
			zap.Int("状态码", resp.StatusCode),
			zap.String("响应信息", string(msg)))
		return "", fmt.Errorf("COS 文件上传失败，状态码: %d", resp.StatusCode)
	}

	publicURL := c.URL(objectKey)
	c.logger.Info("COS 文件上传成功", zap.String("对象键", objectKey), zap.String("公开访问URL", publicURL))
	return publicURL, nil
}

func (c *COSStorage) Delete(ctx context.Context, objectKey string) error {
	resp, err := c.client.Object.Delete(ctx, objectKey)
	if err != nil {
		if cos.IsNotFoundError(err) {
			return nil
		}
		c.logger.Error("COS 对象删除 API 调用失败", zap.String("对象键", objectKey), zap.Error(err))
		return fmt.Errorf("从 COS 删除对象 '%s' 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("COS 对象删除失败，状态码: %d", resp.StatusCode)
	}
	return nil
}
