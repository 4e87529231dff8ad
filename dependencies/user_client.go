package dependencies

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/article_service/myErrors"
)

// UserDirectory 确认作者是否为用户服务中的有效用户
type UserDirectory interface {
	UserExists(ctx context.Context, userID string) (bool, error)
}

// bypassUserDirectory 开发环境使用，总是确认
type bypassUserDirectory struct {
	logger *core.ZapLogger
}

// NewBypassUserDirectory 返回跳过校验的实现
func NewBypassUserDirectory(logger *core.ZapLogger) UserDirectory {
	return &bypassUserDirectory{logger: logger}
}

func (d *bypassUserDirectory) UserExists(_ context.Context, userID string) (bool, error) {
	d.logger.Debug("开发模式: 跳过用户校验", zap.String("userID", userID))
	return true, nil
}

// HTTPUserDirectory 调用用户服务 GET /api/users/{id}
type HTTPUserDirectory struct {
	baseURL string
	client  *http.Client
	logger  *core.ZapLogger
}

// NewHTTPUserDirectory 创建用户服务客户端，timeout 约束单次调用
func NewHTTPUserDirectory(baseURL string, timeout time.Duration, logger *core.ZapLogger) *HTTPUserDirectory {
	return &HTTPUserDirectory{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newCollaboratorHTTPClient(timeout),
		logger:  logger,
	}
}

// UserExists 200 表示用户存在，404 表示不存在，其余状态与网络错误返回 myErrors.ErrCollaborator
func (d *HTTPUserDirectory) UserExists(ctx context.Context, userID string) (bool, error) {
	endpoint := d.baseURL + "/api/users/" + url.PathEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("%w: 构造用户服务请求失败: %v", myErrors.ErrCollaborator, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Error("用户服务连接失败", zap.String("userID", userID), zap.Error(err))
		return false, fmt.Errorf("%w: 用户服务不可达: %v", myErrors.ErrCollaborator, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		d.logger.Warn("用户服务返回非预期状态", zap.String("userID", userID), zap.Int("status", resp.StatusCode))
		return false, fmt.Errorf("%w: 用户服务返回状态 %d", myErrors.ErrCollaborator, resp.StatusCode)
	}
}

// newCollaboratorHTTPClient 带追踪传播的 HTTP 客户端
func newCollaboratorHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
