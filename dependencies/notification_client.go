package dependencies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/article_service/myErrors"
)

// Notifier 向通知服务报告用户活动
type Notifier interface {
	Notify(ctx context.Context, userID, activityType string, data map[string]interface{}) error
}

type noopNotifier struct {
	logger *core.ZapLogger
}

// NewNoopNotifier 开发环境使用，不发送任何通知
func NewNoopNotifier(logger *core.ZapLogger) Notifier {
	return &noopNotifier{logger: logger}
}

func (n *noopNotifier) Notify(_ context.Context, userID, activityType string, _ map[string]interface{}) error {
	n.logger.Debug("开发模式: 跳过通知", zap.String("userID", userID), zap.String("activityType", activityType))
	return nil
}

// notificationRequest 通知服务的请求体
type notificationRequest struct {
	UserID       string                 `json:"user_id"`
	ActivityType string                 `json:"activity_type"`
	Data         map[string]interface{} `json:"data"`
	Timestamp    string                 `json:"timestamp"`
}

// HTTPNotifier 调用通知服务 POST /api/notifications
type HTTPNotifier struct {
	baseURL string
	client  *http.Client
	logger  *core.ZapLogger
}

func NewHTTPNotifier(baseURL string, timeout time.Duration, logger *core.ZapLogger) *HTTPNotifier {
	return &HTTPNotifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newCollaboratorHTTPClient(timeout),
		logger:  logger,
	}
}

func (n *HTTPNotifier) Notify(ctx context.Context, userID, activityType string, data map[string]interface{}) error {
	body, err := json.Marshal(notificationRequest{
		UserID:       userID,
		ActivityType: activityType,
		Data:         data,
		Timestamp:    time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("序列化通知失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/api/notifications", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: 构造通知请求失败: %v", myErrors.ErrCollaborator, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: 通知服务不可达: %v", myErrors.ErrCollaborator, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: 通知服务返回状态 %d", myErrors.ErrCollaborator, resp.StatusCode)
	}
	n.logger.Info("通知已发送", zap.String("userID", userID), zap.String("activityType", activityType))
	return nil
}
