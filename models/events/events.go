package events

import (
	"encoding/json"
	"time"
)

// PostPayload 帖子创建/更新/删除事件的载荷
type PostPayload struct {
	PostID       string   `json:"post_id"`
	AuthorID     string   `json:"author_id"`
	CategoryID   *string  `json:"category_id,omitempty"`
	Title        string   `json:"title"`
	Visibility   string   `json:"visibility"`
	Status       string   `json:"status"`
	Tags         []string `json:"tags,omitempty"`
	ContentS3URL *string  `json:"content_s3url,omitempty"`
	// ChangedFields 仅在局部更新时填充
	ChangedFields []string  `json:"changed_fields,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// ReactionPayload 表态切换事件的载荷，Previous/Current 为空表示无表态
type ReactionPayload struct {
	PostID     string    `json:"post_id"`
	UserID     string    `json:"user_id"`
	Previous   *string   `json:"previous"`
	Current    *string   `json:"current"`
	LikeCount  int64     `json:"like_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ImagePayload 图片上传/删除事件的载荷
type ImagePayload struct {
	PostID     string    `json:"post_id"`
	MediaID    string    `json:"media_id"`
	URL        string    `json:"url"`
	ObjectKey  string    `json:"object_key"`
	MimeType   string    `json:"mime_type,omitempty"`
	Width      *int      `json:"width,omitempty"`
	Height     *int      `json:"height,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OutboxMessage 是 outbox 中继写入 Kafka 的消息体
type OutboxMessage struct {
	EventID     uint64          `json:"event_id"`
	AggregateID string          `json:"aggregate_id"`
	EventType   string          `json:"event_type"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CommentEvent 评论服务发布的评论变更事件
type CommentEvent struct {
	EventID   string `json:"event_id"`
	PostID    string `json:"post_id"`
	EventType string `json:"event_type"`
}
