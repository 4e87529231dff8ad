package vo

import (
	"time"

	"github.com/Xushengqwer/article_service/models/entities"
)

// CategoryVO 分类
type CategoryVO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TagVO 标签
type TagVO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// PostVO 帖子对外展示结构
type PostVO struct {
	ID           string      `json:"id"`
	AuthorID     string      `json:"author_id"`
	CategoryID   *string     `json:"category_id"`
	Category     *CategoryVO `json:"category,omitempty"`
	Title        string      `json:"title"`
	ContentMD    *string     `json:"content_md"`
	ContentS3URL *string     `json:"content_s3url"`
	Visibility   string      `json:"visibility"`
	Status       string      `json:"status"`
	ViewCount    int64       `json:"view_count"`
	LikeCount    int64       `json:"like_count"`
	CommentCount int64       `json:"comment_count"`
	Tags         []TagVO     `json:"tags"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// PageMeta 分页元信息
type PageMeta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

// NewPageMeta 根据总数计算总页数
func NewPageMeta(page, perPage int, total int64) PageMeta {
	pages := 0
	if perPage > 0 {
		pages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return PageMeta{Page: page, PerPage: perPage, Total: total, Pages: pages}
}

// PostPageVO 帖子分页结果
type PostPageVO struct {
	Posts []PostVO `json:"posts"`
	Meta  PageMeta `json:"meta"`
}

// ReactionResultVO 点赞/点踩切换结果，Reaction 为空表示当前无表态
type ReactionResultVO struct {
	PostID    string  `json:"post_id"`
	UserID    string  `json:"user_id"`
	Reaction  *string `json:"reaction"`
	LikeCount int64   `json:"like_count"`
}

// MediaVO 图片
type MediaVO struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	URL       string    `json:"url"`
	MimeType  string    `json:"mime_type"`
	Width     *int      `json:"width"`
	Height    *int      `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategoryVO 实体转换
func NewCategoryVO(c *entities.Category) *CategoryVO {
	if c == nil {
		return nil
	}
	return &CategoryVO{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt}
}

// NewTagVOs 实体转换，空切片也返回非 nil，保证 JSON 输出为 []
func NewTagVOs(tags []entities.Tag) []TagVO {
	out := make([]TagVO, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagVO{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt})
	}
	return out
}

// NewPostVO 实体转换
func NewPostVO(p *entities.Post) PostVO {
	return PostVO{
		ID:           p.ID,
		AuthorID:     p.AuthorID,
		CategoryID:   p.CategoryID,
		Category:     NewCategoryVO(p.Category),
		Title:        p.Title,
		ContentMD:    p.ContentMD,
		ContentS3URL: p.ContentS3URL,
		Visibility:   string(p.Visibility),
		Status:       string(p.Status),
		ViewCount:    p.ViewCount,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		Tags:         NewTagVOs(p.Tags),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewPostVOs 批量转换
func NewPostVOs(posts []*entities.Post) []PostVO {
	out := make([]PostVO, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostVO(p))
	}
	return out
}

// NewMediaVO 实体转换
func NewMediaVO(m *entities.PostMedia) MediaVO {
	return MediaVO{
		ID:        m.ID,
		PostID:    m.PostID,
		URL:       m.URL,
		MimeType:  m.MimeType,
		Width:     m.Width,
		Height:    m.Height,
		CreatedAt: m.CreatedAt,
	}
}
