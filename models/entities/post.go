package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Xushengqwer/article_service/models/enums"
)

// NewID 生成 32 位十六进制的主键（去掉连字符的 UUIDv4）
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Post 帖子实体
// - 表名: posts
// - 软删除通过 Status=DELETED 实现，行记录始终保留
type Post struct {
	// 主键，32 位十六进制字符串
	ID string `gorm:"type:char(32);primaryKey"`

	// 作者 ID，来自用户服务的外部标识，不做本地外键约束
	AuthorID string `gorm:"type:varchar(64);not null;index"`

	// 分类 ID，可为空
	CategoryID *string   `gorm:"type:char(32);index"`
	Category   *Category `gorm:"foreignKey:CategoryID"`

	Title        string  `gorm:"type:varchar(200);not null"`
	ContentMD    *string `gorm:"type:text"`
	ContentS3URL *string `gorm:"column:content_s3url;type:varchar(512)"`

	Visibility enums.Visibility `gorm:"type:varchar(16);not null;default:PUBLIC;index"`
	Status     enums.PostStatus `gorm:"type:varchar(16);not null;default:DRAFT;index"`

	// 计数器均为非负整数，由原子 SQL 表达式维护
	ViewCount    int64 `gorm:"not null;default:0"`
	LikeCount    int64 `gorm:"not null;default:0;index"`
	CommentCount int64 `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	// Tags 通过 post_tags 关联表手动加载
	Tags []Tag `gorm:"-"`
}

// BeforeCreate 在插入前补齐主键
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}

// IsDeleted 帖子是否已被软删除
func (p *Post) IsDeleted() bool {
	return p.Status == enums.StatusDeleted
}

// AllModels 返回需要自动迁移的全部实体
func AllModels() []interface{} {
	return []interface{}{
		&Category{},
		&Tag{},
		&Post{},
		&PostTag{},
		&PostReaction{},
		&PostMedia{},
		&OutboxEvent{},
	}
}
