package entities

import (
	"time"

	"gorm.io/gorm"
)

// PostMedia 帖子附带的图片
//   - 表名: post_media
//   - ObjectKey 是存储层内的相对键，删除记录时据此删除底层对象
type PostMedia struct {
	ID        string `gorm:"type:char(32);primaryKey"`
	PostID    string `gorm:"type:char(32);not null;index"`
	URL       string `gorm:"type:varchar(1023);not null"`
	ObjectKey string `gorm:"type:varchar(255);not null;index"`
	MimeType  string `gorm:"type:varchar(100);not null"`
	// 图片解析失败时宽高为空
	Width     *int
	Height    *int
	CreatedAt time.Time `gorm:"index"`
}

func (PostMedia) TableName() string {
	return "post_media"
}

func (m *PostMedia) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}
