package entities

import (
	"time"

	"gorm.io/gorm"
)

// Category 帖子分类，一个帖子最多属于一个分类
type Category struct {
	ID          string  `gorm:"type:char(32);primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}

// Tag 标签，名称唯一
type Tag struct {
	ID        string `gorm:"type:char(32);primaryKey"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex"`
	CreatedAt time.Time
}

func (t *Tag) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = NewID()
	}
	return nil
}

// PostTag 帖子与标签的多对多关联表
type PostTag struct {
	PostID    string `gorm:"type:char(32);primaryKey"`
	TagID     string `gorm:"type:char(32);primaryKey;index"`
	CreatedAt time.Time
}
