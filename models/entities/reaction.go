package entities

import (
	"time"

	"github.com/Xushengqwer/article_service/models/enums"
)

// PostReaction 用户对帖子的表态
// - 复合主键 (post_id, user_id) 保证同一用户对同一帖子最多一条记录
type PostReaction struct {
	PostID    string             `gorm:"type:char(32);primaryKey"`
	UserID    string             `gorm:"type:varchar(64);primaryKey;index"`
	Type      enums.ReactionType `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
