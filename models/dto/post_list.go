package dto

import (
	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/models/enums"
)

// ListPostsQuery 帖子列表查询参数
type ListPostsQuery struct {
	// Page 页码，从 1 开始，小于 1 时按 1 处理
	Page int `form:"page"`
	// PerPage 每页数量，默认 10，超过 50 时截断为 50
	PerPage int `form:"per_page"`
	// Q 在标题与正文上做子串匹配
	Q string `form:"q" binding:"omitempty,max=255"`
	// Visibility 缺省为 PUBLIC
	Visibility string `form:"visibility" binding:"omitempty,oneof=PUBLIC PRIVATE UNLISTED"`
	// Status 仅在提供时过滤
	Status     string `form:"status" binding:"omitempty,oneof=PUBLISHED DRAFT DELETED"`
	CategoryID string `form:"category_id" binding:"omitempty,max=32"`
	// Sort 可选 latest / popular，缺省 latest
	Sort string `form:"sort" binding:"omitempty,oneof=latest popular"`
}

// Normalize 补齐缺省值并截断分页参数
func (q *ListPostsQuery) Normalize() {
	if q.Page < 1 {
		q.Page = constant.DefaultPage
	}
	if q.PerPage < 1 {
		q.PerPage = constant.DefaultPerPage
	}
	if q.PerPage > constant.MaxPerPage {
		q.PerPage = constant.MaxPerPage
	}
	if q.Visibility == "" {
		q.Visibility = string(enums.VisibilityPublic)
	}
	if q.Sort == "" {
		q.Sort = string(enums.SortLatest)
	}
}

// Offset 计算分页偏移量
func (q *ListPostsQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// HotPostsQuery 热榜查询参数，limit 缺省 10，超过 50 时截断
type HotPostsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=0"`
}
