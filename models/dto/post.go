package dto

import (
	"io"

	"github.com/Xushengqwer/article_service/models/enums"
)

// CreatePostRequest 创建帖子的请求体
type CreatePostRequest struct {
	Title        string            `json:"title" binding:"required,max=200"`
	ContentMD    *string           `json:"content_md"`
	ContentS3URL *string           `json:"content_s3url" binding:"omitempty,max=512"`
	AuthorID     string            `json:"author_id" binding:"required,max=64"`
	CategoryID   *string           `json:"category_id" binding:"omitempty,max=32"`
	Visibility   *enums.Visibility `json:"visibility" binding:"omitempty,oneof=PUBLIC PRIVATE UNLISTED"`
	Status       *enums.PostStatus `json:"status" binding:"omitempty,oneof=PUBLISHED DRAFT"`
	// Tags 为标签名列表，不存在的标签会被自动创建
	Tags []string `json:"tags" binding:"omitempty,max=10,dive,required,max=50"`
}

// ReplacePostRequest 全量更新（PUT）与创建的必填项一致，缺省的可选字段会被重置
type ReplacePostRequest = CreatePostRequest

// PatchPostRequest 局部更新（PATCH），只修改出现的字段
type PatchPostRequest struct {
	Title        *string           `json:"title" binding:"omitempty,min=1,max=200"`
	ContentMD    *string           `json:"content_md"`
	ContentS3URL *string           `json:"content_s3url" binding:"omitempty,max=512"`
	AuthorID     *string           `json:"author_id" binding:"omitempty,min=1,max=64"`
	// CategoryID 传空字符串表示清除分类
	CategoryID *string           `json:"category_id" binding:"omitempty,max=32"`
	Visibility *enums.Visibility `json:"visibility" binding:"omitempty,oneof=PUBLIC PRIVATE UNLISTED"`
	Status     *enums.PostStatus `json:"status" binding:"omitempty,oneof=PUBLISHED DRAFT"`
	// Tags 为 nil 表示不修改，空数组表示清空
	Tags []string `json:"tags" binding:"omitempty,max=10,dive,required,max=50"`
}

// ToggleReactionRequest 点赞/点踩切换请求
type ToggleReactionRequest struct {
	UserID string `json:"user_id" binding:"required,max=64"`
	// Action 缺省为 LIKE
	Action string `json:"action" binding:"omitempty,oneof=LIKE DISLIKE like dislike"`
}

// CreateCategoryRequest 创建分类
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description"`
}

// CreateTagRequest 创建标签
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// ImageUpload 上传图片的输入，由控制器从 multipart 文件构造
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}
