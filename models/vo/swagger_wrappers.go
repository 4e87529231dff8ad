package vo

// 以下包装器仅用于 swag 生成文档，对应 response.APIResponse[T] 的具体化形式

// PostResponseWrapper 对应 response.APIResponse[vo.PostVO]
type PostResponseWrapper struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"success"`
	Data    PostVO `json:"data"`
}

// PostListResponseWrapper 对应带分页元信息的 response.APIResponse[[]vo.PostVO]
type PostListResponseWrapper struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message" example:"success"`
	Data    []PostVO `json:"data"`
	Meta    PageMeta `json:"meta"`
}

// ReactionResponseWrapper 对应 response.APIResponse[vo.ReactionResultVO]
type ReactionResponseWrapper struct {
	Success bool             `json:"success" example:"true"`
	Message string           `json:"message" example:"success"`
	Data    ReactionResultVO `json:"data"`
}

// MediaResponseWrapper 对应 response.APIResponse[vo.MediaVO]
type MediaResponseWrapper struct {
	Success bool    `json:"success" example:"true"`
	Message string  `json:"message" example:"success"`
	Data    MediaVO `json:"data"`
}

// MediaListResponseWrapper 对应 response.APIResponse[[]vo.MediaVO]
type MediaListResponseWrapper struct {
	Success bool      `json:"success" example:"true"`
	Message string    `json:"message" example:"success"`
	Data    []MediaVO `json:"data"`
}

// CategoryResponseWrapper 对应 response.APIResponse[vo.CategoryVO]
type CategoryResponseWrapper struct {
	Success bool       `json:"success" example:"true"`
	Message string     `json:"message" example:"success"`
	Data    CategoryVO `json:"data"`
}

// CategoryListResponseWrapper 对应 response.APIResponse[[]vo.CategoryVO]
type CategoryListResponseWrapper struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"success"`
	Data    []CategoryVO `json:"data"`
}

// TagResponseWrapper 对应 response.APIResponse[vo.TagVO]
type TagResponseWrapper struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"success"`
	Data    TagVO  `json:"data"`
}

// TagListResponseWrapper 对应 response.APIResponse[[]vo.TagVO]
type TagListResponseWrapper struct {
	Success bool    `json:"success" example:"true"`
	Message string  `json:"message" example:"success"`
	Data    []TagVO `json:"data"`
}

// BaseResponseWrapper 只含 success 与 message 的简单成功响应，如删除
type BaseResponseWrapper struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"success"`
}

// ErrorResponseWrapper 对应 response.APIErrorResponse
type ErrorResponseWrapper struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"帖子不存在"`
	Error   struct {
		Code    string `json:"code" example:"NOT_FOUND"`
		Details any    `json:"details,omitempty"`
	} `json:"error"`
}
