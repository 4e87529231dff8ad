package constant

const (
	ServiceName    = "article_service"
	ServiceVersion = "1.0.0"
)

// 分页
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 50

	DefaultHotLimit = 10
	MaxHotLimit     = 50
)

// Outbox 事件类型
const (
	EventPostCreated         = "POST_CREATED"
	EventPostUpdated         = "POST_UPDATED"
	EventPostDeleted         = "POST_DELETED"
	EventPostReactionChanged = "POST_REACTION_CHANGED"
	EventPostImageUploaded   = "POST_IMAGE_UPLOADED"
	EventPostImageDeleted    = "POST_IMAGE_DELETED"
)

// 评论服务事件类型，用于维护 comment_count
const (
	EventCommentCreated = "COMMENT_CREATED"
	EventCommentDeleted = "COMMENT_DELETED"
)

// 通知服务的活动类型
const (
	ActivityPostCreated = "POST_CREATED"
)

// AllowedImageExtensions 允许上传的图片扩展名（小写，不含点）
var AllowedImageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
}

// DefaultCategories 服务启动时确保存在的默认分类
var DefaultCategories = []string{"일반", "공지사항", "질문", "리뷰", "자유게시판", "기술", "일상"}
