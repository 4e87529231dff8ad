package enums

// Visibility 帖子可见性
type Visibility string

const (
	VisibilityPublic   Visibility = "PUBLIC"
	VisibilityPrivate  Visibility = "PRIVATE"
	VisibilityUnlisted Visibility = "UNLISTED"
)

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityUnlisted:
		return true
	}
	return false
}

// PostStatus 帖子状态，DELETED 表示软删除
type PostStatus string

const (
	StatusPublished PostStatus = "PUBLISHED"
	StatusDraft     PostStatus = "DRAFT"
	StatusDeleted   PostStatus = "DELETED"
)

func (s PostStatus) IsValid() bool {
	switch s {
	case StatusPublished, StatusDraft, StatusDeleted:
		return true
	}
	return false
}

// ReactionType 用户对帖子的表态
type ReactionType string

const (
	ReactionLike    ReactionType = "LIKE"
	ReactionDislike ReactionType = "DISLIKE"
)

func (r ReactionType) IsValid() bool {
	return r == ReactionLike || r == ReactionDislike
}

// SortOrder 列表排序方式
type SortOrder string

const (
	SortLatest  SortOrder = "latest"
	SortPopular SortOrder = "popular"
)

func (s SortOrder) IsValid() bool {
	return s == SortLatest || s == SortPopular
}
