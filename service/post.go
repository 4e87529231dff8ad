package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/dependencies"
	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/models/enums"
	"github.com/Xushengqwer/article_service/models/events"
	"github.com/Xushengqwer/article_service/models/vo"
	"github.com/Xushengqwer/article_service/myErrors"
	"github.com/Xushengqwer/article_service/repo/mysql"
)

const maxTitleLength = 200

// PostService 定义了处理帖子核心业务逻辑的接口。
type PostService interface {
	// CreatePost 创建帖子。
	// - 作者需经用户服务确认，分类（如提供）必须存在，标签按名称自动创建。
	// - 帖子与 POST_CREATED 事件在同一事务内写入，提交后尽力通知作者。
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*vo.PostVO, error)

	// GetPost 读取帖子并原子地增加浏览量，已软删除的帖子也可读取。
	GetPost(ctx context.Context, id string) (*vo.PostVO, error)

	// ReplacePost 全量更新，缺省的可选字段重置为默认值，标签整体替换。
	ReplacePost(ctx context.Context, id string, req *dto.ReplacePostRequest) (*vo.PostVO, error)

	// PatchPost 只修改请求中出现的字段。
	PatchPost(ctx context.Context, id string, req *dto.PatchPostRequest) (*vo.PostVO, error)

	// DeletePost 软删除，对已删除的帖子幂等且不再产生事件。
	DeletePost(ctx context.Context, id string) error
}

type postService struct {
	db           *gorm.DB
	postRepo     mysql.PostRepository
	categoryRepo mysql.CategoryRepository
	tagRepo      mysql.TagRepository
	outbox       OutboxRecorder
	users        dependencies.UserDirectory
	notifier     dependencies.Notifier
	logger       *core.ZapLogger
}

// NewPostService 是 postService 的构造函数。
func NewPostService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	categoryRepo mysql.CategoryRepository,
	tagRepo mysql.TagRepository,
	outbox OutboxRecorder,
	users dependencies.UserDirectory,
	notifier dependencies.Notifier,
	logger *core.ZapLogger,
) PostService {
	return &postService{
		db:           db,
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		outbox:       outbox,
		users:        users,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *postService) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*vo.PostVO, error) {
	if err := validatePostFields(req.Title, req.AuthorID, req.Visibility, req.Status); err != nil {
		return nil, err
	}
	if err := s.checkAuthor(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	post := &entities.Post{
		AuthorID:     strings.TrimSpace(req.AuthorID),
		Title:        strings.TrimSpace(req.Title),
		ContentMD:    req.ContentMD,
		ContentS3URL: req.ContentS3URL,
		Visibility:   enums.VisibilityPublic,
		Status:       enums.StatusDraft,
	}
	if req.Visibility != nil {
		post.Visibility = *req.Visibility
	}
	if req.Status != nil {
		post.Status = *req.Status
	}

	var result *vo.PostVO
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryID, err := s.resolveCategory(ctx, tx, req.CategoryID)
		if err != nil {
			return err
		}
		post.CategoryID = categoryID

		if err := s.postRepo.CreatePost(ctx, tx, post); err != nil {
			return fmt.Errorf("保存帖子失败: %w", err)
		}
		tags, err := s.applyTags(ctx, tx, post.ID, req.Tags)
		if err != nil {
			return err
		}
		if err := s.outbox.RecordEvent(ctx, tx, post.ID, constant.EventPostCreated, newPostPayload(post, tags, nil)); err != nil {
			return err
		}
		result, err = s.loadPostVO(ctx, tx, post.ID)
		return err
	})
	if err != nil {
		s.logger.Error("创建帖子失败", zap.String("authorID", req.AuthorID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("帖子创建成功", zap.String("postID", result.ID), zap.String("authorID", result.AuthorID))

	s.notifyPostCreated(ctx, result)
	return result, nil
}

func (s *postService) GetPost(ctx context.Context, id string) (*vo.PostVO, error) {
	var result *vo.PostVO
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.postRepo.IncrementViewCount(ctx, tx, id); err != nil {
			return err
		}
		var err error
		result, err = s.loadPostVO(ctx, tx, id)
		return err
	})
	if err != nil {
		if !errors.Is(err, myErrors.ErrRepoNotFound) {
			s.logger.Error("读取帖子失败", zap.String("postID", id), zap.Error(err))
		}
		return nil, err
	}
	return result, nil
}

func (s *postService) ReplacePost(ctx context.Context, id string, req *dto.ReplacePostRequest) (*vo.PostVO, error) {
	if err := validatePostFields(req.Title, req.AuthorID, req.Visibility, req.Status); err != nil {
		return nil, err
	}
	if err := s.checkAuthor(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	var result *vo.PostVO
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.postRepo.LockActivePost(ctx, tx, id); err != nil {
			return err
		}
		categoryID, err := s.resolveCategory(ctx, tx, req.CategoryID)
		if err != nil {
			return err
		}

		visibility := enums.VisibilityPublic
		if req.Visibility != nil {
			visibility = *req.Visibility
		}
		status := enums.StatusDraft
		if req.Status != nil {
			status = *req.Status
		}
		fields := map[string]interface{}{
			"title":         strings.TrimSpace(req.Title),
			"author_id":     strings.TrimSpace(req.AuthorID),
			"content_md":    nullableString(req.ContentMD),
			"content_s3url": nullableString(req.ContentS3URL),
			"category_id":   nullableString(categoryID),
			"visibility":    visibility,
			"status":        status,
		}
		if err := s.postRepo.UpdatePostFields(ctx, tx, id, fields); err != nil {
			return err
		}
		tags, err := s.applyTags(ctx, tx, id, req.Tags)
		if err != nil {
			return err
		}

		post, err := s.postRepo.GetPostByID(ctx, tx, id)
		if err != nil {
			return err
		}
		changed := []string{"title", "author_id", "content_md", "content_s3url", "category_id", "visibility", "status", "tags"}
		if err := s.outbox.RecordEvent(ctx, tx, id, constant.EventPostUpdated, newPostPayload(post, tags, changed)); err != nil {
			return err
		}
		result, err = s.loadPostVO(ctx, tx, id)
		return err
	})
	if err != nil {
		if !errors.Is(err, myErrors.ErrRepoNotFound) && !errors.Is(err, myErrors.ErrValidation) {
			s.logger.Error("全量更新帖子失败", zap.String("postID", id), zap.Error(err))
		}
		return nil, err
	}
	return result, nil
}

func (s *postService) PatchPost(ctx context.Context, id string, req *dto.PatchPostRequest) (*vo.PostVO, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, fmt.Errorf("%w: 标题不能为空", myErrors.ErrValidation)
	}
	if req.Title != nil && len([]rune(strings.TrimSpace(*req.Title))) > maxTitleLength {
		return nil, fmt.Errorf("%w: 标题不能超过 %d 个字符", myErrors.ErrValidation, maxTitleLength)
	}
	if req.AuthorID != nil && strings.TrimSpace(*req.AuthorID) == "" {
		return nil, fmt.Errorf("%w: 作者 ID 不能为空", myErrors.ErrValidation)
	}
	if err := validateVisibilityAndStatus(req.Visibility, req.Status); err != nil {
		return nil, err
	}
	if req.AuthorID != nil {
		if err := s.checkAuthor(ctx, *req.AuthorID); err != nil {
			return nil, err
		}
	}

	var result *vo.PostVO
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.postRepo.LockActivePost(ctx, tx, id); err != nil {
			return err
		}

		fields := map[string]interface{}{}
		changed := make([]string, 0, 8)
		if req.Title != nil {
			fields["title"] = strings.TrimSpace(*req.Title)
			changed = append(changed, "title")
		}
		if req.AuthorID != nil {
			fields["author_id"] = strings.TrimSpace(*req.AuthorID)
			changed = append(changed, "author_id")
		}
		if req.ContentMD != nil {
			fields["content_md"] = *req.ContentMD
			changed = append(changed, "content_md")
		}
		if req.ContentS3URL != nil {
			fields["content_s3url"] = *req.ContentS3URL
			changed = append(changed, "content_s3url")
		}
		if req.CategoryID != nil {
			// 空字符串表示清除分类
			categoryID, err := s.resolveCategory(ctx, tx, req.CategoryID)
			if err != nil {
				return err
			}
			fields["category_id"] = nullableString(categoryID)
			changed = append(changed, "category_id")
		}
		if req.Visibility != nil {
			fields["visibility"] = *req.Visibility
			changed = append(changed, "visibility")
		}
		if req.Status != nil {
			fields["status"] = *req.Status
			changed = append(changed, "status")
		}
		if err := s.postRepo.UpdatePostFields(ctx, tx, id, fields); err != nil {
			return err
		}

		var tags []entities.Tag
		if req.Tags != nil {
			var err error
			if tags, err = s.applyTags(ctx, tx, id, req.Tags); err != nil {
				return err
			}
			changed = append(changed, "tags")
		} else {
			byPost, err := s.tagRepo.GetTagsByPostIDs(ctx, tx, []string{id})
			if err != nil {
				return err
			}
			tags = byPost[id]
		}

		post, err := s.postRepo.GetPostByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.outbox.RecordEvent(ctx, tx, id, constant.EventPostUpdated, newPostPayload(post, tags, changed)); err != nil {
			return err
		}
		result, err = s.loadPostVO(ctx, tx, id)
		return err
	})
	if err != nil {
		if !errors.Is(err, myErrors.ErrRepoNotFound) && !errors.Is(err, myErrors.ErrValidation) {
			s.logger.Error("局部更新帖子失败", zap.String("postID", id), zap.Error(err))
		}
		return nil, err
	}
	return result, nil
}

func (s *postService) DeletePost(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := s.postRepo.GetPostByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if post.IsDeleted() {
			return nil
		}
		if err := s.postRepo.SoftDeletePost(ctx, tx, id); err != nil {
			return err
		}
		post.Status = enums.StatusDeleted
		return s.outbox.RecordEvent(ctx, tx, id, constant.EventPostDeleted, newPostPayload(post, nil, []string{"status"}))
	})
	if err != nil {
		if !errors.Is(err, myErrors.ErrRepoNotFound) {
			s.logger.Error("删除帖子失败", zap.String("postID", id), zap.Error(err))
		}
		return err
	}
	s.logger.Info("帖子已软删除", zap.String("postID", id))
	return nil
}

// checkAuthor 作者校验失败一律视为入参错误
func (s *postService) checkAuthor(ctx context.Context, authorID string) error {
	ok, err := s.users.UserExists(ctx, strings.TrimSpace(authorID))
	if err != nil {
		s.logger.Warn("无法确认作者", zap.String("authorID", authorID), zap.Error(err))
		return fmt.Errorf("%w: 无法确认作者 %s: %v", myErrors.ErrValidation, authorID, err)
	}
	if !ok {
		return fmt.Errorf("%w: 作者 %s 不存在", myErrors.ErrValidation, authorID)
	}
	return nil
}

// resolveCategory 空值返回 nil，非空时分类必须存在
func (s *postService) resolveCategory(ctx context.Context, tx *gorm.DB, categoryID *string) (*string, error) {
	if categoryID == nil || strings.TrimSpace(*categoryID) == "" {
		return nil, nil
	}
	id := strings.TrimSpace(*categoryID)
	category, err := s.categoryRepo.GetCategoryByID(ctx, tx, id)
	if err != nil {
		if errors.Is(err, myErrors.ErrRepoNotFound) {
			return nil, fmt.Errorf("%w: 分类 %s 不存在", myErrors.ErrValidation, id)
		}
		return nil, err
	}
	return &category.ID, nil
}

// applyTags 按名称解析或创建标签并覆盖帖子的标签集合
func (s *postService) applyTags(ctx context.Context, tx *gorm.DB, postID string, names []string) ([]entities.Tag, error) {
	tags, err := s.tagRepo.FindOrCreateTags(ctx, tx, names)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	if err := s.tagRepo.ReplacePostTags(ctx, tx, postID, ids); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *postService) loadPostVO(ctx context.Context, tx *gorm.DB, id string) (*vo.PostVO, error) {
	post, err := s.postRepo.GetPostByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := attachTags(ctx, tx, s.tagRepo, []*entities.Post{post}); err != nil {
		return nil, err
	}
	v := vo.NewPostVO(post)
	return &v, nil
}

func (s *postService) notifyPostCreated(ctx context.Context, post *vo.PostVO) {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	err := s.notifier.Notify(nctx, post.AuthorID, constant.ActivityPostCreated, map[string]interface{}{
		"post_id": post.ID,
		"title":   post.Title,
	})
	if err != nil {
		s.logger.Warn("发送帖子创建通知失败", zap.String("postID", post.ID), zap.Error(err))
	}
}

// attachTags 批量为帖子填充标签
func attachTags(ctx context.Context, db *gorm.DB, tagRepo mysql.TagRepository, posts []*entities.Post) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	byPost, err := tagRepo.GetTagsByPostIDs(ctx, db, ids)
	if err != nil {
		return err
	}
	for _, p := range posts {
		p.Tags = byPost[p.ID]
	}
	return nil
}

func validatePostFields(title, authorID string, visibility *enums.Visibility, status *enums.PostStatus) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: 标题不能为空", myErrors.ErrValidation)
	}
	if len([]rune(title)) > maxTitleLength {
		return fmt.Errorf("%w: 标题不能超过 %d 个字符", myErrors.ErrValidation, maxTitleLength)
	}
	if strings.TrimSpace(authorID) == "" {
		return fmt.Errorf("%w: 作者 ID 不能为空", myErrors.ErrValidation)
	}
	return validateVisibilityAndStatus(visibility, status)
}

// validateVisibilityAndStatus DELETED 只能通过删除接口设置
func validateVisibilityAndStatus(visibility *enums.Visibility, status *enums.PostStatus) error {
	if visibility != nil && !visibility.IsValid() {
		return fmt.Errorf("%w: 无效的可见性 %s", myErrors.ErrValidation, *visibility)
	}
	if status != nil && (!status.IsValid() || *status == enums.StatusDeleted) {
		return fmt.Errorf("%w: 无效的状态 %s", myErrors.ErrValidation, *status)
	}
	return nil
}

func newPostPayload(p *entities.Post, tags []entities.Tag, changed []string) events.PostPayload {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return events.PostPayload{
		PostID:        p.ID,
		AuthorID:      p.AuthorID,
		CategoryID:    p.CategoryID,
		Title:         p.Title,
		Visibility:    string(p.Visibility),
		Status:        string(p.Status),
		Tags:          names,
		ContentS3URL:  p.ContentS3URL,
		ChangedFields: changed,
		OccurredAt:    time.Now().UTC(),
	}
}

// nullableString 把空指针转为 SQL NULL
func nullableString(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
