package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
	"gorm.io/gorm"

	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/dependencies"
	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/models/events"
	"github.com/Xushengqwer/article_service/models/vo"
	"github.com/Xushengqwer/article_service/myErrors"
	"github.com/Xushengqwer/article_service/repo/mysql"
)

// storageTimeout 约束单次对象存储调用
const storageTimeout = 30 * time.Second

var unsafeStemChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// MediaService 帖子图片的上传、列表与删除
type MediaService interface {
	// UploadImage 校验扩展名与大小，解析尺寸与 MIME 后写入存储，
	// 再在一个事务内保存记录并写入 POST_IMAGE_UPLOADED 事件。
	UploadImage(ctx context.Context, postID string, upload *dto.ImageUpload) (*vo.MediaVO, error)
	// ListMedia 按上传时间倒序返回帖子的图片
	ListMedia(ctx context.Context, postID string) ([]vo.MediaVO, error)
	// DeleteMedia 在事务内删除图片记录并写入 POST_IMAGE_DELETED 事件，提交后再删除存储对象
	DeleteMedia(ctx context.Context, postID, mediaID string) error
}

type mediaService struct {
	db        *gorm.DB
	postRepo  mysql.PostRepository
	mediaRepo mysql.MediaRepository
	outbox    OutboxRecorder
	storage   dependencies.ObjectStorage
	maxBytes  int64
	logger    *core.ZapLogger
}

func NewMediaService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	mediaRepo mysql.MediaRepository,
	outbox OutboxRecorder,
	storage dependencies.ObjectStorage,
	maxBytes int64,
	logger *core.ZapLogger,
) MediaService {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &mediaService{
		db:        db,
		postRepo:  postRepo,
		mediaRepo: mediaRepo,
		outbox:    outbox,
		storage:   storage,
		maxBytes:  maxBytes,
		logger:    logger,
	}
}

// imageInfo 图片解析结果，解析失败时宽高为空
type imageInfo struct {
	mimeType string
	width    *int
	height   *int
}

// inspectImage 用 image.DecodeConfig 读取尺寸，用 mimetype 嗅探类型。
// 无法解码时退回客户端声明的 Content-Type。
func inspectImage(data []byte, declaredType string) imageInfo {
	info := imageInfo{}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		w, h := cfg.Width, cfg.Height
		info.width, info.height = &w, &h
		info.mimeType = mimetype.Detect(data).String()
		if i := strings.Index(info.mimeType, ";"); i >= 0 {
			info.mimeType = info.mimeType[:i]
		}
		return info
	}
	info.mimeType = strings.TrimSpace(declaredType)
	if info.mimeType == "" {
		info.mimeType = "application/octet-stream"
	}
	return info
}

// sanitizeStem 只保留文件名中的安全字符，结果为空时使用 image
func sanitizeStem(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.Trim(unsafeStemChars.ReplaceAllString(stem, "_"), "_")
	if len(stem) > 64 {
		stem = stem[:64]
	}
	if stem == "" {
		stem = "image"
	}
	return stem
}

// buildObjectKey 生成 {post_id}/{stem}_{uuid 前 8 位}{ext}
func buildObjectKey(postID, filename, ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s/%s_%s.%s", postID, sanitizeStem(filename), suffix, ext)
}

// allowedExtension 返回小写且不含点的扩展名
func allowedExtension(filename string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	_, ok := constant.AllowedImageExtensions[ext]
	return ext, ok
}

func (s *mediaService) UploadImage(ctx context.Context, postID string, upload *dto.ImageUpload) (*vo.MediaVO, error) {
	if upload == nil || upload.Content == nil || upload.Filename == "" {
		return nil, fmt.Errorf("%w: 缺少上传文件", myErrors.ErrValidation)
	}
	ext, ok := allowedExtension(upload.Filename)
	if !ok {
		return nil, fmt.Errorf("%w: 不支持的文件类型 '%s'，只允许 png, jpg, jpeg, gif, webp", myErrors.ErrValidation, upload.Filename)
	}

	data, err := io.ReadAll(io.LimitReader(upload.Content, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("读取上传文件失败: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: 文件大小超过上限 %d 字节", myErrors.ErrValidation, s.maxBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: 上传文件为空", myErrors.ErrValidation)
	}

	post, err := s.postRepo.GetPostByID(ctx, s.db, postID)
	if err != nil {
		return nil, err
	}
	if post.IsDeleted() {
		return nil, fmt.Errorf("帖子 %s 已删除: %w", postID, myErrors.ErrRepoNotFound)
	}

	info := inspectImage(data, upload.ContentType)
	objectKey := buildObjectKey(postID, upload.Filename, ext)

	sctx, cancel := context.WithTimeout(ctx, storageTimeout)
	url, err := s.storage.Upload(sctx, objectKey, bytes.NewReader(data), int64(len(data)), info.mimeType)
	cancel()
	if err != nil {
		s.logger.Error("图片写入存储失败", zap.String("postID", postID), zap.String("objectKey", objectKey), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", myErrors.ErrStorage, err)
	}

	media := &entities.PostMedia{
		PostID:    postID,
		URL:       url,
		ObjectKey: objectKey,
		MimeType:  info.mimeType,
		Width:     info.width,
		Height:    info.height,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.mediaRepo.CreateMedia(ctx, tx, media); err != nil {
			return err
		}
		return s.outbox.RecordEvent(ctx, tx, postID, constant.EventPostImageUploaded, events.ImagePayload{
			PostID:     postID,
			MediaID:    media.ID,
			URL:        media.URL,
			ObjectKey:  media.ObjectKey,
			MimeType:   media.MimeType,
			Width:      media.Width,
			Height:     media.Height,
			OccurredAt: time.Now().UTC(),
		})
	})
	if err != nil {
		// 记录未落库，清理已写入的对象
		dctx, dcancel := context.WithTimeout(context.WithoutCancel(ctx), storageTimeout)
		if derr := s.storage.Delete(dctx, objectKey); derr != nil {
			s.logger.Warn("清理孤立的图片对象失败", zap.String("objectKey", objectKey), zap.Error(derr))
		}
		dcancel()
		s.logger.Error("保存图片记录失败", zap.String("postID", postID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("图片上传成功",
		zap.String("postID", postID),
		zap.String("mediaID", media.ID),
		zap.String("mimeType", media.MimeType))
	v := vo.NewMediaVO(media)
	return &v, nil
}

func (s *mediaService) ListMedia(ctx context.Context, postID string) ([]vo.MediaVO, error) {
	if _, err := s.postRepo.GetPostByID(ctx, s.db, postID); err != nil {
		return nil, err
	}
	list, err := s.mediaRepo.ListMediaByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	out := make([]vo.MediaVO, 0, len(list))
	for _, m := range list {
		out = append(out, vo.NewMediaVO(m))
	}
	return out, nil
}

func (s *mediaService) DeleteMedia(ctx context.Context, postID, mediaID string) error {
	var media *entities.PostMedia
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		media, err = s.mediaRepo.GetMedia(ctx, tx, postID, mediaID)
		if err != nil {
			return err
		}
		if err := s.mediaRepo.DeleteMedia(ctx, tx, media.ID); err != nil {
			return err
		}
		return s.outbox.RecordEvent(ctx, tx, postID, constant.EventPostImageDeleted, events.ImagePayload{
			PostID:     postID,
			MediaID:    media.ID,
			URL:        media.URL,
			ObjectKey:  media.ObjectKey,
			OccurredAt: time.Now().UTC(),
		})
	})
	if err != nil {
		if !errors.Is(err, myErrors.ErrRepoNotFound) {
			s.logger.Error("删除图片失败", zap.String("postID", postID), zap.String("mediaID", mediaID), zap.Error(err))
		}
		return err
	}

	// 记录已删除，对象清理失败只留下孤立文件
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storageTimeout)
	defer cancel()
	if err := s.storage.Delete(sctx, media.ObjectKey); err != nil {
		s.logger.Warn("删除图片对象失败", zap.String("objectKey", media.ObjectKey), zap.Error(err))
	}
	return nil
}
