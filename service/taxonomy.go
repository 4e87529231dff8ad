package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/models/entities"
	"github.com/Xushengqwer/article_service/models/vo"
	"github.com/Xushengqwer/article_service/myErrors"
	"github.com/Xushengqwer/article_service/repo/mysql"
)

// TaxonomyService 分类与标签的管理
type TaxonomyService interface {
	ListCategories(ctx context.Context) ([]vo.CategoryVO, error)
	// CreateCategory 名称重复时返回 myErrors.ErrValidation
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*vo.CategoryVO, error)
	ListTags(ctx context.Context) ([]vo.TagVO, error)
	// CreateTag 名称重复时返回 myErrors.ErrValidation
	CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*vo.TagVO, error)
	// EnsureDefaultCategories 启动时幂等地补齐默认分类
	EnsureDefaultCategories(ctx context.Context) error
}

type taxonomyService struct {
	db           *gorm.DB
	categoryRepo mysql.CategoryRepository
	tagRepo      mysql.TagRepository
	logger       *core.ZapLogger
}

func NewTaxonomyService(db *gorm.DB, categoryRepo mysql.CategoryRepository, tagRepo mysql.TagRepository, logger *core.ZapLogger) TaxonomyService {
	return &taxonomyService{db: db, categoryRepo: categoryRepo, tagRepo: tagRepo, logger: logger}
}

func (s *taxonomyService) ListCategories(ctx context.Context) ([]vo.CategoryVO, error) {
	list, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]vo.CategoryVO, 0, len(list))
	for _, c := range list {
		out = append(out, *vo.NewCategoryVO(c))
	}
	return out, nil
}

func (s *taxonomyService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*vo.CategoryVO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: 分类名称不能为空", myErrors.ErrValidation)
	}
	if len([]rune(name)) > 100 {
		return nil, fmt.Errorf("%w: 分类名称不能超过 100 个字符", myErrors.ErrValidation)
	}
	category := &entities.Category{Name: name, Description: req.Description}
	if err := s.categoryRepo.CreateCategory(ctx, s.db, category); err != nil {
		if myErrors.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: 分类 '%s' 已存在", myErrors.ErrValidation, name)
		}
		s.logger.Error("创建分类失败", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("创建分类失败: %w", err)
	}
	return vo.NewCategoryVO(category), nil
}

func (s *taxonomyService) ListTags(ctx context.Context) ([]vo.TagVO, error) {
	list, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	tags := make([]entities.Tag, 0, len(list))
	for _, t := range list {
		tags = append(tags, *t)
	}
	return vo.NewTagVOs(tags), nil
}

func (s *taxonomyService) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*vo.TagVO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: 标签名称不能为空", myErrors.ErrValidation)
	}
	if len([]rune(name)) > 50 {
		return nil, fmt.Errorf("%w: 标签名称不能超过 50 个字符", myErrors.ErrValidation)
	}
	tag := &entities.Tag{Name: name}
	if err := s.tagRepo.CreateTag(ctx, s.db, tag); err != nil {
		if myErrors.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: 标签 '%s' 已存在", myErrors.ErrValidation, name)
		}
		s.logger.Error("创建标签失败", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("创建标签失败: %w", err)
	}
	return &vo.NewTagVOs([]entities.Tag{*tag})[0], nil
}

func (s *taxonomyService) EnsureDefaultCategories(ctx context.Context) error {
	if err := s.categoryRepo.EnsureCategories(ctx, constant.DefaultCategories); err != nil {
		return err
	}
	s.logger.Info("默认分类已就绪", zap.Int("count", len(constant.DefaultCategories)))
	return nil
}
