package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/response"
	"github.com/Xushengqwer/article_service/service"
)

// TaxonomyController 分类与标签
type TaxonomyController struct {
	taxonomyService service.TaxonomyService
}

func NewTaxonomyController(taxonomyService service.TaxonomyService) *TaxonomyController {
	return &TaxonomyController{taxonomyService: taxonomyService}
}

// ListCategories 分类列表
// @Summary      分类列表
// @Tags         taxonomy (分类与标签)
// @Produce      json
// @Success      200 {object} vo.CategoryListResponseWrapper "按名称排序的分类"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/categories [get]
func (ctrl *TaxonomyController) ListCategories(c *gin.Context) {
	list, err := ctrl.taxonomyService.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取分类失败")
		return
	}
	response.RespondSuccess(c, list, "分类列表获取成功")
}

// CreateCategory 创建分类
// @Summary      创建分类
// @Description  名称必填、最长 100 且唯一，重复时返回 400。
// @Tags         taxonomy (分类与标签)
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateCategoryRequest true "分类"
// @Success      201 {object} vo.CategoryResponseWrapper "创建成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "参数校验失败或名称重复"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/categories [post]
func (ctrl *TaxonomyController) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	category, err := ctrl.taxonomyService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "创建分类失败")
		return
	}
	response.RespondCreated(c, category, "分类创建成功")
}

// ListTags 标签列表
// @Summary      标签列表
// @Tags         taxonomy (分类与标签)
// @Produce      json
// @Success      200 {object} vo.TagListResponseWrapper "按名称排序的标签"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/tags [get]
func (ctrl *TaxonomyController) ListTags(c *gin.Context) {
	list, err := ctrl.taxonomyService.ListTags(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取标签失败")
		return
	}
	response.RespondSuccess(c, list, "标签列表获取成功")
}

// CreateTag 创建标签
// @Summary      创建标签
// @Description  名称必填、最长 50 且唯一，重复时返回 400。
// @Tags         taxonomy (分类与标签)
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateTagRequest true "标签"
// @Success      201 {object} vo.TagResponseWrapper "创建成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "参数校验失败或名称重复"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/tags [post]
func (ctrl *TaxonomyController) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tag, err := ctrl.taxonomyService.CreateTag(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "创建标签失败")
		return
	}
	response.RespondCreated(c, tag, "标签创建成功")
}

func (ctrl *TaxonomyController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/categories", ctrl.ListCategories)
	group.POST("/categories", ctrl.CreateCategory)
	group.GET("/tags", ctrl.ListTags)
	group.POST("/tags", ctrl.CreateTag)
}
