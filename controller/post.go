package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/response"
	"github.com/Xushengqwer/article_service/service"
)

// PostController 帖子的增删改查与列表
type PostController struct {
	postService     service.PostService
	postListService service.PostListService
}

// NewPostController 构造函数，服务层依赖通过注入传入
func NewPostController(postService service.PostService, postListService service.PostListService) *PostController {
	return &PostController{
		postService:     postService,
		postListService: postListService,
	}
}

// ListPosts 分页获取帖子列表
// @Summary      帖子列表
// @Description  按可见性、状态、分类和关键词筛选帖子，支持按最新或点赞数排序。per_page 超过 50 时按 50 处理。
// @Tags         posts (帖子)
// @Produce      json
// @Param        page query int false "页码 (从1开始)" default(1)
// @Param        per_page query int false "每页数量 (最大50)" default(10)
// @Param        q query string false "标题或正文关键词"
// @Param        visibility query string false "可见性" Enums(PUBLIC,PRIVATE,UNLISTED) default(PUBLIC)
// @Param        status query string false "状态" Enums(PUBLISHED,DRAFT,DELETED)
// @Param        category_id query string false "分类 ID"
// @Param        sort query string false "排序方式" Enums(latest,popular) default(latest)
// @Success      200 {object} vo.PostListResponseWrapper "帖子列表与分页信息"
// @Failure      400 {object} vo.ErrorResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	var query dto.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := ctrl.postListService.ListPosts(c.Request.Context(), &query)
	if err != nil {
		respondServiceError(c, err, "获取帖子列表失败")
		return
	}
	response.RespondSuccessWithMeta(c, page.Posts, page.Meta, "帖子列表获取成功")
}

// GetPost 获取帖子详情，同时增加浏览量
// @Summary      帖子详情
// @Description  读取帖子并原子地增加浏览量。已软删除的帖子仍可按 ID 读取。
// @Tags         posts (帖子)
// @Produce      json
// @Param        id path string true "帖子 ID"
// @Success      200 {object} vo.PostResponseWrapper "帖子详情"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/posts/{id} [get]
func (ctrl *PostController) GetPost(c *gin.Context) {
	post, err := ctrl.postService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "获取帖子失败")
		return
	}
	response.RespondSuccess(c, post, "帖子获取成功")
}

// CreatePost 创建帖子
// @Summary      创建帖子
// @Description  作者需存在于用户服务（开发环境跳过校验）。标签按名称自动创建，创建成功后通知作者。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        body body dto.CreatePostRequest true "帖子内容"
// @Success      201 {object} vo.PostResponseWrapper "创建成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "参数校验失败或作者不存在"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := ctrl.postService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "创建帖子失败")
		return
	}
	response.RespondCreated(c, post, "帖子创建成功")
}

// ReplacePost 全量更新帖子
// @Summary      全量更新帖子
// @Description  请求体与创建一致，未提供的可选字段会被重置，标签整体替换。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        id path string true "帖子 ID"
// @Param        body body dto.CreatePostRequest true "帖子内容"
// @Success      200 {object} vo.PostResponseWrapper "更新成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "参数校验失败"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在或已删除"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/posts/{id} [put]
func (ctrl *PostController) ReplacePost(c *gin.Context) {
	var req dto.ReplacePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := ctrl.postService.ReplacePost(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err, "更新帖子失败")
		return
	}
	response.RespondSuccess(c, post, "帖子更新成功")
}

// PatchPost 局部更新帖子
// @Summary      局部更新帖子
// @Description  只修改请求体中出现的字段。category_id 传空字符串清除分类，tags 传空数组清空标签。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        id path string true "帖子 ID"
// @Param        body body dto.PatchPostRequest true "要修改的字段"
// @Success      200 {object} vo.PostResponseWrapper "更新成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "参数校验失败"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在或已删除"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/posts/{id} [patch]
func (ctrl *PostController) PatchPost(c *gin.Context) {
	var req dto.PatchPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := ctrl.postService.PatchPost(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err, "更新帖子失败")
		return
	}
	response.RespondSuccess(c, post, "帖子更新成功")
}

// DeletePost 软删除帖子
// @Summary      删除帖子
// @Description  只把状态置为 DELETED，数据行保留。
// @Tags         posts (帖子)
// @Produce      json
// @Param        id path string true "帖子 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/posts/{id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	if err := ctrl.postService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "删除帖子失败")
		return
	}
	response.RespondSuccess[any](c, nil, "帖子删除成功")
}

// RegisterRoutes 注册帖子路由
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.GET("", ctrl.ListPosts)
		posts.POST("", ctrl.CreatePost)
		posts.GET("/:id", ctrl.GetPost)
		posts.PUT("/:id", ctrl.ReplacePost)
		posts.PATCH("/:id", ctrl.PatchPost)
		posts.DELETE("/:id", ctrl.DeletePost)
	}
}
