package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/response"
	"github.com/Xushengqwer/article_service/service"
)

// HotPostController 点赞热榜
type HotPostController struct {
	hotPostService service.HotPostService
}

// NewHotPostController 构造函数，注入服务层依赖
func NewHotPostController(hotPostService service.HotPostService) *HotPostController {
	return &HotPostController{hotPostService: hotPostService}
}

// GetHotPosts 获取点赞热榜
// @Summary      点赞热榜
// @Description  按点赞数降序返回公开且已发布的帖子。优先读取 Redis 热榜，不可用时回源数据库。
// @Tags         hot-posts (热门帖子)
// @Produce      json
// @Param        limit query int false "返回数量 (最大50)" default(10)
// @Success      200 {object} vo.PostListResponseWrapper "热门帖子"
// @Failure      400 {object} vo.ErrorResponseWrapper "无效的 limit"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/posts/hot [get]
func (ctrl *HotPostController) GetHotPosts(c *gin.Context) {
	var query dto.HotPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	posts, err := ctrl.hotPostService.GetHotPosts(c.Request.Context(), query.Limit)
	if err != nil {
		respondServiceError(c, err, "获取热门帖子失败")
		return
	}
	response.RespondSuccess(c, posts, "热门帖子获取成功")
}

// RegisterRoutes 注册热榜路由，静态路径 /posts/hot 优先于 /posts/:id 匹配
func (ctrl *HotPostController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/posts/hot", ctrl.GetHotPosts)
}
