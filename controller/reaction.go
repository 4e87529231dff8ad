package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/models/enums"
	"github.com/Xushengqwer/article_service/response"
	"github.com/Xushengqwer/article_service/service"
)

// ReactionController 点赞/点踩
type ReactionController struct {
	reactionService service.ReactionService
}

func NewReactionController(reactionService service.ReactionService) *ReactionController {
	return &ReactionController{reactionService: reactionService}
}

// ToggleReaction 切换表态
// @Summary      切换点赞/点踩
// @Description  无表态时新增，相同表态时撤销，不同表态时切换。action 缺省为 LIKE。返回切换后的表态与最新点赞数。
// @Tags         reactions (表态)
// @Accept       json
// @Produce      json
// @Param        id path string true "帖子 ID"
// @Param        body body dto.ToggleReactionRequest true "用户与表态"
// @Success      200 {object} vo.ReactionResponseWrapper "切换成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "参数校验失败"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在或已删除"
// @Failure      409 {object} vo.ErrorResponseWrapper "并发冲突，请重试"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/posts/{id}/reaction [post]
func (ctrl *ReactionController) ToggleReaction(c *gin.Context) {
	var req dto.ToggleReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctrl.toggle(c, req.UserID, req.Action)
}

// ToggleLike 等价于 action=LIKE 的表态切换
// @Summary      切换点赞
// @Description  只做点赞的开关，已点踩时切换为点赞。
// @Tags         reactions (表态)
// @Accept       json
// @Produce      json
// @Param        id path string true "帖子 ID"
// @Param        body body dto.ToggleReactionRequest true "用户，action 字段被忽略"
// @Success      200 {object} vo.ReactionResponseWrapper "切换成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "参数校验失败"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在或已删除"
// @Failure      409 {object} vo.ErrorResponseWrapper "并发冲突，请重试"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/posts/{id}/like [post]
func (ctrl *ReactionController) ToggleLike(c *gin.Context) {
	var req dto.ToggleReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ctrl.toggle(c, req.UserID, string(enums.ReactionLike))
}

func (ctrl *ReactionController) toggle(c *gin.Context, userID, action string) {
	result, err := ctrl.reactionService.ToggleReaction(c.Request.Context(), c.Param("id"), userID, action)
	if err != nil {
		respondServiceError(c, err, "切换表态失败")
		return
	}
	response.RespondSuccess(c, result, "表态已更新")
}

func (ctrl *ReactionController) RegisterRoutes(group *gin.RouterGroup) {
	posts := group.Group("/posts")
	{
		posts.POST("/:id/reaction", ctrl.ToggleReaction)
		posts.POST("/:id/like", ctrl.ToggleLike)
	}
}
