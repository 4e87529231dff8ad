package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/article_service/models/dto"
	"github.com/Xushengqwer/article_service/response"
	"github.com/Xushengqwer/article_service/service"
)

// imageFormField 上传图片时 multipart 中的文件字段名
const imageFormField = "image"

// MediaController 帖子图片
type MediaController struct {
	mediaService service.MediaService
}

func NewMediaController(mediaService service.MediaService) *MediaController {
	return &MediaController{mediaService: mediaService}
}

// UploadImage 上传帖子图片
// @Summary      上传图片
// @Description  只接受 png/jpg/jpeg/gif/webp。能解码时返回宽高与嗅探出的 MIME，否则退回客户端声明的类型。
// @Tags         media (图片)
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "帖子 ID"
// @Param        image formData file true "图片文件"
// @Success      201 {object} vo.MediaResponseWrapper "上传成功"
// @Failure      400 {object} vo.ErrorResponseWrapper "缺少文件、扩展名不允许或文件过大"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在或已删除"
// @Failure      500 {object} vo.ErrorResponseWrapper "存储或数据库失败"
// @Router       /api/v1/article/posts/{id}/images [post]
func (ctrl *MediaController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeValidation, "缺少图片文件字段 "+imageFormField)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeValidation, "无法读取上传文件")
		return
	}
	defer file.Close()

	media, err := ctrl.mediaService.UploadImage(c.Request.Context(), c.Param("id"), &dto.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		respondServiceError(c, err, "上传图片失败")
		return
	}
	response.RespondCreated(c, media, "图片上传成功")
}

// ListMedia 获取帖子图片列表
// @Summary      图片列表
// @Description  按上传时间倒序返回。
// @Tags         media (图片)
// @Produce      json
// @Param        id path string true "帖子 ID"
// @Success      200 {object} vo.MediaListResponseWrapper "图片列表"
// @Failure      404 {object} vo.ErrorResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/posts/{id}/images [get]
func (ctrl *MediaController) ListMedia(c *gin.Context) {
	list, err := ctrl.mediaService.ListMedia(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "获取图片列表失败")
		return
	}
	response.RespondSuccess(c, list, "图片列表获取成功")
}

// DeleteMedia 删除帖子图片
// @Summary      删除图片
// @Tags         media (图片)
// @Produce      json
// @Param        id path string true "帖子 ID"
// @Param        media_id path string true "图片 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.ErrorResponseWrapper "图片不存在或不属于该帖子"
// @Failure      500 {object} vo.ErrorResponseWrapper "服务器内部错误"
// @Router       /api/v1/article/posts/{id}/images/{media_id} [delete]
func (ctrl *MediaController) DeleteMedia(c *gin.Context) {
	if err := ctrl.mediaService.DeleteMedia(c.Request.Context(), c.Param("id"), c.Param("media_id")); err != nil {
		respondServiceError(c, err, "删除图片失败")
		return
	}
	response.RespondSuccess[any](c, nil, "图片删除成功")
}

func (ctrl *MediaController) RegisterRoutes(group *gin.RouterGroup) {
	images := group.Group("/posts/:id/images")
	{
		images.POST("", ctrl.UploadImage)
		images.GET("", ctrl.ListMedia)
		images.DELETE("/:media_id", ctrl.DeleteMedia)
	}
}
