package controllers

import (
	"errors"
	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VideosController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewVideosController(db *gorm.DB, cfg *config.Config) *VideosController {
	return &VideosController{DB: db, Cfg: cfg}
}

type CreateVideoRequest struct {
	TopicID    uint   `json:"topic_id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	URL        string `json:"url" validate:"required,externalurl"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

type UpdateVideoRequest struct {
	Title      *string `json:"title"`
	URL        *string `json:"url" validate:"omitempty,externalurl"`
	OrderIndex *int    `json:"order_index"`
}

// GetVideos godoc
// @Summary List videos
// @Tags videos
// @Produce json
// @Param topic_id query int false "Filter by topic"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /section-admin/videos [get]
func (vc *VideosController) GetVideos(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	query := utils.ScopeTopicContent(vc.DB.Model(&models.Video{}), claims, "videos")
	if topicID := c.QueryInt("topic_id"); topicID > 0 {
		query = query.Where("videos.topic_id = ?", topicID)
	}

	var videos []models.Video
	if err := query.Order("videos.order_index ASC").Find(&videos).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, videos)
}

// CreateVideo godoc
// @Summary Create a video
// @Description The referenced topic must exist and belong to the caller's section
// @Tags videos
// @Accept json
// @Produce json
// @Param input body CreateVideoRequest true "Video data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/videos [post]
func (vc *VideosController) CreateVideo(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var input CreateVideoRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}

	_, section, err := topicSection(vc.DB, input.TopicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Topic not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Topic belongs to another section")
	}

	video := models.Video{
		TopicID:    input.TopicID,
		Title:      input.Title,
		URL:        input.URL,
		OrderIndex: input.OrderIndex,
	}
	if err := vc.DB.Create(&video).Error; err != nil {
		return utils.InternalServerError(c, "Could not create video")
	}

	return utils.Created(c, video)
}

// UpdateVideo godoc
// @Summary Update a video
// @Tags videos
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Param input body UpdateVideoRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/videos/{id} [put]
func (vc *VideosController) UpdateVideo(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid video ID")
	}

	var video models.Video
	if err := vc.DB.First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Video not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	_, section, err := topicSection(vc.DB, video.TopicID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Video belongs to another section")
	}

	var input UpdateVideoRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}

	if input.Title != nil {
		video.Title = *input.Title
	}
	if input.URL != nil {
		video.URL = *input.URL
	}
	if input.OrderIndex != nil {
		video.OrderIndex = *input.OrderIndex
	}

	if err := vc.DB.Save(&video).Error; err != nil {
		return utils.InternalServerError(c, "Could not update video")
	}

	return utils.Success(c, fiber.StatusOK, video)
}

// DeleteVideo godoc
// @Summary Delete a video
// @Tags videos
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/videos/{id} [delete]
func (vc *VideosController) DeleteVideo(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid video ID")
	}

	var video models.Video
	if err := vc.DB.First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Video not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	_, section, err := topicSection(vc.DB, video.TopicID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Video belongs to another section")
	}

	if err := vc.DB.Delete(&video).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete video")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Video deleted"})
}
