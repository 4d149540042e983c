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

type SlidesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewSlidesController(db *gorm.DB, cfg *config.Config) *SlidesController {
	return &SlidesController{DB: db, Cfg: cfg}
}

type CreateSlideRequest struct {
	TopicID    uint   `json:"topic_id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	URL        string `json:"url" validate:"required,externalurl"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

type UpdateSlideRequest struct {
	Title      *string `json:"title"`
	URL        *string `json:"url" validate:"omitempty,externalurl"`
	OrderIndex *int    `json:"order_index"`
}

// GetSlides godoc
// @Summary List slides
// @Tags slides
// @Produce json
// @Param topic_id query int false "Filter by topic"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /section-admin/slides [get]
func (sc *SlidesController) GetSlides(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	query := utils.ScopeTopicContent(sc.DB.Model(&models.Slide{}), claims, "slides")
	if topicID := c.QueryInt("topic_id"); topicID > 0 {
		query = query.Where("slides.topic_id = ?", topicID)
	}

	var slides []models.Slide
	if err := query.Order("slides.order_index ASC").Find(&slides).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, slides)
}

// CreateSlide godoc
// @Summary Create a slide
// @Description The referenced topic must exist and belong to the caller's section
// @Tags slides
// @Accept json
// @Produce json
// @Param input body CreateSlideRequest true "Slide data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/slides [post]
func (sc *SlidesController) CreateSlide(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var input CreateSlideRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}

	_, section, err := topicSection(sc.DB, input.TopicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Topic not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Topic belongs to another section")
	}

	slide := models.Slide{
		TopicID:    input.TopicID,
		Title:      input.Title,
		URL:        input.URL,
		OrderIndex: input.OrderIndex,
	}
	if err := sc.DB.Create(&slide).Error; err != nil {
		return utils.InternalServerError(c, "Could not create slide")
	}

	return utils.Created(c, slide)
}

// UpdateSlide godoc
// @Summary Update a slide
// @Tags slides
// @Accept json
// @Produce json
// @Param id path int true "Slide ID"
// @Param input body UpdateSlideRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/slides/{id} [put]
func (sc *SlidesController) UpdateSlide(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid slide ID")
	}

	var slide models.Slide
	if err := sc.DB.First(&slide, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Slide not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	_, section, err := topicSection(sc.DB, slide.TopicID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Slide belongs to another section")
	}

	var input UpdateSlideRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}

	if input.Title != nil {
		slide.Title = *input.Title
	}
	if input.URL != nil {
		slide.URL = *input.URL
	}
	if input.OrderIndex != nil {
		slide.OrderIndex = *input.OrderIndex
	}

	if err := sc.DB.Save(&slide).Error; err != nil {
		return utils.InternalServerError(c, "Could not update slide")
	}

	return utils.Success(c, fiber.StatusOK, slide)
}

// DeleteSlide godoc
// @Summary Delete a slide
// @Tags slides
// @Produce json
// @Param id path int true "Slide ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/slides/{id} [delete]
func (sc *SlidesController) DeleteSlide(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid slide ID")
	}

	var slide models.Slide
	if err := sc.DB.First(&slide, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Slide not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	_, section, err := topicSection(sc.DB, slide.TopicID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Slide belongs to another section")
	}

	if err := sc.DB.Delete(&slide).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete slide")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Slide deleted"})
}
