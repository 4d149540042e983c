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

type TopicsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewTopicsController(db *gorm.DB, cfg *config.Config) *TopicsController {
	return &TopicsController{DB: db, Cfg: cfg}
}

type CreateTopicRequest struct {
	Title      string `json:"title" validate:"required"`
	CourseID   uint   `json:"course_id" validate:"required"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

type UpdateTopicRequest struct {
	Title      *string `json:"title"`
	OrderIndex *int    `json:"order_index"`
}

// topicSection возвращает тему вместе с секцией ее курса
func topicSection(db *gorm.DB, topicID uint) (*models.Topic, string, error) {
	var topic models.Topic
	if err := db.First(&topic, topicID).Error; err != nil {
		return nil, "", err
	}
	_, section, err := courseSection(db, topic.CourseID)
	if err != nil {
		return nil, "", err
	}
	return &topic, section, nil
}

// GetTopics godoc
// @Summary List topics
// @Description Returns topics visible to the caller's section, ordered by order_index
// @Tags topics
// @Produce json
// @Param course_id query int false "Filter by course"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /section-admin/topics [get]
func (tc *TopicsController) GetTopics(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	query := utils.ScopeTopics(tc.DB.Model(&models.Topic{}), claims)
	if courseID := c.QueryInt("course_id"); courseID > 0 {
		query = query.Where("topics.course_id = ?", courseID)
	}

	var topics []models.Topic
	if err := query.Order("topics.order_index ASC").Find(&topics).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, topics)
}

// CreateTopic godoc
// @Summary Create a topic
// @Description The referenced course must exist and belong to the caller's section
// @Tags topics
// @Accept json
// @Produce json
// @Param input body CreateTopicRequest true "Topic data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/topics [post]
func (tc *TopicsController) CreateTopic(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var input CreateTopicRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}

	_, section, err := courseSection(tc.DB, input.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Course belongs to another section")
	}

	topic := models.Topic{
		Title:      input.Title,
		CourseID:   input.CourseID,
		OrderIndex: input.OrderIndex,
	}
	if err := tc.DB.Create(&topic).Error; err != nil {
		return utils.InternalServerError(c, "Could not create topic")
	}

	return utils.Created(c, topic)
}

// UpdateTopic godoc
// @Summary Update a topic
// @Tags topics
// @Accept json
// @Produce json
// @Param id path int true "Topic ID"
// @Param input body UpdateTopicRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/topics/{id} [put]
func (tc *TopicsController) UpdateTopic(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid topic ID")
	}

	topic, section, err := topicSection(tc.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Topic not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Topic belongs to another section")
	}

	var input UpdateTopicRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title != nil {
		topic.Title = *input.Title
	}
	if input.OrderIndex != nil {
		topic.OrderIndex = *input.OrderIndex
	}

	if err := tc.DB.Save(topic).Error; err != nil {
		return utils.InternalServerError(c, "Could not update topic")
	}

	return utils.Success(c, fiber.StatusOK, topic)
}

// DeleteTopic godoc
// @Summary Delete a topic
// @Description Slides and videos are removed by the database cascade
// @Tags topics
// @Produce json
// @Param id path int true "Topic ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/topics/{id} [delete]
func (tc *TopicsController) DeleteTopic(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid topic ID")
	}

	topic, section, err := topicSection(tc.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Topic not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Topic belongs to another section")
	}

	if err := tc.DB.Delete(topic).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete topic")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Topic deleted"})
}
