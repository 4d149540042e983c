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

type StudyToolsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewStudyToolsController(db *gorm.DB, cfg *config.Config) *StudyToolsController {
	return &StudyToolsController{DB: db, Cfg: cfg}
}

type CreateStudyToolRequest struct {
	CourseID uint   `json:"course_id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=note previous_exam syllabus"`
	URL      string `json:"url" validate:"required,externalurl"`
}

type UpdateStudyToolRequest struct {
	Title *string `json:"title"`
	Type  *string `json:"type" validate:"omitempty,oneof=note previous_exam syllabus"`
	URL   *string `json:"url" validate:"omitempty,externalurl"`
}

// GetStudyTools godoc
// @Summary List study tools
// @Tags study-tools
// @Produce json
// @Param course_id query int false "Filter by course"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /section-admin/study-tools [get]
func (stc *StudyToolsController) GetStudyTools(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	query := utils.ScopeStudyTools(stc.DB.Model(&models.StudyTool{}), claims)
	if courseID := c.QueryInt("course_id"); courseID > 0 {
		query = query.Where("study_tools.course_id = ?", courseID)
	}

	var tools []models.StudyTool
	if err := query.Order("study_tools.created_at DESC").Find(&tools).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, tools)
}

// CreateStudyTool godoc
// @Summary Create a study tool
// @Description The referenced course must exist and belong to the caller's section
// @Tags study-tools
// @Accept json
// @Produce json
// @Param input body CreateStudyToolRequest true "Study tool data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/study-tools [post]
func (stc *StudyToolsController) CreateStudyTool(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var input CreateStudyToolRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}

	_, section, err := courseSection(stc.DB, input.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Course belongs to another section")
	}

	tool := models.StudyTool{
		CourseID: input.CourseID,
		Title:    input.Title,
		Type:     input.Type,
		URL:      input.URL,
	}
	if err := stc.DB.Create(&tool).Error; err != nil {
		return utils.InternalServerError(c, "Could not create study tool")
	}

	return utils.Created(c, tool)
}

// UpdateStudyTool godoc
// @Summary Update a study tool
// @Tags study-tools
// @Accept json
// @Produce json
// @Param id path int true "Study tool ID"
// @Param input body UpdateStudyToolRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/study-tools/{id} [put]
func (stc *StudyToolsController) UpdateStudyTool(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid study tool ID")
	}

	var tool models.StudyTool
	if err := stc.DB.First(&tool, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Study tool not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	_, section, err := courseSection(stc.DB, tool.CourseID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Study tool belongs to another section")
	}

	var input UpdateStudyToolRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}

	if input.Title != nil {
		tool.Title = *input.Title
	}
	if input.Type != nil {
		tool.Type = *input.Type
	}
	if input.URL != nil {
		tool.URL = *input.URL
	}

	if err := stc.DB.Save(&tool).Error; err != nil {
		return utils.InternalServerError(c, "Could not update study tool")
	}

	return utils.Success(c, fiber.StatusOK, tool)
}

// DeleteStudyTool godoc
// @Summary Delete a study tool
// @Tags study-tools
// @Produce json
// @Param id path int true "Study tool ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/study-tools/{id} [delete]
func (stc *StudyToolsController) DeleteStudyTool(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid study tool ID")
	}

	var tool models.StudyTool
	if err := stc.DB.First(&tool, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Study tool not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	_, section, err := courseSection(stc.DB, tool.CourseID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Study tool belongs to another section")
	}

	if err := stc.DB.Delete(&tool).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete study tool")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Study tool deleted"})
}
