package controllers

import (
	"errors"
	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SemestersController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewSemestersController(db *gorm.DB, cfg *config.Config) *SemestersController {
	return &SemestersController{DB: db, Cfg: cfg}
}

type CreateSemesterRequest struct {
	Title     string     `json:"title" validate:"required"`
	Section   string     `json:"section" validate:"required,sectioncode"`
	IsActive  *bool      `json:"is_active"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type UpdateSemesterRequest struct {
	Title     *string    `json:"title"`
	IsActive  *bool      `json:"is_active"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// canAccessSection проверяет, может ли вызывающий работать с секцией
func canAccessSection(claims *utils.AuthClaims, section string) bool {
	if claims.IsGlobalRole() || claims.Department == "" {
		return true
	}
	return claims.Department == section
}

// GetSemesters godoc
// @Summary List semesters
// @Description Returns semesters visible to the caller's section
// @Tags semesters
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /section-admin/semesters [get]
func (sc *SemestersController) GetSemesters(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var semesters []models.Semester
	query := utils.ScopeSemesters(sc.DB.Model(&models.Semester{}), claims)
	if err := query.Order("created_at DESC").Find(&semesters).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, semesters)
}

// CreateSemester godoc
// @Summary Create a semester
// @Tags semesters
// @Accept json
// @Produce json
// @Param input body CreateSemesterRequest true "Semester data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /section-admin/semesters [post]
func (sc *SemestersController) CreateSemester(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var input CreateSemesterRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}
	if !canAccessSection(claims, input.Section) {
		return utils.Forbidden(c, "Cannot create a semester outside your section")
	}

	semester := models.Semester{
		Title:     input.Title,
		Section:   input.Section,
		IsActive:  true,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if input.IsActive != nil {
		semester.IsActive = *input.IsActive
	}

	if err := sc.DB.Create(&semester).Error; err != nil {
		return utils.InternalServerError(c, "Could not create semester")
	}

	return utils.Created(c, semester)
}

// UpdateSemester godoc
// @Summary Update a semester
// @Tags semesters
// @Accept json
// @Produce json
// @Param id path int true "Semester ID"
// @Param input body UpdateSemesterRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/semesters/{id} [put]
func (sc *SemestersController) UpdateSemester(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid semester ID")
	}

	var semester models.Semester
	if err := sc.DB.First(&semester, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Semester not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, semester.Section) {
		return utils.Forbidden(c, "Semester belongs to another section")
	}

	var input UpdateSemesterRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title != nil {
		semester.Title = *input.Title
	}
	if input.IsActive != nil {
		semester.IsActive = *input.IsActive
	}
	if input.StartDate != nil {
		semester.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		semester.EndDate = input.EndDate
	}

	if err := sc.DB.Save(&semester).Error; err != nil {
		return utils.InternalServerError(c, "Could not update semester")
	}

	return utils.Success(c, fiber.StatusOK, semester)
}

// DeleteSemester godoc
// @Summary Delete a semester
// @Description Dependent courses are removed by the database cascade
// @Tags semesters
// @Produce json
// @Param id path int true "Semester ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/semesters/{id} [delete]
func (sc *SemestersController) DeleteSemester(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid semester ID")
	}

	var semester models.Semester
	if err := sc.DB.First(&semester, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Semester not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, semester.Section) {
		return utils.Forbidden(c, "Semester belongs to another section")
	}

	if err := sc.DB.Delete(&semester).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete semester")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Semester deleted"})
}
