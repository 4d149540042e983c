package controllers

import (
	"errors"
	"project/backend/config"
	"project/backend/models"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Студенты не аутентифицируются паролем: сервер выдает непрозрачный user_id,
// клиент хранит его локально, и владение им считается идентичностью.
// Это сознательное упрощение исходной системы (см. README, Security notes).
type StudentsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewStudentsController(db *gorm.DB, cfg *config.Config) *StudentsController {
	return &StudentsController{DB: db, Cfg: cfg}
}

type SelectSectionRequest struct {
	Email   string `json:"email" validate:"omitempty,email"`
	Batch   string `json:"batch" validate:"required"`
	Section string `json:"section" validate:"required,sectioncode"`
}

type SkipSelectionRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

// SelectSection godoc
// @Summary Create a student identity bound to a section
// @Description Generates an opaque user_id the client must store
// @Tags students
// @Accept json
// @Produce json
// @Param input body SelectSectionRequest true "Section selection"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /students/select-section [post]
func (stc *StudentsController) SelectSection(c *fiber.Ctx) error {
	var input SelectSectionRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}

	student := models.StudentUser{
		UserID:  uuid.NewString(),
		Batch:   input.Batch,
		Section: input.Section,
	}
	if input.Email != "" {
		student.Email = &input.Email
	}

	if err := stc.DB.Create(&student).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return utils.Conflict(c, "Email is already registered")
		}
		return utils.InternalServerError(c, "Could not create student")
	}

	return utils.Created(c, student)
}

// SkipSelection godoc
// @Summary Create a student identity without a section
// @Tags students
// @Accept json
// @Produce json
// @Param input body SkipSelectionRequest true "Skip data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /students/skip-selection [post]
func (stc *StudentsController) SkipSelection(c *fiber.Ctx) error {
	var input SkipSelectionRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}

	student := models.StudentUser{
		UserID:              uuid.NewString(),
		HasSkippedSelection: true,
	}
	if input.Email != "" {
		student.Email = &input.Email
	}

	if err := stc.DB.Create(&student).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return utils.Conflict(c, "Email is already registered")
		}
		return utils.InternalServerError(c, "Could not create student")
	}

	return utils.Created(c, student)
}

// GetStudent godoc
// @Summary Look up a student by user_id
// @Tags students
// @Produce json
// @Param userId path string true "Opaque student user_id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /students/{userId} [get]
func (stc *StudentsController) GetStudent(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var student models.StudentUser
	if err := stc.DB.Where("user_id = ?", userID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Student not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, student)
}
