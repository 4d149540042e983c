package controllers

import (
	"errors"
	"project/backend/config"
	"project/backend/models"
	"project/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type EnrollmentController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewEnrollmentController(db *gorm.DB, cfg *config.Config) *EnrollmentController {
	return &EnrollmentController{DB: db, Cfg: cfg}
}

type EnrollRequest struct {
	UserID   string   `json:"userId" validate:"required"`
	CourseID uint     `json:"courseId" validate:"required"`
	Progress *float64 `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

type UnenrollRequest struct {
	UserID   string `json:"userId" validate:"required"`
	CourseID uint   `json:"courseId" validate:"required"`
}

// Enroll godoc
// @Summary Enroll a student into a course
// @Description One atomic insert; the composite unique index on (user_id, course_id)
// @Description is the only duplicate guard, no check-then-insert race.
// @Tags enrollment
// @Accept json
// @Produce json
// @Param input body EnrollRequest true "Enrollment data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /courses/enroll [post]
func (ec *EnrollmentController) Enroll(c *fiber.Ctx) error {
	var input EnrollRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}

	// Студент должен существовать
	var student models.StudentUser
	if err := ec.DB.Where("user_id = ?", input.UserID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Student not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	// Курс должен существовать и принадлежать активному семестру
	var course models.Course
	err := ec.DB.
		Joins("JOIN semesters ON semesters.id = courses.semester_id").
		Where("courses.id = ? AND semesters.is_active = true", input.CourseID).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found or not active")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	progress := 0.0
	if input.Progress != nil {
		progress = *input.Progress
	}

	enrollment := models.Enrollment{
		UserID:             input.UserID,
		CourseID:           input.CourseID,
		Status:             models.EnrollmentActive,
		ProgressPercentage: progress,
		EnrollmentDate:     time.Now(),
	}

	if err := ec.DB.Create(&enrollment).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ec.resolveConflict(c, input.UserID, input.CourseID)
		}
		return utils.InternalServerError(c, "Could not create enrollment")
	}

	return utils.Created(c, enrollment)
}

// resolveConflict обрабатывает срабатывание уникального индекса: dropped-строка
// возвращается в active (прогресс сохраняется), active-строка — конфликт 409
func (ec *EnrollmentController) resolveConflict(c *fiber.Ctx, userID string, courseID uint) error {
	var existing models.Enrollment
	if err := ec.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	if existing.Status == models.EnrollmentActive {
		return utils.Conflict(c, "Already enrolled in this course")
	}

	existing.Status = models.EnrollmentActive
	existing.EnrollmentDate = time.Now()
	if err := ec.DB.Save(&existing).Error; err != nil {
		return utils.InternalServerError(c, "Could not re-enroll")
	}

	return utils.Success(c, fiber.StatusOK, existing)
}

// Unenroll godoc
// @Summary Unenroll a student from a course
// @Description Soft delete: status flips to dropped, progress history is kept
// @Tags enrollment
// @Accept json
// @Produce json
// @Param input body UnenrollRequest true "Unenrollment data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses/unenroll [post]
func (ec *EnrollmentController) Unenroll(c *fiber.Ctx) error {
	var input UnenrollRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}

	var enrollment models.Enrollment
	err := ec.DB.
		Where("user_id = ? AND course_id = ? AND status = ?", input.UserID, input.CourseID, models.EnrollmentActive).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "No active enrollment for this course")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	enrollment.Status = models.EnrollmentDropped
	if err := ec.DB.Save(&enrollment).Error; err != nil {
		return utils.InternalServerError(c, "Could not unenroll")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Unenrolled from course"})
}

// GetEnrolled godoc
// @Summary List active enrollments for a student
// @Description Active rows joined with course metadata, newest enrollment first
// @Tags enrollment
// @Produce json
// @Param userId query string true "Student user_id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /courses/enrolled [get]
func (ec *EnrollmentController) GetEnrolled(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return utils.BadRequest(c, "userId query parameter is required")
	}

	var enrollments []models.Enrollment
	err := ec.DB.Preload("Course").
		Where("user_id = ? AND status = ?", userID, models.EnrollmentActive).
		Order("enrollment_date DESC").
		Find(&enrollments).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, enrollments)
}
