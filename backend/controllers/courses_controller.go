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

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

type CreateCourseRequest struct {
	Title        string `json:"title" validate:"required"`
	CourseCode   string `json:"course_code" validate:"required"`
	SemesterID   uint   `json:"semester_id" validate:"required"`
	TeacherName  string `json:"teacher_name"`
	TeacherEmail string `json:"teacher_email" validate:"omitempty,email"`
}

type UpdateCourseRequest struct {
	Title        *string `json:"title"`
	CourseCode   *string `json:"course_code"`
	TeacherName  *string `json:"teacher_name"`
	TeacherEmail *string `json:"teacher_email" validate:"omitempty,email"`
}

// courseSection возвращает курс вместе с секцией его семестра
func courseSection(db *gorm.DB, courseID uint) (*models.Course, string, error) {
	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return nil, "", err
	}
	var semester models.Semester
	if err := db.First(&semester, course.SemesterID).Error; err != nil {
		return nil, "", err
	}
	return &course, semester.Section, nil
}

// GetCourses godoc
// @Summary List courses
// @Description Returns courses visible to the caller's section, optionally filtered by semester
// @Tags courses
// @Produce json
// @Param semester_id query int false "Filter by semester"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /section-admin/courses [get]
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	query := utils.ScopeCourses(cc.DB.Model(&models.Course{}), claims)
	if semesterID := c.QueryInt("semester_id"); semesterID > 0 {
		query = query.Where("courses.semester_id = ?", semesterID)
	}

	var courses []models.Course
	if err := query.Order("courses.created_at DESC").Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, courses)
}

// CreateCourse godoc
// @Summary Create a course
// @Description The referenced semester must exist and belong to the caller's section
// @Tags courses
// @Accept json
// @Produce json
// @Param input body CreateCourseRequest true "Course data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/courses [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var input CreateCourseRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}

	// Проверяем родительский семестр
	var semester models.Semester
	if err := cc.DB.First(&semester, input.SemesterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Semester not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, semester.Section) {
		return utils.Forbidden(c, "Semester belongs to another section")
	}

	course := models.Course{
		Title:        input.Title,
		CourseCode:   input.CourseCode,
		SemesterID:   input.SemesterID,
		TeacherName:  input.TeacherName,
		TeacherEmail: input.TeacherEmail,
	}
	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}

	return utils.Created(c, course)
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param input body UpdateCourseRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/courses/{id} [put]
func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	course, section, err := courseSection(cc.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Course belongs to another section")
	}

	var input UpdateCourseRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(&input); errs != nil {
		return utils.ValidationFailed(c, errs)
	}

	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.CourseCode != nil {
		course.CourseCode = *input.CourseCode
	}
	if input.TeacherName != nil {
		course.TeacherName = *input.TeacherName
	}
	if input.TeacherEmail != nil {
		course.TeacherEmail = *input.TeacherEmail
	}

	if err := cc.DB.Save(course).Error; err != nil {
		return utils.InternalServerError(c, "Could not update course")
	}

	return utils.Success(c, fiber.StatusOK, course)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Description Topics, content and study tools are removed by the database cascade
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /section-admin/courses/{id} [delete]
func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	course, section, err := courseSection(cc.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if !canAccessSection(claims, section) {
		return utils.Forbidden(c, "Course belongs to another section")
	}

	if err := cc.DB.Delete(course).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete course")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Course deleted"})
}

// BrowseCourses godoc
// @Summary Browse courses for students
// @Description Returns courses of active semesters for a section (public, no cookie)
// @Tags courses
// @Produce json
// @Param section query string true "Section code, e.g. 63_G"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /courses [get]
func (cc *CoursesController) BrowseCourses(c *fiber.Ctx) error {
	section := c.Query("section")
	if !utils.ValidateSectionFormat(section) {
		return utils.BadRequest(c, "Invalid section format, expected e.g. 63_G")
	}

	var courses []models.Course
	err := cc.DB.Model(&models.Course{}).
		Joins("JOIN semesters ON semesters.id = courses.semester_id").
		Where("semesters.section = ? AND semesters.is_active = true", section).
		Order("courses.created_at DESC").
		Find(&courses).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, courses)
}
