package controllers

import (
	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SummaryController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewSummaryController(db *gorm.DB, cfg *config.Config) *SummaryController {
	return &SummaryController{DB: db, Cfg: cfg}
}

// GetSummary godoc
// @Summary Dashboard counters for the caller's scope
// @Tags summary
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /section-admin/summary [get]
func (sc *SummaryController) GetSummary(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var semesters, courses, topics, slides, videos, studyTools int64

	utils.ScopeSemesters(sc.DB.Model(&models.Semester{}), claims).Count(&semesters)
	utils.ScopeCourses(sc.DB.Model(&models.Course{}), claims).Count(&courses)
	utils.ScopeTopics(sc.DB.Model(&models.Topic{}), claims).Count(&topics)
	utils.ScopeTopicContent(sc.DB.Model(&models.Slide{}), claims, "slides").Count(&slides)
	utils.ScopeTopicContent(sc.DB.Model(&models.Video{}), claims, "videos").Count(&videos)
	utils.ScopeStudyTools(sc.DB.Model(&models.StudyTool{}), claims).Count(&studyTools)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"semesters":   semesters,
		"courses":     courses,
		"topics":      topics,
		"slides":      slides,
		"videos":      videos,
		"study_tools": studyTools,
	})
}
