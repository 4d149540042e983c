package routes

import (
	"project/backend/config"
	"project/backend/controllers"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Роли, которым доступна админ-панель секции
var adminRoles = []string{
	models.RoleSuperAdmin,
	models.RoleAdmin,
	models.RoleModerator,
	models.RoleContentCreator,
	models.RoleSectionAdmin,
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, storage utils.ObjectStorage) {
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminOnly := middleware.RequireRoles(adminRoles...)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/section-admin-signup", authController.SectionAdminSignup)
	app.Get("/api/auth/me", authMiddleware, authController.Me)
	app.Post("/api/auth/logout", authController.Logout)

	// Profile routes
	profileController := controllers.NewProfileController(db, cfg, storage)
	app.Get("/api/profile", authMiddleware, profileController.GetProfile)
	app.Put("/api/profile", authMiddleware, profileController.UpdateProfile)
	app.Post("/api/profile/photo", authMiddleware, profileController.UploadPhoto)

	// Student routes (непрозрачный user_id вместо пароля, без cookie)
	studentsController := controllers.NewStudentsController(db, cfg)
	app.Post("/api/students/select-section", studentsController.SelectSection)
	app.Post("/api/students/skip-selection", studentsController.SkipSelection)
	app.Get("/api/students/:userId", studentsController.GetStudent)

	// Enrollment routes
	enrollmentController := controllers.NewEnrollmentController(db, cfg)
	coursesController := controllers.NewCoursesController(db, cfg)
	app.Get("/api/courses", coursesController.BrowseCourses)
	app.Post("/api/courses/enroll", enrollmentController.Enroll)
	app.Post("/api/courses/unenroll", enrollmentController.Unenroll)
	app.Delete("/api/courses/unenroll", enrollmentController.Unenroll)
	app.Get("/api/courses/enrolled", enrollmentController.GetEnrolled)

	// Section admin CRUD
	sectionAdmin := app.Group("/api/section-admin", authMiddleware, adminOnly)

	semestersController := controllers.NewSemestersController(db, cfg)
	sectionAdmin.Get("/semesters", semestersController.GetSemesters)
	sectionAdmin.Post("/semesters", semestersController.CreateSemester)
	sectionAdmin.Put("/semesters/:id", semestersController.UpdateSemester)
	sectionAdmin.Delete("/semesters/:id", semestersController.DeleteSemester)

	sectionAdmin.Get("/courses", coursesController.GetCourses)
	sectionAdmin.Post("/courses", coursesController.CreateCourse)
	sectionAdmin.Put("/courses/:id", coursesController.UpdateCourse)
	sectionAdmin.Delete("/courses/:id", coursesController.DeleteCourse)

	topicsController := controllers.NewTopicsController(db, cfg)
	sectionAdmin.Get("/topics", topicsController.GetTopics)
	sectionAdmin.Post("/topics", topicsController.CreateTopic)
	sectionAdmin.Put("/topics/:id", topicsController.UpdateTopic)
	sectionAdmin.Delete("/topics/:id", topicsController.DeleteTopic)

	slidesController := controllers.NewSlidesController(db, cfg)
	sectionAdmin.Get("/slides", slidesController.GetSlides)
	sectionAdmin.Post("/slides", slidesController.CreateSlide)
	sectionAdmin.Put("/slides/:id", slidesController.UpdateSlide)
	sectionAdmin.Delete("/slides/:id", slidesController.DeleteSlide)

	videosController := controllers.NewVideosController(db, cfg)
	sectionAdmin.Get("/videos", videosController.GetVideos)
	sectionAdmin.Post("/videos", videosController.CreateVideo)
	sectionAdmin.Put("/videos/:id", videosController.UpdateVideo)
	sectionAdmin.Delete("/videos/:id", videosController.DeleteVideo)

	studyToolsController := controllers.NewStudyToolsController(db, cfg)
	sectionAdmin.Get("/study-tools", studyToolsController.GetStudyTools)
	sectionAdmin.Post("/study-tools", studyToolsController.CreateStudyTool)
	sectionAdmin.Put("/study-tools/:id", studyToolsController.UpdateStudyTool)
	sectionAdmin.Delete("/study-tools/:id", studyToolsController.DeleteStudyTool)

	summaryController := controllers.NewSummaryController(db, cfg)
	sectionAdmin.Get("/summary", summaryController.GetSummary)
}
