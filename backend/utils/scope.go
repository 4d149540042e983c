package utils

import (
	"gorm.io/gorm"
)

// Role-scoped query builder: ограничивает выборку секцией администратора.
// admin и super_admin видят все секции. Пустой department не ограничивает
// выборку вообще — поведение исходной системы сохранено сознательно.

// ScopeSemesters ограничивает запрос по semesters.section
func ScopeSemesters(db *gorm.DB, claims *AuthClaims) *gorm.DB {
	if claims.IsGlobalRole() || claims.Department == "" {
		return db
	}
	return db.Where("semesters.section = ?", claims.Department)
}

// ScopeCourses ограничивает курсы секцией через родительский семестр
func ScopeCourses(db *gorm.DB, claims *AuthClaims) *gorm.DB {
	if claims.IsGlobalRole() || claims.Department == "" {
		return db
	}
	return db.Joins("JOIN semesters ON semesters.id = courses.semester_id").
		Where("semesters.section = ?", claims.Department)
}

// ScopeTopics ограничивает темы секцией через курс и семестр
func ScopeTopics(db *gorm.DB, claims *AuthClaims) *gorm.DB {
	if claims.IsGlobalRole() || claims.Department == "" {
		return db
	}
	return db.Joins("JOIN courses ON courses.id = topics.course_id").
		Joins("JOIN semesters ON semesters.id = courses.semester_id").
		Where("semesters.section = ?", claims.Department)
}

// ScopeTopicContent ограничивает slides/videos секцией через тему, курс и семестр.
// tableName — имя таблицы листового контента.
func ScopeTopicContent(db *gorm.DB, claims *AuthClaims, tableName string) *gorm.DB {
	if claims.IsGlobalRole() || claims.Department == "" {
		return db
	}
	return db.Joins("JOIN topics ON topics.id = "+tableName+".topic_id").
		Joins("JOIN courses ON courses.id = topics.course_id").
		Joins("JOIN semesters ON semesters.id = courses.semester_id").
		Where("semesters.section = ?", claims.Department)
}

// ScopeStudyTools ограничивает учебные материалы секцией через курс и семестр
func ScopeStudyTools(db *gorm.DB, claims *AuthClaims) *gorm.DB {
	if claims.IsGlobalRole() || claims.Department == "" {
		return db
	}
	return db.Joins("JOIN courses ON courses.id = study_tools.course_id").
		Joins("JOIN semesters ON semesters.id = courses.semester_id").
		Where("semesters.section = ?", claims.Department)
}
