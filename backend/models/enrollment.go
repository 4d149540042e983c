package models

import (
	"time"

	"gorm.io/gorm"
)

// Статусы записи на курс
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentDropped   = "dropped"
	EnrollmentPaused    = "paused"
)

// Enrollment — одна строка на пару (user_id, course_id). Уникальность
// обеспечивается составным индексом в базе, а не проверкой перед вставкой.
// Отписка не удаляет строку, а переводит статус в dropped (история прогресса
// сохраняется).
type Enrollment struct {
	gorm.Model
	UserID             string    `gorm:"uniqueIndex:idx_user_course;not null" json:"user_id"`
	CourseID           uint      `gorm:"uniqueIndex:idx_user_course;not null" json:"course_id"`
	Status             string    `gorm:"default:active" json:"status"` // active, completed, dropped, paused
	ProgressPercentage float64   `gorm:"default:0" json:"progress_percentage"`
	EnrollmentDate     time.Time `json:"enrollment_date"`
	Course             Course    `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (Enrollment) TableName() string {
	return "user_course_enrollments"
}
