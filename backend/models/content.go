package models

import "gorm.io/gorm"

// Slide ссылается на внешний файл (Google Drive)
type Slide struct {
	gorm.Model
	TopicID    uint   `gorm:"index;not null" json:"topic_id"`
	Title      string `gorm:"not null" json:"title"`
	URL        string `gorm:"not null" json:"url"`
	OrderIndex int    `gorm:"default:0" json:"order_index"`
}

// Video ссылается на внешний ролик (YouTube)
type Video struct {
	gorm.Model
	TopicID    uint   `gorm:"index;not null" json:"topic_id"`
	Title      string `gorm:"not null" json:"title"`
	URL        string `gorm:"not null" json:"url"`
	OrderIndex int    `gorm:"default:0" json:"order_index"`
}

// Типы учебных материалов курса
const (
	StudyToolNote     = "note"
	StudyToolPrevExam = "previous_exam"
	StudyToolSyllabus = "syllabus"
)

type StudyTool struct {
	gorm.Model
	CourseID uint   `gorm:"index;not null" json:"course_id"`
	Title    string `gorm:"not null" json:"title"`
	Type     string `gorm:"not null" json:"type"` // note, previous_exam, syllabus
	URL      string `gorm:"not null" json:"url"`
}
