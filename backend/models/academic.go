package models

import (
	"time"

	"gorm.io/gorm"
)

type Semester struct {
	gorm.Model
	Title     string     `gorm:"not null" json:"title"`
	Section   string     `gorm:"index;not null" json:"section"` // batch_letter, e.g. 63_G
	IsActive  bool       `gorm:"default:true" json:"is_active"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Courses   []Course   `gorm:"constraint:OnDelete:CASCADE" json:"courses,omitempty"`
}

type Course struct {
	gorm.Model
	Title        string      `gorm:"not null" json:"title"`
	CourseCode   string      `gorm:"not null" json:"course_code"`
	SemesterID   uint        `gorm:"index;not null" json:"semester_id"`
	TeacherName  string      `json:"teacher_name"`
	TeacherEmail string      `json:"teacher_email"`
	Topics       []Topic     `gorm:"constraint:OnDelete:CASCADE" json:"topics,omitempty"`
	StudyTools   []StudyTool `gorm:"constraint:OnDelete:CASCADE" json:"study_tools,omitempty"`
}

type Topic struct {
	gorm.Model
	Title      string  `gorm:"not null" json:"title"`
	CourseID   uint    `gorm:"index;not null" json:"course_id"`
	OrderIndex int     `gorm:"default:0" json:"order_index"`
	Slides     []Slide `gorm:"constraint:OnDelete:CASCADE" json:"slides,omitempty"`
	Videos     []Video `gorm:"constraint:OnDelete:CASCADE" json:"videos,omitempty"`
}
