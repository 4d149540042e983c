package models

import "gorm.io/gorm"

// StudentUser идентифицируется непрозрачным user_id, который хранит клиент.
// Пароля нет: владение user_id и есть идентичность (см. README, Security notes).
type StudentUser struct {
	gorm.Model
	UserID              string  `gorm:"uniqueIndex;not null" json:"user_id"`
	Email               *string `gorm:"unique" json:"email"` // nullable: пустой email не занимает уникальность
	Batch               string  `json:"batch"`
	Section             string  `json:"section"` // batch_letter, e.g. 63_G
	HasSkippedSelection bool    `gorm:"default:false" json:"has_skipped_selection"`
}
