package models

import (
	"gorm.io/gorm"
)

// Роли администраторов
const (
	RoleSuperAdmin     = "super_admin"
	RoleAdmin          = "admin"
	RoleModerator      = "moderator"
	RoleContentCreator = "content_creator"
	RoleSectionAdmin   = "section_admin"
)

type AdminUser struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:section_admin" json:"role"` // super_admin, admin, moderator, content_creator, section_admin
	Department   string `json:"department"`                        // section code, e.g. 63_G
	Phone        string `json:"phone"`
	PhotoURL     string `json:"photo_url"`
}

// IsGlobal сообщает, видит ли роль данные всех секций
func (u *AdminUser) IsGlobal() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
