package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name              string     `json:"name" gorm:"default:''"`
	Email             string     `json:"email" gorm:"unique;not null"`
	Password          string     `json:"-" gorm:"not null"`
	Role              string     `json:"role" gorm:"default:'user'"` // user, editor, admin
	Avatar            string     `json:"avatar" gorm:"default:''"`
	PreferredLanguage string     `json:"preferred_language" gorm:"default:'en'"` // en, ar
	IsActive          bool       `json:"is_active" gorm:"default:true"`
	LastLogin         *time.Time `json:"last_login"`
	IsDeleted         bool       `json:"-" gorm:"default:false"`
}

// IsAdminCapable reports whether the user may manage content and courses.
func (u *User) IsAdminCapable() bool {
	return u.Role == "admin" || u.Role == "editor"
}
