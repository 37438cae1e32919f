package course

import "gorm.io/gorm"

// Module represents an ordered section within a course
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // unique within its course
	IsPublished bool   `json:"is_published"` // no default tag: an explicit false on Create must be stored
	IsDeleted   bool   `json:"-" gorm:"default:false"`

	Lessons []Lesson `json:"lessons,omitempty" gorm:"foreignKey:ModuleID"`
}
