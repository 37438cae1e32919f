package course

import "gorm.io/gorm"

// Lesson is the smallest content unit. It is owned by its module and has no
// independent lifecycle. CourseID is denormalized so lesson counts and
// duration sums are single-table queries.
type Lesson struct {
	gorm.Model
	ModuleID    uint   `json:"module_id" gorm:"index;not null"`
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Content     string `json:"content" gorm:"type:text"`
	VideoURL    string `json:"video_url"`
	Resources   string `json:"resources"`                    // JSON array of {title,url,type}
	Duration    int    `json:"duration" gorm:"default:0"`    // minutes
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // unique within its module
	IsPublished bool   `json:"is_published"` // no default tag: an explicit false on Create must be stored
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
