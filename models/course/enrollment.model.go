package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links a user to a course with progress state. The composite
// unique index enforces at most one enrollment per (user, course) at the
// storage layer; the application-level existence check only shapes the error.
type Enrollment struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID   uint      `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	EnrolledAt time.Time `json:"enrolled_at"`
	Progress   int       `json:"progress" gorm:"default:0"` // percentage 0-100, derived only
	IsDeleted  bool      `json:"-" gorm:"default:false"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

// LessonCompletion records one completed lesson per user. The unique index is
// the "add to set" guarantee: concurrent completions of the same lesson
// insert with ON CONFLICT DO NOTHING and can never produce duplicates.
type LessonCompletion struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID uint `json:"lesson_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	CourseID uint `json:"course_id" gorm:"index;not null"`
}
