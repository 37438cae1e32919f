package course

import (
	"log"
	"time"

	"gorm.io/gorm"
)

var (
	CourseCategories = []string{"aviation-basics", "ai-tools", "safety", "regulations", "technology", "leadership"}
	CourseLevels     = []string{"beginner", "intermediate", "advanced"}
)

// Course represents a learning course
type Course struct {
	gorm.Model
	Title            string     `json:"title" gorm:"not null"`
	Description      string     `json:"description" gorm:"type:text"`
	ShortDescription string     `json:"short_description"`
	Thumbnail        string     `json:"thumbnail"`
	Category         string     `json:"category" gorm:"index;not null"`
	Level            string     `json:"level" gorm:"default:'beginner'"`
	InstructorName   string     `json:"instructor_name"`
	InstructorBio    string     `json:"instructor_bio"`
	InstructorAvatar string     `json:"instructor_avatar"`
	Price            float64    `json:"price" gorm:"default:0"`
	Duration         int        `json:"duration" gorm:"default:0"` // minutes, derived from lessons
	EnrollmentCount  int64      `json:"enrollment_count" gorm:"default:0"`
	RatingAverage    float64    `json:"rating_average" gorm:"default:0"`
	RatingCount      int64      `json:"rating_count" gorm:"default:0"`
	Tags             string     `json:"tags"` // comma separated, searchable
	Prerequisites    string     `json:"prerequisites"`
	LearningOutcomes string     `json:"learning_outcomes"`
	IsPublished      bool       `json:"is_published" gorm:"default:false"`
	IsFeatured       bool       `json:"is_featured" gorm:"default:false"`
	PublishedAt      *time.Time `json:"published_at"`
	AuthorID         uint       `json:"author_id" gorm:"index"`
	IsDeleted        bool       `json:"-" gorm:"default:false"`

	Modules []Module `json:"modules,omitempty" gorm:"foreignKey:CourseID"`
}

// ValidCategory reports whether c is a known course category
func ValidCategory(c string) bool {
	for _, v := range CourseCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidLevel reports whether l is a known course level
func ValidLevel(l string) bool {
	for _, v := range CourseLevels {
		if v == l {
			return true
		}
	}
	return false
}

// MarkPublished flips the publish flag and stamps PublishedAt on the first
// publish only. Once set the timestamp never moves.
func (c *Course) MarkPublished() {
	c.IsPublished = true
	if c.PublishedAt == nil {
		now := time.Now()
		c.PublishedAt = &now
	}
}

// RecalculateDuration rewrites course.duration as the sum of all lesson
// durations across the course's modules. Callers never set duration directly;
// a differing client-supplied value is overridden here and logged.
func RecalculateDuration(db *gorm.DB, courseID uint) (int, error) {
	var total int64
	err := db.Model(&Lesson{}).
		Select("COALESCE(SUM(duration), 0)").
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	var course Course
	if err := db.Select("id", "duration").Where("id = ?", courseID).First(&course).Error; err != nil {
		return 0, err
	}
	if course.Duration != int(total) {
		if course.Duration != 0 {
			log.Printf("[COURSE] Overriding stored duration %d with computed %d for course %d", course.Duration, total, courseID)
		}
		if err := db.Model(&Course{}).Where("id = ?", courseID).UpdateColumn("duration", total).Error; err != nil {
			return 0, err
		}
	}
	return int(total), nil
}

// CountLessons returns the live number of lessons across all modules of a
// course. Used as the progress denominator, so adding lessons later lowers
// existing enrollees' progress on their next recompute.
func CountLessons(db *gorm.DB, courseID uint) (int64, error) {
	var total int64
	err := db.Model(&Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&total).Error
	return total, err
}
