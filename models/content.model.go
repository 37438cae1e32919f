package models

import (
	"time"

	"gorm.io/gorm"
)

// Closed enums for content placement. The frontend renders sections by
// (section, type) pairs, so both are validated against these lists.
var (
	ContentSections = []string{"company", "avtech", "academy", "global"}
	ContentTypes    = []string{"hero", "about", "vision", "mission", "metrics", "team", "clients", "services", "features"}
)

// Content is a marketing copy record keyed by section/type
type Content struct {
	gorm.Model
	Section        string     `json:"section" gorm:"index;not null"`
	Type           string     `json:"type" gorm:"not null"`
	Title          string     `json:"title" gorm:"not null"`
	Subtitle       string     `json:"subtitle"`
	Body           string     `json:"body" gorm:"type:text"`
	ImageURL       string     `json:"image_url"`
	VideoURL       string     `json:"video_url"`
	SeoTitle       string     `json:"seo_title"`
	SeoDescription string     `json:"seo_description"`
	Keywords       string     `json:"keywords"` // comma separated
	OrderIndex     int        `json:"order_index" gorm:"default:0"`
	IsPublished    bool       `json:"is_published"` // no default tag: an explicit false on Create must be stored
	PublishedAt    *time.Time `json:"published_at"`
	AuthorID       uint       `json:"author_id" gorm:"index"`
	IsDeleted      bool       `json:"-" gorm:"default:false"`
}

// ValidContentSection reports whether s is a known section
func ValidContentSection(s string) bool {
	for _, v := range ContentSections {
		if v == s {
			return true
		}
	}
	return false
}

// ValidContentType reports whether t is a known content type
func ValidContentType(t string) bool {
	for _, v := range ContentTypes {
		if v == t {
			return true
		}
	}
	return false
}
