package main

import (
	"log"
	"time"

	"avacademy/config"
	"avacademy/database"
	"avacademy/models"
	course "avacademy/models/course"
)

// Seeds demo content and a demo course so a fresh install has
// something to show. Safe to re-run: existing rows are skipped.
func main() {
	config.LoadConfig()
	database.ConnectDb()
	database.EnsureAdminUser()

	seedContent()
	seedDemoCourse()

	log.Println("Seeding complete")
}

func seedContent() {
	db := database.Database.Db
	now := time.Now()

	entries := []models.Content{
		{
			Section:     "company",
			Type:        "hero",
			Title:       "Daqiqat Tayaran",
			Subtitle:    "Aviation expertise, AI-driven tools and professional training under one roof.",
			Body:        "We combine decades of aviation experience with modern technology to serve airlines, airports and aspiring professionals.",
			OrderIndex:  0,
			IsPublished: true,
			PublishedAt: &now,
		},
		{
			Section:     "company",
			Type:        "vision",
			Title:       "Our Vision",
			Body:        "To be the leading aviation knowledge platform in the region.",
			OrderIndex:  1,
			IsPublished: true,
			PublishedAt: &now,
		},
		{
			Section:     "academy",
			Type:        "hero",
			Title:       "Aviation Academy",
			Subtitle:    "Learn from industry professionals at your own pace.",
			Body:        "Structured courses covering aviation fundamentals, safety, regulations and emerging AI tools.",
			OrderIndex:  0,
			IsPublished: true,
			PublishedAt: &now,
		},
		{
			Section:     "avtech",
			Type:        "services",
			Title:       "AI Flight Analytics",
			Body:        "Predictive maintenance and operations insights powered by AI.",
			OrderIndex:  0,
			IsPublished: true,
			PublishedAt: &now,
		},
	}

	for _, entry := range entries {
		var count int64
		db.Model(&models.Content{}).
			Where("section = ? AND type = ? AND title = ? AND is_deleted = ?", entry.Section, entry.Type, entry.Title, false).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Printf("Failed to seed content %s/%s: %v", entry.Section, entry.Type, err)
		}
	}

	log.Println("Content seeded")
}

func seedDemoCourse() {
	db := database.Database.Db

	var count int64
	db.Model(&course.Course{}).Where("title = ? AND is_deleted = ?", "Introduction to Aviation", false).Count(&count)
	if count > 0 {
		log.Println("Demo course already present, skipping")
		return
	}

	demo := course.Course{
		Title:            "Introduction to Aviation",
		Description:      "A beginner friendly tour of the aviation industry, from aircraft anatomy to the rules of the sky.",
		ShortDescription: "Your first step into the world of aviation.",
		Category:         "aviation-basics",
		Level:            "beginner",
		Price:            0,
		InstructorName:   "Capt. Ahmed Al-Rashid",
		Tags:             "aviation,basics,beginner",
		IsFeatured:       true,
	}
	demo.MarkPublished()

	if err := db.Create(&demo).Error; err != nil {
		log.Fatalf("Failed to seed demo course: %v", err)
	}

	modules := []course.Module{
		{
			CourseID:    demo.ID,
			Title:       "Getting Off the Ground",
			OrderIndex:  0,
			IsPublished: true,
			Lessons: []course.Lesson{
				{CourseID: demo.ID, Title: "How Aircraft Fly", Content: "Lift, drag, thrust and weight.", Duration: 10, OrderIndex: 0, IsPublished: true},
				{CourseID: demo.ID, Title: "Anatomy of an Airliner", Content: "From nose cone to tail fin.", Duration: 20, OrderIndex: 1, IsPublished: true},
			},
		},
		{
			CourseID:    demo.ID,
			Title:       "Rules of the Sky",
			OrderIndex:  1,
			IsPublished: true,
			Lessons: []course.Lesson{
				{CourseID: demo.ID, Title: "Airspace Basics", Content: "Who controls what, and where.", Duration: 30, OrderIndex: 0, IsPublished: true},
				{CourseID: demo.ID, Title: "Talking to the Tower", Content: "Radio phraseology for beginners.", Duration: 40, OrderIndex: 1, IsPublished: true},
			},
		},
	}

	for i := range modules {
		if err := db.Create(&modules[i]).Error; err != nil {
			log.Fatalf("Failed to seed module %q: %v", modules[i].Title, err)
		}
	}

	if _, err := course.RecalculateDuration(db, demo.ID); err != nil {
		log.Printf("Failed to recalculate demo course duration: %v", err)
	}

	log.Printf("Demo course seeded (id=%d)", demo.ID)
}
