package course_test

import (
	"testing"
	"time"

	course "avacademy/models/course"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&course.Course{}, &course.Module{}, &course.Lesson{}); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return db
}

func TestMarkPublishedStampsOnce(t *testing.T) {
	c := course.Course{Title: "T", Category: "safety"}

	c.MarkPublished()
	if c.PublishedAt == nil {
		t.Fatalf("PublishedAt not stamped")
	}
	first := *c.PublishedAt

	time.Sleep(5 * time.Millisecond)
	c.IsPublished = false
	c.MarkPublished()

	assert.True(t, c.IsPublished)
	assert.True(t, first.Equal(*c.PublishedAt), "PublishedAt moved on second publish")
}

func TestRecalculateDuration(t *testing.T) {
	db := setupDb(t)

	c := course.Course{Title: "T", Category: "safety", Duration: 500}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	m := course.Module{CourseID: c.ID, Title: "M"}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create module: %v", err)
	}

	for i, d := range []int{10, 20, 30, 40} {
		lesson := course.Lesson{ModuleID: m.ID, CourseID: c.ID, Title: "L", Duration: d, OrderIndex: i}
		if err := db.Create(&lesson).Error; err != nil {
			t.Fatalf("create lesson: %v", err)
		}
	}

	total, err := course.RecalculateDuration(db, c.ID)
	if err != nil {
		t.Fatalf("RecalculateDuration: %v", err)
	}
	assert.Equal(t, 100, total)

	var reloaded course.Course
	db.First(&reloaded, c.ID)
	assert.Equal(t, 100, reloaded.Duration, "stored duration is replaced by the lesson sum")

	// Soft deleted lessons drop out of the sum
	db.Model(&course.Lesson{}).
		Where("course_id = ? AND duration = ?", c.ID, 40).
		UpdateColumn("is_deleted", true)

	total, err = course.RecalculateDuration(db, c.ID)
	if err != nil {
		t.Fatalf("RecalculateDuration: %v", err)
	}
	assert.Equal(t, 60, total)
}

func TestCountLessons(t *testing.T) {
	db := setupDb(t)

	c := course.Course{Title: "T", Category: "safety"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	m := course.Module{CourseID: c.ID, Title: "M"}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create module: %v", err)
	}

	total, err := course.CountLessons(db, c.ID)
	if err != nil {
		t.Fatalf("CountLessons: %v", err)
	}
	assert.Equal(t, int64(0), total)

	for i := 0; i < 3; i++ {
		lesson := course.Lesson{ModuleID: m.ID, CourseID: c.ID, Title: "L", OrderIndex: i}
		if err := db.Create(&lesson).Error; err != nil {
			t.Fatalf("create lesson: %v", err)
		}
	}

	total, err = course.CountLessons(db, c.ID)
	if err != nil {
		t.Fatalf("CountLessons: %v", err)
	}
	assert.Equal(t, int64(3), total)
}
