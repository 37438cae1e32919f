package utils

import (
	"avacademy/database"
	courseModels "avacademy/models/course"
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeReconcileScheduler sets up the nightly enrollment-count
// reconciliation job. The enroll path updates the counter in the same
// transaction as the enrollment row, but a crash between API restarts or a
// manual data fix can still leave drift; this job re-derives the counter
// from the enrollments table and corrects any mismatch it finds.
func InitializeReconcileScheduler() {
	log.Println("[RECONCILE-SCHEDULER] Initializing enrollment count reconciler...")

	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		log.Println("[RECONCILE-SCHEDULER] Running enrollment count reconciliation...")
		ReconcileEnrollmentCounts()
	})

	c.Start()
	log.Println("[RECONCILE-SCHEDULER] Scheduler started - runs daily at 3 AM")
}

// ReconcileEnrollmentCounts recomputes every course's enrollment_count from
// the enrollments table and logs each correction.
func ReconcileEnrollmentCounts() {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Select("id", "enrollment_count").Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		log.Printf("[RECONCILE-SCHEDULER] Error fetching courses: %v", err)
		return
	}

	fixed := 0
	for _, course := range courses {
		var actual int64
		if err := db.Model(&courseModels.Enrollment{}).
			Where("course_id = ? AND is_deleted = ?", course.ID, false).
			Count(&actual).Error; err != nil {
			log.Printf("[RECONCILE-SCHEDULER] Error counting enrollments for course %d: %v", course.ID, err)
			continue
		}

		if actual == course.EnrollmentCount {
			continue
		}

		log.Printf("[RECONCILE-SCHEDULER] Course %d enrollment_count drift: stored %d, actual %d",
			course.ID, course.EnrollmentCount, actual)
		if err := db.Model(&courseModels.Course{}).
			Where("id = ?", course.ID).
			UpdateColumn("enrollment_count", actual).Error; err != nil {
			log.Printf("[RECONCILE-SCHEDULER] Error fixing course %d: %v", course.ID, err)
			continue
		}
		fixed++
	}

	log.Printf("[RECONCILE-SCHEDULER] Reconciliation done, %d course(s) corrected", fixed)
}
