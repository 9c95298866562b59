package main

import (
	"log"
	"os"

	"career-ai-be/internal/model"
	"career-ai-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// dashboardViewSQL yields one row per provisioned profile. Users without any
// career records get zeros rather than being absent from the view.
const dashboardViewSQL = `CREATE OR REPLACE VIEW user_career_dashboard AS
 SELECT p.user_id,
        COALESCE(jm.total_job_matches, 0)     AS total_job_matches,
        COALESCE(jm.avg_match_score, 0)       AS avg_match_score,
        COALESCE(lp.skills_learning, 0)       AS skills_learning,
        COALESCE(lp.total_learning_hours, 0)  AS total_learning_hours,
        COALESCE(ap.applications_sent, 0)     AS applications_sent,
        COALESCE(iv.interviews_completed, 0)  AS interviews_completed,
        GREATEST(p.updated_at, lp.last_learning_update) AS last_updated
 FROM profiles p
 LEFT JOIN (
   SELECT user_id, COUNT(*) AS total_job_matches, ROUND(AVG(match_score), 2) AS avg_match_score
   FROM job_matches GROUP BY user_id
 ) jm ON jm.user_id = p.user_id
 LEFT JOIN (
   SELECT user_id, COUNT(DISTINCT skill) AS skills_learning, SUM(COALESCE(hours_completed, 0)) AS total_learning_hours,
          MAX(updated_at) AS last_learning_update
   FROM learning_progress GROUP BY user_id
 ) lp ON lp.user_id = p.user_id
 LEFT JOIN (
   SELECT user_id, COUNT(*) AS applications_sent FROM applications GROUP BY user_id
 ) ap ON ap.user_id = p.user_id
 LEFT JOIN (
   SELECT user_id, COUNT(*) FILTER (WHERE completed) AS interviews_completed
   FROM interview_sessions GROUP BY user_id
 ) iv ON iv.user_id = p.user_id;`

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn, os.Getenv("GO_ENV") == "production")
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions
	color.Cyan("Step 1: Setting up Extensions...")
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate
	models := []interface{}{
		&model.User{},
		&model.Profile{},
		&model.LearningProgress{},
		&model.JobMatch{},
		&model.Application{},
		&model.InterviewSession{},
	}
	color.Cyan("Step 2: Running AutoMigrate for %d Tables...", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	// 5. Post-Migration: Views
	color.Cyan("Step 3: Creating Views...")
	if err := db.Exec(dashboardViewSQL).Error; err != nil {
		color.Red("Error: Failed to create user_career_dashboard view: %v", err)
		os.Exit(1)
	}

	color.Green("✅ Success: Database migration completed successfully via GORM.")
}
