package config

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "task-tracker.com/task-tracker/pkg/models"
)

func NewDatabaseClient(dsn string, debug bool) *gorm.DB {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.TaskRecord{}, &model.ActivityLog{}, &model.Notification{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
