package main

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/astopaal/meksut-order-management/entity"
)

func setupDatabase(path string, log *logrus.Logger) *gorm.DB {
	// TranslateError turns SQLite unique violations into gorm.ErrDuplicatedKey,
	// which order generation relies on to detect already-materialized orders.
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}

	// SQLite needs this per-connection for ON DELETE CASCADE to fire.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		log.WithError(err).Fatal("failed to enable foreign keys")
	}

	if err := db.AutoMigrate(
		&entity.Customer{},
		&entity.Order{},
		&entity.Subscription{},
	); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}
	return db
}
