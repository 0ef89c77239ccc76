package postgres

import (
	"github.com/dom/community-portal/internal/domain"
	"github.com/dom/community-portal/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Appointment{},
		&domain.Review{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:        NewUserRepository(db),
		Appointment: NewAppointmentRepository(db),
		Review:      NewReviewRepository(db),
	}
}
