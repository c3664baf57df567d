// config/database.go

package config

import (
	"errors"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ivan-49/FirstFullStak/models"
)

// ConnectDB открывает соединение с PostgreSQL и выполняет автомиграцию схемы.
// Возвращает handle вместо глобальной переменной: до явного вызова на старте
// процесса соединения не существует, после остановки — тоже.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	if cfg.DBURL == "" {
		return nil, errors.New("переменная окружения DB_URL не установлена")
	}

	db, err := gorm.Open(postgres.Open(cfg.DBURL), &gorm.Config{
		// нарушения уникальности должны приходить как gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	slog.Info("Успешное подключение к базе данных!")
	return db, nil
}

// Migrate приводит схему к актуальному виду.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ScheduleDate{},
		&models.Lesson{},
		&models.File{},
	)
}
