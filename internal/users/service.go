// internal/users/service.go

// Package users — хранилище учётных записей: регистрация и аутентификация.
package users

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Ivan-49/FirstFullStak/internal/apperrors"
	"github.com/Ivan-49/FirstFullStak/internal/auth"
	"github.com/Ivan-49/FirstFullStak/models"
)

// Service владеет записями пользователей. Пароль хранится только как
// односторонний артефакт проверки, никогда как открытый текст.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, apperrors.ErrNotInitialized
	}
	return &Service{db: db}, nil
}

// Register создаёт пользователя. Занятый username — ErrConflict;
// гонку двух одновременных регистраций разрешает уникальный индекс.
func (s *Service) Register(username, name, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username и password обязательны", apperrors.ErrValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: пользователь уже существует", apperrors.ErrConflict)
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate проверяет пару логин/пароль. «Нет такого пользователя» и
// «неверный пароль» наружу не различаются — единый ErrInvalidCredentials.
func (s *Service) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

// GetByID возвращает пользователя по id (нужно middleware для кэша).
func (s *Service) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
