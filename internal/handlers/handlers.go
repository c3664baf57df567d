// internal/handlers/handlers.go

// Package handlers — тонкий HTTP-слой: разбор запроса, вызов бизнес-операций,
// перевод доменных ошибок в статусы ответов.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ivan-49/FirstFullStak/config"
	"github.com/Ivan-49/FirstFullStak/internal/apperrors"
	"github.com/Ivan-49/FirstFullStak/internal/auth"
	"github.com/Ivan-49/FirstFullStak/internal/files"
	"github.com/Ivan-49/FirstFullStak/internal/schedule"
	"github.com/Ivan-49/FirstFullStak/internal/users"
)

// Handler держит зависимости всех обработчиков. Никаких пакетных
// глобалей: всё, что нужно, передаётся при сборке приложения.
type Handler struct {
	Cfg      *config.Config
	Users    *users.Service
	Tokens   *auth.TokenService
	Schedule *schedule.Repository
	Files    *files.Manager
}

func New(cfg *config.Config, userSvc *users.Service, tokens *auth.TokenService,
	sched *schedule.Repository, fileMgr *files.Manager) *Handler {
	return &Handler{
		Cfg:      cfg,
		Users:    userSvc,
		Tokens:   tokens,
		Schedule: sched,
		Files:    fileMgr,
	}
}

// respondError переводит доменную ошибку в HTTP-ответ.
// Детали внутренних сбоев наружу не уходят — только в лог.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный токен"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверные данные"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Не найдено"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Уже существует"})
	case errors.Is(err, apperrors.ErrStorage):
		slog.Error("Storage error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка хранилища"})
	default:
		slog.Error("Internal error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка"})
	}
}
