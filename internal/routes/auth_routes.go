// internal/routes/auth_routes.go

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Ivan-49/FirstFullStak/internal/handlers"
)

// RegisterAuthRoutes регистрирует публичные маршруты.
// Эти маршруты не требуют middleware для проверки токена.
func RegisterAuthRoutes(r *gin.Engine, h *handlers.Handler) {
	// Проверка, что backend жив.
	r.GET("/", h.Root)

	// Регистрация нового пользователя.
	r.POST("/register", h.Register)

	// Вход: проверка логина/пароля и выдача токена.
	r.POST("/login", h.Login)
}
