// internal/routes/router.go

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Ivan-49/FirstFullStak/internal/handlers"
)

// SetupRoutes инициализирует все маршруты приложения.
func SetupRoutes(r *gin.Engine, h *handlers.Handler, authMW gin.HandlerFunc) {
	// --- Публичные маршруты ---
	// Проверка живости и аутентификация токена не требуют.
	RegisterAuthRoutes(r, h)

	// --- Защищённая группа маршрутов ---
	// Всё остальное доступно только с валидным токеном.
	authRequired := r.Group("/")
	authRequired.Use(authMW)
	{
		RegisterAPIRoutes(authRequired, h)
	}
}
