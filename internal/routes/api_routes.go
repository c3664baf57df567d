// internal/routes/api_routes.go

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Ivan-49/FirstFullStak/internal/handlers"
)

// RegisterAPIRoutes регистрирует все маршруты API, требующие аутентификации.
func RegisterAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	apiGroup := api.Group("/api")
	{
		// --- РАСПИСАНИЕ ---
		schedule := apiGroup.Group("/schedule")
		{
			schedule.GET("/:date", h.GetSchedule)           // день (дата создаётся лениво)
			schedule.POST("/:date", h.CreateSchedule)       // день с полным набором пар
			schedule.PUT("/:date/notes", h.UpdateNotes)     // заметки дня
			schedule.GET("/:date/export", h.ExportSchedule) // выгрузка в xlsx
		}

		// Последние даты расписания.
		apiGroup.GET("/dates", h.ListDates)

		// --- ПАРЫ ---
		lessons := apiGroup.Group("/lessons")
		{
			lessons.PUT("/:id", h.UpdateLesson)            // частичное обновление
			lessons.DELETE("/:id", h.DeleteLesson)         // удаление с каскадом файлов
			lessons.POST("/:id/files", h.UploadLessonFile) // загрузка файла к паре
			lessons.GET("/:id/files", h.ListLessonFiles)   // файлы пары
		}

		// --- ФАЙЛЫ ---
		files := apiGroup.Group("/files")
		{
			files.GET("/:id", h.GetFileInfo)
			files.GET("/download/:id", h.DownloadFile) // только для загрузившего
			files.DELETE("/:id", h.DeleteFile)
		}
	}
}
