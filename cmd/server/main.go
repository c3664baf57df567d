// cmd/server/main.go

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Ivan-49/FirstFullStak/config"
	"github.com/Ivan-49/FirstFullStak/internal/auth"
	"github.com/Ivan-49/FirstFullStak/internal/files"
	"github.com/Ivan-49/FirstFullStak/internal/handlers"
	"github.com/Ivan-49/FirstFullStak/internal/middleware"
	"github.com/Ivan-49/FirstFullStak/internal/routes"
	"github.com/Ivan-49/FirstFullStak/internal/schedule"
	"github.com/Ivan-49/FirstFullStak/internal/storage"
	"github.com/Ivan-49/FirstFullStak/internal/users"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		slog.Error("Ошибка подключения к БД", "error", err)
		os.Exit(1)
	}
	rdb := config.ConnectRedis(context.Background(), cfg)

	store, err := storage.NewDisk(cfg.UploadDir)
	if err != nil {
		slog.Error("Не удалось подготовить каталог загрузок", "error", err, "dir", cfg.UploadDir)
		os.Exit(1)
	}

	tokens := auth.NewTokenService(cfg.SecretKey, cfg.TokenTTL)

	userSvc, err := users.NewService(db)
	if err != nil {
		slog.Error("Не удалось создать сервис пользователей", "error", err)
		os.Exit(1)
	}
	sched, err := schedule.NewRepository(db)
	if err != nil {
		slog.Error("Не удалось создать репозиторий расписания", "error", err)
		os.Exit(1)
	}
	fileMgr, err := files.NewManager(db, store, sched)
	if err != nil {
		slog.Error("Не удалось создать менеджер файлов", "error", err)
		os.Exit(1)
	}

	h := handlers.New(cfg, userSvc, tokens, sched, fileMgr)

	r := gin.Default()
	routes.SetupRoutes(r, h, middleware.Auth(tokens, userSvc, rdb))

	slog.Info("Сервер запускается", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		slog.Error("Сервер остановился с ошибкой", "error", err)
		os.Exit(1)
	}
}
