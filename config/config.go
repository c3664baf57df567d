// config/config.go

package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config — конфигурация процесса. Заполняется один раз на старте;
// дальше передаётся явно, глобального состояния нет.
type Config struct {
	Addr      string        // адрес HTTP-сервера
	DBURL     string        // DSN PostgreSQL
	RedisAddr string        // адрес Redis; пусто — кэш отключён
	SecretKey string        // ключ подписи JWT
	UploadDir string        // каталог файлового хранилища
	TokenTTL  time.Duration // срок жизни токена
}

// Load читает .env (если есть) и переменные окружения.
func Load() *Config {
	// .env удобен локально; в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	return &Config{
		Addr:      getEnv("ADDR", ":8000"),
		DBURL:     os.Getenv("DB_URL"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		SecretKey: getEnv("SECRET_KEY", "secret"),
		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		TokenTTL:  7 * 24 * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
