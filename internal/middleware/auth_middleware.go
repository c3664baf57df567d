// internal/middleware/auth_middleware.go

package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Ivan-49/FirstFullStak/internal/auth"
	"github.com/Ivan-49/FirstFullStak/internal/users"
)

// ContextUserIDKey — ключ gin-контекста с id аутентифицированного пользователя.
const ContextUserIDKey = "user_id"

const userCacheTTL = 10 * time.Minute

// CachedUserData — данные пользователя, которые кладутся в кэш.
type CachedUserData struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Auth проверяет bearer-токен (заголовок Authorization либо cookie
// auth_token) и кладёт id пользователя в контекст запроса. Сам пользователь
// подтягивается из Redis-кэша, при промахе — из БД.
func Auth(tokens *auth.TokenService, userSvc *users.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("auth_token")
		if err != nil || tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				abortUnauthorized(c, "Authorization token not provided")
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				abortUnauthorized(c, "Invalid Authorization header format")
				return
			}
			tokenStr = parts[1]
		}

		userID, err := tokens.VerifyToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		cacheKey := fmt.Sprintf("user:%d:data", userID)
		ctx := c.Request.Context()

		if rdb != nil {
			if cached, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
				var userData CachedUserData
				if json.Unmarshal([]byte(cached), &userData) == nil {
					setContextAndProceed(c, &userData)
					return
				}
				slog.Warn("Failed to unmarshal cached user data", "user_id", userID)
			} else if err != redis.Nil {
				slog.Error("Redis GET command failed", "error", err, "user_id", userID)
			}
		}

		user, err := userSvc.GetByID(userID)
		if err != nil {
			abortUnauthorized(c, "User from token not found")
			return
		}

		userData := CachedUserData{
			UserID:   user.ID,
			Username: user.Username,
			Name:     user.Name,
		}
		if rdb != nil {
			cacheUserData(ctx, rdb, cacheKey, &userData)
		}
		setContextAndProceed(c, &userData)
	}
}

func cacheUserData(ctx context.Context, rdb *redis.Client, key string, data *CachedUserData) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		slog.Error("Failed to marshal user data for caching", "error", err, "user_id", data.UserID)
		return
	}
	if err := rdb.Set(ctx, key, jsonData, userCacheTTL).Err(); err != nil {
		slog.Error("Failed to SET user data to cache", "error", err, "user_id", data.UserID)
	}
}

func setContextAndProceed(c *gin.Context, userData *CachedUserData) {
	c.Set(ContextUserIDKey, userData.UserID)
	c.Set("username", userData.Username)
	c.Set("userName", userData.Name)
	c.Next()
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
	c.Abort()
}

// UserID достаёт id пользователя, положенный Auth.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
