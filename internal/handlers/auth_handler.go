// internal/handlers/auth_handler.go

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterInput — данные формы регистрации.
type RegisterInput struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Name     string `json:"name" form:"name" binding:"required"`
}

// LoginInput — данные формы входа.
type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Root — проверка живости сервиса.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Backend работает! 🚀"})
}

// Register создаёт нового пользователя.
func (h *Handler) Register(c *gin.Context) {
	var in RegisterInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, password и name обязательны"})
		return
	}

	user, err := h.Users.Register(in.Username, in.Name, in.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("Пользователь зарегистрирован", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "Пользователь создан", "user_id": user.ID})
}

// Login аутентифицирует пользователя и выдаёт bearer-токен на 7 дней.
func (h *Handler) Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username и password обязательны"})
		return
	}

	user, err := h.Users.Authenticate(in.Username, in.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Tokens.CreateToken(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"username": user.Username,
		},
	})
}
