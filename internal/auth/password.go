// internal/auth/password.go

package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Схема хэша определяется по самому хранимому артефакту, а не по глобальной
// настройке: старые учётки были созданы с простым SHA-256, новые — с bcrypt.
// SHA-256 поддерживается только на проверку, новые хэши всегда bcrypt.

var legacySHA256Re = regexp.MustCompile(`^[0-9a-f]{64}$`)

// HashPassword строит bcrypt-артефакт для нового пароля.
func HashPassword(password string) (string, error) {
	// bcrypt игнорирует всё после 72 байт — обрезаем явно
	if len(password) > 72 {
		password = password[:72]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword сверяет пароль с хранимым артефактом,
// выбирая схему по его формату.
func CheckPassword(password, stored string) bool {
	switch {
	case strings.HasPrefix(stored, "$2"):
		if len(password) > 72 {
			password = password[:72]
		}
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	case legacySHA256Re.MatchString(stored):
		sum := sha256.Sum256([]byte(password))
		return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(stored)) == 1
	default:
		return false
	}
}
