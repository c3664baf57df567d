package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/Ivan-49/FirstFullStak/internal/apperrors"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", 7*24*time.Hour)

	token, err := svc.CreateToken(42)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	userID, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if userID != 42 {
		t.Fatalf("VerifyToken = %d, ожидалось 42", userID)
	}
}

func TestVerifyTokenRejects(t *testing.T) {
	svc := NewTokenService("test-secret", 7*24*time.Hour)
	other := NewTokenService("другой-ключ", 7*24*time.Hour)

	good, err := svc.CreateToken(1)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	foreign, err := other.CreateToken(1)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"пустой", ""},
		{"мусор", "abc.def.ghi"},
		{"чужая подпись", foreign},
		{"обрезанный", good[:len(good)-5]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.VerifyToken(tc.token); !errors.Is(err, apperrors.ErrUnauthorized) {
				t.Fatalf("ожидался ErrUnauthorized, получено %v", err)
			}
		})
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	defer func() { NowFunc = time.Now }()

	svc := NewTokenService("test-secret", 7*24*time.Hour)

	issued := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	NowFunc = func() time.Time { return issued }
	token, err := svc.CreateToken(7)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	// внутри срока действия токен валиден
	NowFunc = func() time.Time { return issued.Add(6 * 24 * time.Hour) }
	if _, err := svc.VerifyToken(token); err != nil {
		t.Fatalf("токен внутри срока действия отклонён: %v", err)
	}

	// спустя 7 дней — уже нет
	NowFunc = func() time.Time { return issued.Add(7*24*time.Hour + time.Minute) }
	if _, err := svc.VerifyToken(token); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("ожидался ErrUnauthorized для истёкшего токена, получено %v", err)
	}
}
