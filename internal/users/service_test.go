package users

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ivan-49/FirstFullStak/config"
	"github.com/Ivan-49/FirstFullStak/internal/apperrors"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("открытие тестовой БД: %v", err)
	}
	// одна in-memory база — одно соединение
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("миграция тестовой БД: %v", err)
	}
	return db
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(openTestDB(t))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestNewServiceNilDB(t *testing.T) {
	if _, err := NewService(nil); !errors.Is(err, apperrors.ErrNotInitialized) {
		t.Fatalf("ожидался ErrNotInitialized, получено %v", err)
	}
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register("alice", "Алиса", "pw123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("Register не присвоил id")
	}
	if user.PasswordHash == "pw123" {
		t.Fatal("пароль сохранён открытым текстом")
	}

	got, err := svc.Authenticate("alice", "pw123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("Authenticate вернул id=%d, ожидалось %d", got.ID, user.ID)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register("bob", "Боб", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register("bob", "Другой Боб", "pw2")
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("ожидался ErrConflict, получено %v", err)
	}
}

func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register("carol", "Кэрол", "правильный"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, errWrongPwd := svc.Authenticate("carol", "неправильный")
	_, errNoUser := svc.Authenticate("никого", "xxx")

	// по ошибке нельзя понять, существует ли пользователь
	if !errors.Is(errWrongPwd, apperrors.ErrInvalidCredentials) {
		t.Fatalf("неверный пароль: ожидался ErrInvalidCredentials, получено %v", errWrongPwd)
	}
	if !errors.Is(errNoUser, apperrors.ErrInvalidCredentials) {
		t.Fatalf("нет пользователя: ожидался ErrInvalidCredentials, получено %v", errNoUser)
	}
	if errWrongPwd.Error() != errNoUser.Error() {
		t.Fatalf("тексты ошибок различаются: %q против %q", errWrongPwd, errNoUser)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register("", "Имя", "pw"); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("пустой username: ожидался ErrValidation, получено %v", err)
	}
	if _, err := svc.Register("dave", "Имя", ""); !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("пустой пароль: ожидался ErrValidation, получено %v", err)
	}
}

func TestGetByID(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register("erin", "Эрин", "pw")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := svc.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Username != "erin" {
		t.Fatalf("GetByID вернул username=%q", got.Username)
	}

	if _, err := svc.GetByID(9999); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("ожидался ErrNotFound, получено %v", err)
	}
}
