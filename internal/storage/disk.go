// internal/storage/disk.go

// Package storage — хранилище содержимого файлов, адресуемое
// непрозрачным локатором.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ivan-49/FirstFullStak/internal/apperrors"
)

// NowFunc подменяется в тестах.
var NowFunc = time.Now

// Storage — коллаборатор хранения байтов: записать один раз, читать,
// удалять идемпотентно.
type Storage interface {
	// Save записывает содержимое под локатором. Любой сбой — ErrStorage.
	Save(locator string, content []byte) error
	// Open открывает содержимое на чтение. Отсутствие — ErrNotFound.
	Open(locator string) (io.ReadCloser, error)
	// Remove удаляет содержимое. Уже отсутствующее — не ошибка;
	// любой другой сбой — ErrStorage.
	Remove(locator string) error
}

// NewLocator строит уникальный локатор для загружаемого файла:
// отметка времени + случайный суффикс + исходное имя. Два файла с одним
// именем в одну и ту же секунду всё равно получают разные локаторы.
func NewLocator(filename string) string {
	ts := NowFunc().Format("2006-01-02_15-04-05")
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s_%s_%s", ts, suffix, sanitize(filename))
}

// sanitize обрезает путь до имени и убирает разделители:
// локатор не должен выводить за пределы каталога хранилища.
func sanitize(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	if name == "" || name == "." || name == ".." {
		name = "file"
	}
	return name
}

// Disk — файловое хранилище в одном каталоге.
type Disk struct {
	baseDir string
}

func NewDisk(baseDir string) (*Disk, error) {
	if baseDir == "" {
		return nil, apperrors.ErrNotInitialized
	}
	if err := ensureDir(baseDir); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return &Disk{baseDir: baseDir}, nil
}

func (d *Disk) path(locator string) string {
	return filepath.Join(d.baseDir, filepath.Base(locator))
}

func (d *Disk) Save(locator string, content []byte) error {
	if err := ensureDir(d.baseDir); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if err := os.WriteFile(d.path(locator), content, 0o644); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return nil
}

func (d *Disk) Open(locator string) (io.ReadCloser, error) {
	f, err := os.Open(d.path(locator))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: файл отсутствует на диске", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return f, nil
}

func (d *Disk) Remove(locator string) error {
	if err := os.Remove(d.path(locator)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return nil
}

// ensureDir гарантирует существование директории.
// Если путь существует и это файл — вернёт ошибку.
func ensureDir(path string) error {
	if path == "" {
		return errors.New("empty dir path")
	}
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return errors.New("path exists and is not a directory")
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(path, 0o755)
}
