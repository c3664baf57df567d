// internal/files/manager.go

// Package files — менеджер прикреплённых файлов: связь файла с парой и
// загрузившим пользователем, согласованность записи в БД и содержимого
// в хранилище.
package files

import (
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"

	"github.com/Ivan-49/FirstFullStak/internal/apperrors"
	"github.com/Ivan-49/FirstFullStak/internal/schedule"
	"github.com/Ivan-49/FirstFullStak/internal/storage"
	"github.com/Ivan-49/FirstFullStak/models"
)

// Manager поддерживает инвариант «запись о файле существует только вместе
// с содержимым»: при загрузке сначала пишется содержимое, при удалении
// сначала удаляется содержимое.
type Manager struct {
	db       *gorm.DB
	store    storage.Storage
	schedule *schedule.Repository
}

func NewManager(db *gorm.DB, store storage.Storage, sched *schedule.Repository) (*Manager, error) {
	if db == nil || store == nil || sched == nil {
		return nil, apperrors.ErrNotInitialized
	}
	return &Manager{db: db, store: store, schedule: sched}, nil
}

// Attach прикрепляет файл к паре. Пара обязана существовать.
// Содержимое записывается первым; если запись в хранилище не удалась,
// запись в БД не создаётся — осиротевших метаданных не бывает.
func (m *Manager) Attach(userID, lessonID uint, filename string, content []byte) (*models.File, error) {
	if _, err := m.schedule.GetLesson(lessonID); err != nil {
		return nil, err
	}

	locator := storage.NewLocator(filename)
	if err := m.store.Save(locator, content); err != nil {
		return nil, err
	}

	file := models.File{
		UserID:    userID,
		LessonID:  lessonID,
		Filename:  filename,
		Filepath:  locator,
		SizeBytes: int64(len(content)),
	}
	if err := m.db.Create(&file).Error; err != nil {
		// запись не зафиксировалась — подчищаем уже записанное содержимое
		_ = m.store.Remove(locator)
		return nil, err
	}
	return &file, nil
}

func (m *Manager) Get(fileID uint) (*models.File, error) {
	var file models.File
	if err := m.db.First(&file, fileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: файл id=%d", apperrors.ErrNotFound, fileID)
		}
		return nil, err
	}
	return &file, nil
}

// Open отдаёт метаданные и содержимое файла на чтение.
func (m *Manager) Open(fileID uint) (*models.File, io.ReadCloser, error) {
	file, err := m.Get(fileID)
	if err != nil {
		return nil, nil, err
	}
	rc, err := m.store.Open(file.Filepath)
	if err != nil {
		return nil, nil, err
	}
	return file, rc, nil
}

// ListForLesson — файлы пары, свежие первыми.
func (m *Manager) ListForLesson(lessonID uint) ([]models.File, error) {
	var list []models.File
	err := m.db.Where("lesson_id = ?", lessonID).Order("uploaded_at desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Delete удаляет файл: сначала содержимое, затем запись. Уже пропавшее с
// диска содержимое не ошибка, но при любом другом сбое хранилища запись
// остаётся на месте — висячая ссылка не исчезает молча.
func (m *Manager) Delete(fileID uint) error {
	file, err := m.Get(fileID)
	if err != nil {
		return err
	}
	return m.deleteFile(file)
}

func (m *Manager) deleteFile(file *models.File) error {
	if err := m.store.Remove(file.Filepath); err != nil {
		return err
	}
	return m.db.Delete(&models.File{}, file.ID).Error
}

// DeleteAllForLesson каскадно удаляет все файлы пары по тому же контракту
// «содержимое, потом запись». Первый же сбой хранилища прерывает каскад:
// пару нельзя удалять, пока на неё ссылаются файлы.
func (m *Manager) DeleteAllForLesson(lessonID uint) error {
	list, err := m.ListForLesson(lessonID)
	if err != nil {
		return err
	}
	for i := range list {
		if err := m.deleteFile(&list[i]); err != nil {
			return err
		}
	}
	return nil
}
