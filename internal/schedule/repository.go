// internal/schedule/repository.go

// Package schedule владеет сущностями ScheduleDate и Lesson:
// ленивое создание дат, разовое заполнение дня пустыми парами,
// точечные правки уроков.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ivan-49/FirstFullStak/internal/apperrors"
	"github.com/Ivan-49/FirstFullStak/models"
)

// DefaultRecentDatesLimit — сколько последних дат отдаёт список по умолчанию.
const DefaultRecentDatesLimit = 30

// LessonUpdate — частичное обновление пары: nil-поле не трогает сохранённое
// значение (пустая строка — это явная очистка, отсутствие — «оставить как есть»).
type LessonUpdate struct {
	Subject *string `json:"subject" form:"subject"`
	Teacher *string `json:"teacher" form:"teacher"`
	Room    *string `json:"room" form:"room"`
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) (*Repository, error) {
	if db == nil {
		return nil, apperrors.ErrNotInitialized
	}
	return &Repository{db: db}, nil
}

// GetOrCreateDate — идемпотентный find-or-insert по уникальной дате.
// Гонку двух одновременных создателей разрешает ON CONFLICT DO NOTHING
// плюс повторное чтение: двух строк на одну дату не бывает.
func (r *Repository) GetOrCreateDate(date time.Time) (*models.ScheduleDate, error) {
	date = truncateToDay(date)

	sd := models.ScheduleDate{Date: date}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoNothing: true,
	}).Create(&sd).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	// Перечитываем в любом случае: при конфликте вставки id остался нулевым.
	var out models.ScheduleDate
	if err := r.db.Where("date = ?", date).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// EnsureFullSchedule возвращает день со всеми парами, при первом обращении
// атомарно создавая ровно SlotsPerDay пар «Пара 1..N» с пустыми
// преподавателем и аудиторией. Повторные вызовы ничего не пересоздают.
func (r *Repository) EnsureFullSchedule(date time.Time) (*models.ScheduleDate, []models.Lesson, error) {
	sd, err := r.GetOrCreateDate(date)
	if err != nil {
		return nil, nil, err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Lesson{}).Where("date_id = ?", sd.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		lessons := make([]models.Lesson, 0, models.SlotsPerDay)
		for i := 1; i <= models.SlotsPerDay; i++ {
			lessons = append(lessons, models.Lesson{
				DateID:       sd.ID,
				LessonNumber: i,
				Subject:      fmt.Sprintf("Пара %d", i),
			})
		}
		return tx.Create(&lessons).Error
	})
	if err != nil {
		// Проигравший гонку первого заполнения упирается в уникальный
		// индекс (date_id, lesson_number): его вставка откатилась,
		// пары уже создал победитель — просто перечитываем.
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, err
		}
	}

	lessons, err := r.GetLessons(sd.ID)
	if err != nil {
		return nil, nil, err
	}
	return sd, lessons, nil
}

// GetLessons возвращает пары дня по возрастанию номера.
func (r *Repository) GetLessons(dateID uint) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := r.db.Where("date_id = ?", dateID).Order("lesson_number asc").Find(&lessons).Error
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *Repository) GetLesson(lessonID uint) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := r.db.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: пара id=%d", apperrors.ErrNotFound, lessonID)
		}
		return nil, err
	}
	return &lesson, nil
}

// UpdateLesson применяет частичное обновление и возвращает свежую запись.
func (r *Repository) UpdateLesson(lessonID uint, upd LessonUpdate) (*models.Lesson, error) {
	lesson, err := r.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if upd.Subject != nil {
		fields["subject"] = *upd.Subject
	}
	if upd.Teacher != nil {
		fields["teacher"] = *upd.Teacher
	}
	if upd.Room != nil {
		fields["room"] = *upd.Room
	}
	if len(fields) == 0 {
		return lesson, nil
	}

	if err := r.db.Model(lesson).Updates(fields).Error; err != nil {
		return nil, err
	}
	return lesson, nil
}

// DeleteLesson удаляет строку пары. Каскад файлов здесь намеренно не
// выполняется: им владеет files.Manager, а порядок (сначала файлы, потом
// пара) задаёт обработчик DELETE /api/lessons/:id.
func (r *Repository) DeleteLesson(lessonID uint) error {
	res := r.db.Delete(&models.Lesson{}, lessonID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: пара id=%d", apperrors.ErrNotFound, lessonID)
	}
	return nil
}

// ListRecentDates — последние даты расписания по убыванию, не более limit
// (0 или меньше — лимит по умолчанию).
func (r *Repository) ListRecentDates(limit int) ([]models.ScheduleDate, error) {
	if limit <= 0 {
		limit = DefaultRecentDatesLimit
	}
	var dates []models.ScheduleDate
	err := r.db.Order("date desc").Limit(limit).Find(&dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// UpdateNotes обновляет заметки дня.
func (r *Repository) UpdateNotes(dateID uint, notes string) (*models.ScheduleDate, error) {
	var sd models.ScheduleDate
	if err := r.db.First(&sd, dateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: дата id=%d", apperrors.ErrNotFound, dateID)
		}
		return nil, err
	}
	if err := r.db.Model(&sd).Update("notes", notes).Error; err != nil {
		return nil, err
	}
	return &sd, nil
}

// truncateToDay отбрасывает время: в БД дата дня хранится без него.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
