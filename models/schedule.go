// models/schedule.go

package models

import "time"

// SlotsPerDay — фиксированное число пар в учебном дне.
const SlotsPerDay = 8

// ScheduleDate представляет один календарный день расписания.
// Создаётся лениво при первом обращении к дате; никогда не удаляется.
type ScheduleDate struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	Date    time.Time `json:"date" gorm:"type:date;uniqueIndex;not null"`
	Notes   string    `json:"notes" gorm:"size:500"`
	Lessons []Lesson  `json:"lessons" gorm:"foreignKey:DateID"`
}

// Lesson — пронумерованный слот (пара) внутри одного дня.
// Уникальность (date_id, lesson_number) — страховка от гонки
// при параллельном первом заполнении дня.
type Lesson struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	DateID       uint   `json:"date_id" gorm:"uniqueIndex:idx_date_lesson;not null"`
	LessonNumber int    `json:"lesson_number" gorm:"uniqueIndex:idx_date_lesson;not null"`
	Subject      string `json:"subject" gorm:"size:100"`
	Teacher      string `json:"teacher" gorm:"size:100"`
	Room         string `json:"room" gorm:"size:20"`
	Files        []File `json:"-" gorm:"foreignKey:LessonID"`
}
