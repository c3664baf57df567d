// models/file.go

package models

import "time"

// File — файл, прикреплённый к паре.
// Filepath — непрозрачный локатор в хранилище, не совпадает с исходным именем.
// Запись в БД существует только при наличии содержимого в хранилище.
type File struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	LessonID   uint      `json:"lesson_id" gorm:"not null"`
	Filename   string    `json:"filename" gorm:"size:255;not null"`
	Filepath   string    `json:"filepath" gorm:"size:500;not null"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}
