// models/user.go

package models

import "time"

// User — учётная запись пользователя расписания.
// PasswordHash никогда не сериализуется в ответы API.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Username     string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:100"`
	CreatedAt    time.Time `json:"created_at"`
	Files        []File    `json:"-" gorm:"foreignKey:UserID"`
}
