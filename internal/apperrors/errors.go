// internal/apperrors/errors.go

// Package apperrors содержит типизированные ошибки предметной области.
// Слои бизнес-логики возвращают только их (или оборачивают через %w);
// перевод в HTTP-статусы — забота обработчиков.
package apperrors

import "errors"

var (
	// ErrUnauthorized — токен отсутствует, повреждён или истёк.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials — неверный логин ИЛИ пароль.
	// Единая ошибка: по ответу нельзя перечислять имена пользователей.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrConflict — нарушение уникальности (например, занятый username).
	ErrConflict = errors.New("conflict")

	// ErrNotFound — сущность с таким id не существует.
	ErrNotFound = errors.New("not found")

	// ErrStorage — сбой ввода-вывода файлового хранилища.
	ErrStorage = errors.New("storage error")

	// ErrValidation — некорректные входные данные (формат даты и т.п.).
	ErrValidation = errors.New("validation error")

	// ErrNotInitialized — компонент используется до инициализации зависимостей.
	ErrNotInitialized = errors.New("not initialized")
)
