package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок маркетплейса.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Аутентификация ---

// ErrInvalidCredentials - неверное имя пользователя или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

// ErrUnauthenticated - невалидный, просроченный или непригодный токен.
var ErrUnauthenticated = New(
	CodeUnauthorized,
	"auth",
	"Authentication failed, please login again",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - не-админ пытается выполнить админ-действие.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrDuplicateCredentials - имя пользователя или email уже заняты.
var ErrDuplicateCredentials = New(
	CodeConflict,
	"user",
	"Username or email already taken",
	http.StatusConflict,
)

// --- Сброс пароля ---

// ErrInvalidResetCode - код сброса не найден.
var ErrInvalidResetCode = New(
	CodeInvalidResetCode,
	"password_reset",
	"Invalid reset code",
	http.StatusBadRequest,
)

// ErrResetCodeExpired - код сброса старше окна свежести.
var ErrResetCodeExpired = New(
	CodeResetCodeExpired,
	"password_reset",
	"Reset code expired, please request a new one",
	http.StatusBadRequest,
)

// --- Магазины и товары ---

// ErrStoreAlreadyExists - у пользователя уже есть магазин (строго один на пользователя).
var ErrStoreAlreadyExists = New(
	CodeConflict,
	"store",
	"User already owns a store",
	http.StatusConflict,
)

// ErrStoreNameTaken - имя магазина уже занято.
var ErrStoreNameTaken = New(
	CodeConflict,
	"store",
	"Store name already taken",
	http.StatusConflict,
)

// ErrNotEnoughStock - остаток товара меньше запрошенного количества.
var ErrNotEnoughStock = New(
	CodeInvalidOperation,
	"order",
	"Not enough items in stock",
	http.StatusBadRequest,
)
