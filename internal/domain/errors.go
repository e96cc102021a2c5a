package domain

import "errors"

// Классы ошибок внешних вызовов. Оборачиваются через %w, чтобы
// обработчик мог отличить сломанную схему от недоступного хранилища.
var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrSchemaMismatch   = errors.New("required column missing")
	ErrUploadFailed     = errors.New("photo upload failed")
)
