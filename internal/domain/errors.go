package domain

import "errors"

var (
	// ErrBadParams — нарушение формы входных данных: пустое обязательное поле,
	// неположительный идентификатор/цена/количество, слишком короткая строка.
	ErrBadParams = errors.New("bad params")
	// ErrAlreadyExists — нарушение уникальности: запись с таким ключом уже есть.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotExists — целевая строка отсутствует, либо update/delete не затронул
	// ни одной строки, либо цель ассоциации не подходит (например, неактивное блюдо).
	ErrNotExists = errors.New("not exists")
)

// IsBadParams проверяет, является ли ошибка нарушением формы параметров.
func IsBadParams(err error) bool {
	return errors.Is(err, ErrBadParams)
}

// IsConflict проверяет, является ли ошибка конфликтом уникальности.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsNotExists проверяет, является ли ошибка отсутствием целевой строки.
func IsNotExists(err error) bool {
	return errors.Is(err, ErrNotExists)
}
