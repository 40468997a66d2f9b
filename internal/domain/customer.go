package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// minAddressLen — минимальная длина адреса (строго больше двух символов).
const minAddressLen = 3

// Customer описывает клиента ресторана.
// Запись неизменяема после создания: обновлений нет, только удаление.
type Customer struct {
	ID       int64
	FullName string
	Phone    string
	Address  string
}

// Validate проверяет поля клиента перед вставкой.
// Возвращает ErrBadParams, если идентификатор неположительный,
// обязательное поле пустое или адрес короче трёх символов.
func (c Customer) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("customer id must be positive: %w", ErrBadParams)
	}
	if strings.TrimSpace(c.FullName) == "" {
		return fmt.Errorf("customer full name is required: %w", ErrBadParams)
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("customer phone is required: %w", ErrBadParams)
	}
	// Длина в символах, как считает length() в базе, а не в байтах.
	if utf8.RuneCountInString(c.Address) < minAddressLen {
		return fmt.Errorf("customer address is too short: %w", ErrBadParams)
	}
	return nil
}

// Exists сообщает, найден ли клиент. Нулевое значение служит sentinel
// «не найдено» для операций чтения.
func (c Customer) Exists() bool {
	return c.ID != 0
}
