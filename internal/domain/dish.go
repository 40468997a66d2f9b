package domain

import (
	"fmt"
	"unicode/utf8"
)

// minDishNameLen — минимальная длина названия блюда (строго больше двух символов).
const minDishNameLen = 3

// Dish описывает блюдо меню. После создания мутабельны только цена
// (и только пока блюдо активно) и флаг активности — каждое через свой
// отдельный метод репозитория, общих сеттеров нет.
type Dish struct {
	ID     int64
	Name   string
	Price  float64
	Active bool
}

// Validate проверяет поля блюда перед вставкой.
func (d Dish) Validate() error {
	if d.ID <= 0 {
		return fmt.Errorf("dish id must be positive: %w", ErrBadParams)
	}
	// Длина в символах, как считает length() в базе, а не в байтах.
	if utf8.RuneCountInString(d.Name) < minDishNameLen {
		return fmt.Errorf("dish name is too short: %w", ErrBadParams)
	}
	if d.Price <= 0 {
		return fmt.Errorf("dish price must be positive: %w", ErrBadParams)
	}
	return nil
}

// Exists сообщает, найдено ли блюдо (нулевое значение — sentinel «не найдено»).
func (d Dish) Exists() bool {
	return d.ID != 0
}
