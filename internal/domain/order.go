package domain

import (
	"fmt"
	"time"
)

// Order описывает заказ. Заказ неизменяем после создания; привязка к клиенту
// живёт в отдельной ассоциации, заказ без неё считается анонимным.
type Order struct {
	ID int64
	// PlacedAt хранится с точностью до секунды.
	PlacedAt time.Time
}

// OrderLine — позиция заказа: блюдо, количество и цена,
// зафиксированная в момент добавления позиции. Последующие изменения цены
// блюда на уже записанные позиции не влияют.
type OrderLine struct {
	DishID int64
	Amount int32
	// Price — замороженная цена за единицу на момент вставки.
	Price float64
}

// Validate проверяет поля заказа перед вставкой.
func (o Order) Validate() error {
	if o.ID <= 0 {
		return fmt.Errorf("order id must be positive: %w", ErrBadParams)
	}
	if o.PlacedAt.IsZero() {
		return fmt.Errorf("order timestamp is required: %w", ErrBadParams)
	}
	return nil
}

// Exists сообщает, найден ли заказ (нулевое значение — sentinel «не найдено»).
func (o Order) Exists() bool {
	return o.ID != 0
}

// Profit возвращает вклад позиции в стоимость заказа: amount * frozen price.
func (l OrderLine) Profit() float64 {
	return float64(l.Amount) * l.Price
}
