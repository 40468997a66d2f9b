package domain

import "context"

// CustomerRepository описывает требования к хранилищу клиентов.
type CustomerRepository interface {
	// Create сохраняет нового клиента. ErrBadParams при нарушении формы полей,
	// ErrAlreadyExists при занятом идентификаторе.
	Create(ctx context.Context, customer Customer) error
	// Get возвращает клиента или нулевое значение, если его нет.
	// Ошибка означает недоступность хранилища, а не «не найдено».
	Get(ctx context.Context, id int64) (Customer, error)
	// Delete удаляет клиента и каскадно все его ассоциации и лайки.
	// ErrNotExists, если ни одна строка не затронута.
	Delete(ctx context.Context, id int64) error
}

// OrderRepository описывает требования к хранилищу заказов,
// включая ассоциации «клиент разместил заказ» и позиции заказа.
type OrderRepository interface {
	Create(ctx context.Context, order Order) error
	Get(ctx context.Context, id int64) (Order, error)
	Delete(ctx context.Context, id int64) error

	// Place привязывает заказ к клиенту. У заказа не больше одного клиента:
	// повторная привязка возвращает ErrAlreadyExists независимо от того,
	// тот же это клиент или другой. ErrNotExists при отсутствии любого родителя.
	Place(ctx context.Context, custID, orderID int64) error
	// Placer возвращает клиента, разместившего заказ,
	// или нулевое значение для анонимного либо неизвестного заказа.
	Placer(ctx context.Context, orderID int64) (Customer, error)

	// AddLine добавляет позицию, фиксируя текущую цену блюда.
	// ErrBadParams при amount <= 0; ErrNotExists, если заказ или блюдо
	// отсутствуют либо блюдо неактивно; ErrAlreadyExists при дубликате пары.
	AddLine(ctx context.Context, orderID, dishID int64, amount int32) error
	// RemoveLine удаляет позицию. ErrNotExists, если её не было.
	RemoveLine(ctx context.Context, orderID, dishID int64) error
	// Lines возвращает позиции заказа по возрастанию dish id,
	// пустой срез при их отсутствии.
	Lines(ctx context.Context, orderID int64) ([]OrderLine, error)
}

// DishRepository описывает требования к хранилищу блюд.
type DishRepository interface {
	Create(ctx context.Context, dish Dish) error
	Get(ctx context.Context, id int64) (Dish, error)
	Delete(ctx context.Context, id int64) error

	// UpdatePrice меняет цену активного блюда. ErrBadParams при price <= 0;
	// ErrNotExists, если блюда нет или оно неактивно — оба случая
	// схлопываются в один результат, частичного эффекта не бывает.
	UpdatePrice(ctx context.Context, id int64, price float64) error
	// UpdateActiveStatus безусловно выставляет флаг активности.
	// ErrNotExists, если блюда нет.
	UpdateActiveStatus(ctx context.Context, id int64, active bool) error
}

// LikeRepository описывает требования к хранилищу лайков.
type LikeRepository interface {
	// Like фиксирует симпатию клиента к блюду. ErrAlreadyExists при дубликате,
	// ErrNotExists при отсутствии клиента или блюда.
	Like(ctx context.Context, custID, dishID int64) error
	// Unlike снимает лайк. ErrNotExists, если его не было.
	Unlike(ctx context.Context, custID, dishID int64) error
	// LikedBy возвращает блюда, которые нравятся клиенту, по возрастанию id.
	LikedBy(ctx context.Context, custID int64) ([]Dish, error)
}

// Analytics — аналитические запросы поверх общей схемы.
// Все списковые методы возвращают пустой срез, а не nil/ошибку,
// когда подходящих строк нет; ошибка означает недоступность хранилища.
type Analytics interface {
	// OrderTotalPrice — сумма amount*price по позициям заказа; 0 без позиций.
	OrderTotalPrice(ctx context.Context, orderID int64) (float64, error)
	// MaxCustomerSpend — максимум стоимости среди заказов клиента; 0 без заказов.
	MaxCustomerSpend(ctx context.Context, custID int64) (float64, error)
	// MostExpensiveAnonymousOrder — самый дорогой заказ без клиента,
	// при равенстве — с меньшим id; нулевой Order, если анонимных заказов нет.
	MostExpensiveAnonymousOrder(ctx context.Context) (Order, error)
	// MostLikedDishEqualsMostPurchased — совпадает ли блюдо с максимумом лайков
	// с блюдом с максимальным суммарным количеством покупок.
	MostLikedDishEqualsMostPurchased(ctx context.Context) (bool, error)
	// TopFiveDishCustomers — клиенты, чей заказ состоит ровно из пяти
	// самых залайканных блюд, по возрастанию id клиента.
	TopFiveDishCustomers(ctx context.Context) ([]int64, error)
	// NonWorthPriceIncreases — активные блюда, у которых средняя прибыль
	// на позицию при текущей цене строго ниже, чем при какой-то прежней.
	NonWorthPriceIncreases(ctx context.Context) ([]int64, error)
	// TotalProfitPerMonth — 12 пар (месяц, прибыль) за год, месяцы по убыванию.
	TotalProfitPerMonth(ctx context.Context, year int) ([]MonthProfit, error)
	// DishRecommendations — блюда, которые нравятся похожим клиентам
	// (больше двух общих лайков), но ещё не нравятся данному.
	DishRecommendations(ctx context.Context, custID int64) ([]int64, error)
}
