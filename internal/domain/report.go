package domain

// MonthProfit — суммарная прибыль за один месяц года.
// Месяцы без заказов представлены нулевой суммой, а не пропуском.
type MonthProfit struct {
	Month  int
	Profit float64
}
