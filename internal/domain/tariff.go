package domain

// Tariff - тарифный план, множитель к базовой цене маршрута
type Tariff struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description" db:"description"`
	Multiplier  float64 `json:"multiplier" db:"multiplier"`
}
