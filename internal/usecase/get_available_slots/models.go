package get_available_slots

import "time"

// Request модель запроса доступных слотов
type Request struct {
	Date   time.Time // Дата тура (без времени)
	Guests int       // Размер группы
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Слоты, доступные группе указанного размера
}

// Slot доступное время тура
type Slot struct {
	TourTime       string // "15:04"
	TourTitle      string
	AvailableSpots int
	RunningLow     bool // Мест осталось мало, стоит поторопиться
}

// QuickDate быстрый вариант даты для первого шага мастера
type QuickDate struct {
	Label string    // "Today", "Tomorrow", "Day after Tomorrow"
	Date  time.Time // Полночь в часовом поясе площадки
}
