package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu                UserState = "main_menu"                 // В главном меню
	StateAwaitingPhoto           UserState = "awaiting_photo"            // Ожидание снимка пробы
	StateAwaitingCalibration     UserState = "awaiting_calibration"      // Снимок есть, ждём /calibrate
	StateAwaitingCalibrationLine UserState = "awaiting_calibration_line" // Ждём координаты линии эталона
	StateAwaitingSieveTable      UserState = "awaiting_sieve_table"      // Ожидание таблицы сит
	StateProcessing              UserState = "processing"                // Идёт расчёт
)

// User представляет пользователя бота
type User struct {
	ID      int64     // Telegram User ID
	ChatID  int64     // Telegram Chat ID
	State   UserState // Текущее состояние пользователя
	Session *Session  // Снимок, масштаб и последний результат
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:      userID,
		ChatID:  chatID,
		State:   StateMainMenu,
		Session: &Session{},
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}
