package model

import (
	"time"

	"slotforge_backend/internal/engine"
)

// SpinRequest — запрос платного спина
type SpinRequest struct {
	GameID string
	Bet    int
	// Клиентская часть сида (provably fair); пустая строка — только серверный сид
	ClientSeed string
}

// PreviewRequest — спин предпросмотра для мастера настройки: без баланса,
// без персистентности, с явным сидом для воспроизводимости
type PreviewRequest struct {
	GameID string
	Bet    int
	Seed   string
	// Конфигурация прямо из мастера; если nil — берётся сохранённая по GameID
	Config *engine.GameConfig
}

// SpinResult — итог спина с учётом баланса и фриспинов
type SpinResult struct {
	RoundID string
	Seed    string

	Round *engine.RoundResult

	// Выплата после предела выигрыша
	TotalPayout      int
	Balance          int
	AwardedFreeSpins int
	FreeSpinCount    int
	InFreeSpin       bool
}

// Round — строка журнала раундов: по паре (конфигурация, сид) раунд
// воспроизводится бит-в-бит, журнал достаточен для аудита
type Round struct {
	ID           string
	UserID       int
	GameID       string
	Seed         string
	Bet          int
	Payout       int
	CascadeCount int
	CreatedAt    time.Time
}

// Data — баланс и фриспины для клиента
type Data struct {
	Balance       int
	FreeSpinCount int
}
