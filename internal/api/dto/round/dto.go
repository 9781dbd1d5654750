package round

type SpinRequest struct {
	GameID     string `json:"game_id"`               // ID игры из реестра
	Bet        int    `json:"bet"`                   // Размер ставки (положительное целое, >0)
	ClientSeed string `json:"client_seed,omitempty"` // Клиентская часть сида (provably fair)
}

type PreviewRequest struct {
	GameID string `json:"game_id,omitempty"`
	Bet    int    `json:"bet"`
	Seed   string `json:"seed,omitempty"` // Явный сид; пустой — сгенерировать
	// Конфигурация из мастера настройки в YAML; пустая — сохранённая по GameID
	ConfigYAML string `json:"config_yaml,omitempty"`
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Win struct {
	Kind      string     `json:"kind"`   // line | way | cluster | scatter
	Symbol    string     `json:"symbol"` // ID символа
	Count     int        `json:"count"`
	Payout    int        `json:"payout"`
	Positions []Position `json:"positions"`
	Line      int        `json:"line,omitempty"` // Номер линии (с 1)
	Ways      int        `json:"ways,omitempty"` // Число способов
}

type Drop struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Symbol string `json:"symbol"`
}

type CascadeStep struct {
	Wins    []Win  `json:"wins"`
	Dropped []Drop `json:"dropped"`
}

type SpinResponse struct {
	RoundID string `json:"round_id,omitempty"`
	Seed    string `json:"seed"`

	Board        [][]string    `json:"board"` // Символы (ID), ряды сверху вниз
	Wins         []Win         `json:"wins"`
	CascadeSteps []CascadeStep `json:"cascade_steps,omitempty"`

	TotalPayout      int      `json:"total_payout"`       // Выплата после предела выигрыша
	BetMultiplier    int      `json:"bet_multiplier"`     // Выигрыш в сотых долях ставки
	CascadeCount     int      `json:"cascade_count"`
	ScatterCount     int      `json:"scatter_count"`
	AwardedFreeSpins int      `json:"awarded_free_spins"` // Начислено фриспинов в этом спине
	Features         []string `json:"features,omitempty"`

	Balance       int  `json:"balance"`         // Баланс после
	FreeSpinCount int  `json:"free_spin_count"` // Остаток фриспинов
	InFreeSpin    bool `json:"in_free_spin"`
}

type DepositRequest struct {
	Amount int `json:"amount"` // Сумма депозита
}

type DepositResponse struct {
	Balance int `json:"balance"`
}

type DataResponse struct {
	Balance       int `json:"balance"`         // Баланс пользователя
	FreeSpinCount int `json:"free_spin_count"` // Остаток фриспинов
}

type HistoryItem struct {
	RoundID      string `json:"round_id"`
	GameID       string `json:"game_id"`
	Seed         string `json:"seed"`
	Bet          int    `json:"bet"`
	Payout       int    `json:"payout"`
	CascadeCount int    `json:"cascade_count"`
	CreatedAt    string `json:"created_at"` // RFC 3339
}
