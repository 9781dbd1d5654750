package sim

type RunRequest struct {
	GameID   string `json:"game_id"`
	Rounds   int    `json:"rounds"`
	Workers  int    `json:"workers,omitempty"`   // 0 — по числу CPU
	Bet      int    `json:"bet"`
	BaseSeed string `json:"base_seed,omitempty"` // Пустой — "sim"
}

type RunResponse struct {
	GameID   string `json:"game_id"`
	Rounds   int    `json:"rounds"`
	Bet      int    `json:"bet"`
	BaseSeed string `json:"base_seed"`

	TotalBet    int64   `json:"total_bet"`
	TotalPayout int64   `json:"total_payout"`
	RTP         float64 `json:"rtp"`          // В процентах
	HitRate     float64 `json:"hit_rate"`     // Доля выигрышных раундов
	Variance    float64 `json:"variance"`     // Дисперсия в кратности ставки
	AvgCascades float64 `json:"avg_cascades"`
	MaxPayout   int     `json:"max_payout"`

	ElapsedMS int64 `json:"elapsed_ms"`
}

type StatsResponse struct {
	TotalSpins  int64   `json:"total_spins"`
	TotalBet    int64   `json:"total_bet"`
	TotalPayout int64   `json:"total_payout"`
	RTP         float64 `json:"rtp"`
}
