package ticket

import "slotforge_backend/internal/api/dto/round"

type PlayRequest struct {
	GameID     string `json:"game_id"` // ID билета из реестра
	Bet        int    `json:"bet"`     // Цена билета
	ClientSeed string `json:"client_seed,omitempty"`
}

type PlayResponse struct {
	RoundID string `json:"round_id"`
	Seed    string `json:"seed"`

	TierID       string           `json:"tier_id"`
	Win          bool             `json:"win"`
	Reveal       [][]string       `json:"reveal"` // Символы карточки (ID)
	WinPositions []round.Position `json:"win_positions,omitempty"`
	Multiplier   int              `json:"multiplier"`

	TotalPayout   int `json:"total_payout"`
	BetMultiplier int `json:"bet_multiplier"` // Выигрыш в сотых долях ставки
	Balance       int `json:"balance"`
}
