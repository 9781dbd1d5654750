package round

import (
	"context"
	"fmt"

	"slotforge_backend/internal/engine"
	"slotforge_backend/internal/model"
)

// Preview — спин предпросмотра для мастера настройки: конфигурация берётся
// прямо из запроса, баланс и журнал не трогаются
func (s *serv) Preview(ctx context.Context, req model.PreviewRequest) (*model.SpinResult, error) {
	if req.Bet <= 0 {
		return nil, ErrInvalidBet
	}

	cfg := req.Config
	if cfg == nil {
		stored, ok := s.gamesCfg.Game(req.GameID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownGame, req.GameID)
		}
		cfg = stored
	}

	seed := req.Seed
	if seed == "" {
		generated, err := newSeed("")
		if err != nil {
			return nil, err
		}
		seed = generated
	}

	round := engine.Resolve(cfg, req.Bet, seed)

	return &model.SpinResult{
		Seed:             seed,
		Round:            round,
		TotalPayout:      engine.ApplyMaxPayout(round.TotalPayout, req.Bet, cfg.MaxWinXBet),
		AwardedFreeSpins: round.AwardedFreeSpins,
	}, nil
}
