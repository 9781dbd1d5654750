package round

import (
	"context"
	"errors"
	"fmt"

	"slotforge_backend/internal/engine"
	"slotforge_backend/internal/model"
)

var ErrReplayMismatch = errors.New("replay payout mismatch")

// Replay восстанавливает раунд из журнала: по сохранённому сиду резолвер
// воспроизводит раунд бит-в-бит. Расхождение выплаты означает, что
// конфигурация игры менялась после записи
func (s *serv) Replay(ctx context.Context, roundID string) (*model.SpinResult, error) {
	stored, err := s.roundRepo.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}

	cfg, ok := s.gamesCfg.Game(stored.GameID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGame, stored.GameID)
	}

	round := engine.Resolve(cfg, stored.Bet, stored.Seed)
	payout := engine.ApplyMaxPayout(round.TotalPayout, stored.Bet, cfg.MaxWinXBet)
	if payout != stored.Payout {
		return nil, fmt.Errorf("%w: stored %d, resolved %d", ErrReplayMismatch, stored.Payout, payout)
	}

	return &model.SpinResult{
		RoundID:     stored.ID,
		Seed:        stored.Seed,
		Round:       round,
		TotalPayout: payout,
	}, nil
}
