package round

import (
	"context"
	"errors"

	"slotforge_backend/internal/middleware"
	"slotforge_backend/internal/model"
)

// Deposit пополняет баланс и возвращает новый остаток
func (s *serv) Deposit(ctx context.Context, amount int) (int, error) {
	if amount <= 0 {
		return 0, errors.New("amount must be positive")
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, errors.New("no user in context")
	}

	var balance int
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.userRepo.GetBalance(ctx, userID)
		if err != nil {
			return err
		}
		balance = current + amount
		return s.userRepo.UpdateBalance(ctx, userID, balance)
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}

// CheckData — баланс и фриспины пользователя для клиента
func (s *serv) CheckData(ctx context.Context, gameID string) (*model.Data, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("no user in context")
	}

	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	freeSpins := 0
	if gameID != "" {
		freeSpins, err = s.stateRepo.GetFreeSpinCount(ctx, userID, gameID)
		if err != nil {
			return nil, err
		}
	}

	return &model.Data{
		Balance:       balance,
		FreeSpinCount: freeSpins,
	}, nil
}

// History — последние раунды пользователя из журнала
func (s *serv) History(ctx context.Context, limit int) ([]model.Round, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("no user in context")
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	return s.roundRepo.ListRounds(ctx, userID, limit)
}
