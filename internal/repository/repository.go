package repository

import (
	"context"

	"slotforge_backend/internal/model"
)

// GameStateRepository — состояние игрока в конкретной игре (фриспины)
type GameStateRepository interface {
	GetFreeSpinCount(ctx context.Context, userID int, gameID string) (int, error)
	UpdateFreeSpinCount(ctx context.Context, userID int, gameID string, count int) error
	EnsureState(ctx context.Context, userID int, gameID string) error
}

// RoundRepository — журнал раундов. Сид и конфигурация восстанавливают
// раунд бит-в-бит, поэтому журнала достаточно для аудита и реплея
type RoundRepository interface {
	SaveRound(ctx context.Context, round *model.Round) error
	GetRound(ctx context.Context, id string) (*model.Round, error)
	ListRounds(ctx context.Context, userID int, limit int) ([]model.Round, error)
}

// SimStatsRepository — накопленная статистика реальных спинов (в памяти)
type SimStatsRepository interface {
	Update(bet, payout int)
	Snapshot() model.SimSnapshot
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	GetBalance(ctx context.Context, id int) (int, error)
	UpdateBalance(ctx context.Context, id int, amount int) error
}
