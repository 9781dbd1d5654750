package service

import (
	"context"

	"slotforge_backend/internal/model"
)

type RoundService interface {
	Spin(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error)
	// Preview — спин предпросмотра для мастера настройки: без баланса и журнала
	Preview(ctx context.Context, req model.PreviewRequest) (*model.SpinResult, error)
	// Replay восстанавливает раунд из журнала по сиду
	Replay(ctx context.Context, roundID string) (*model.SpinResult, error)
	Deposit(ctx context.Context, amount int) (int, error)
	CheckData(ctx context.Context, gameID string) (*model.Data, error)
	History(ctx context.Context, limit int) ([]model.Round, error)
}

type TicketService interface {
	Play(ctx context.Context, req model.TicketRequest) (*model.TicketResult, error)
}

type SimService interface {
	// Run гоняет чистый резолвер пакетом для настоящей проверки RTP
	Run(ctx context.Context, req model.SimRequest) (*model.SimReport, error)
	Stats() model.SimSnapshot
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
