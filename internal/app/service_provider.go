package app

import (
	"context"

	authAPI "slotforge_backend/internal/api/auth"
	roundAPI "slotforge_backend/internal/api/round"
	simAPI "slotforge_backend/internal/api/sim"
	ticketAPI "slotforge_backend/internal/api/ticket"
	"slotforge_backend/internal/config"
	"slotforge_backend/internal/config/env"
	"slotforge_backend/internal/middleware"
	"slotforge_backend/internal/repository"
	"slotforge_backend/internal/repository/auth_repo"
	"slotforge_backend/internal/repository/game_state_repo"
	"slotforge_backend/internal/repository/round_repo"
	"slotforge_backend/internal/repository/sim_stats_repo"
	"slotforge_backend/internal/repository/user_repo"
	"slotforge_backend/internal/service"
	"slotforge_backend/internal/service/auth"
	"slotforge_backend/internal/service/round"
	"slotforge_backend/internal/service/sim"
	"slotforge_backend/internal/service/ticket"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Games registry
	gamesCfg config.GamesConfig

	// Round bits
	stateRepo repository.GameStateRepository
	roundRepo repository.RoundRepository
	statsRepo repository.SimStatsRepository
	roundServ service.RoundService
	roundHand *roundAPI.Handler

	// Ticket bits
	ticketServ service.TicketService
	ticketHand *ticketAPI.Handler

	// Sim bits
	simServ service.SimService
	simHand *simAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) GamesCfg() config.GamesConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfigFromYAML("games.yaml")
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

func (sp *ServiceProvider) GameStateRepository(ctx context.Context) repository.GameStateRepository {
	if sp.stateRepo == nil {
		sp.stateRepo = game_state_repo.NewGameStateRepository(sp.DBClient(ctx))
	}
	return sp.stateRepo
}

func (sp *ServiceProvider) RoundRepository(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx))
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) SimStatsRepository() repository.SimStatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = sim_stats_repo.NewSimStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) RoundService(ctx context.Context) service.RoundService {
	if sp.roundServ == nil {
		sp.roundServ = round.NewRoundService(
			sp.GamesCfg(),
			sp.GameStateRepository(ctx),
			sp.UserRepo(ctx),
			sp.RoundRepository(ctx),
			sp.SimStatsRepository(),
			sp.TXManager(ctx),
		)
	}
	return sp.roundServ
}

func (sp *ServiceProvider) RoundHandler(ctx context.Context) *roundAPI.Handler {
	if sp.roundHand == nil {
		sp.roundHand = roundAPI.NewHandler(roundAPI.HandlerDeps{Serv: sp.RoundService(ctx)})
	}
	return sp.roundHand
}

func (sp *ServiceProvider) TicketService(ctx context.Context) service.TicketService {
	if sp.ticketServ == nil {
		sp.ticketServ = ticket.NewTicketService(
			sp.GamesCfg(),
			sp.UserRepo(ctx),
			sp.RoundRepository(ctx),
			sp.SimStatsRepository(),
			sp.TXManager(ctx),
		)
	}
	return sp.ticketServ
}

func (sp *ServiceProvider) TicketHandler(ctx context.Context) *ticketAPI.Handler {
	if sp.ticketHand == nil {
		sp.ticketHand = ticketAPI.NewHandler(ticketAPI.HandlerDeps{Serv: sp.TicketService(ctx)})
	}
	return sp.ticketHand
}

func (sp *ServiceProvider) SimService() service.SimService {
	if sp.simServ == nil {
		sp.simServ = sim.NewSimService(sp.GamesCfg(), sp.SimStatsRepository())
	}
	return sp.simServ
}

func (sp *ServiceProvider) SimHandler() *simAPI.Handler {
	if sp.simHand == nil {
		sp.simHand = simAPI.NewHandler(simAPI.HandlerDeps{Serv: sp.SimService()})
	}
	return sp.simHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		authMW := middleware.Auth(sp.JWTCfg().AccessTokenSecretKey())

		// Round endpoints
		roundHandler := sp.RoundHandler(ctx)
		r.Route("/round", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/spin", roundHandler.Spin)
			rr.Post("/preview", roundHandler.Preview)
			rr.Get("/replay/{round_id}", roundHandler.Replay)
			rr.Post("/deposit", roundHandler.Deposit)
			rr.Get("/check-data", roundHandler.CheckData)
			rr.Get("/history", roundHandler.History)
		})

		// Ticket endpoints
		ticketHandler := sp.TicketHandler(ctx)
		r.Route("/ticket", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/play", ticketHandler.Play)
		})

		// Sim endpoints
		simHandler := sp.SimHandler()
		r.Route("/sim", func(rr chi.Router) {
			rr.Use(authMW)
			rr.Post("/run", simHandler.Run)
			rr.Get("/stats", simHandler.Stats)
		})

		sp.router = r
	}

	return sp.router
}
