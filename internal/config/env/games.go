package env

import (
	"fmt"
	"math"
	"os"

	"slotforge_backend/internal/config"
	"slotforge_backend/internal/engine"

	"gopkg.in/yaml.v3"
)

// Допустимое отклонение суммы вероятностей тиров от единицы
const tierProbTolerance = 0.001

type gamesFile struct {
	Games   []*engine.GameConfig   `yaml:"games"`
	Tickets []*engine.TicketConfig `yaml:"tickets"`
}

type gamesConfig struct {
	games   map[string]*engine.GameConfig
	tickets map[string]*engine.TicketConfig
	order   []string
	torder  []string
}

// NewGamesConfigFromYAML загружает и валидирует игровые конфигурации.
// Невалидная таблица отбрасывается на загрузке — движок дальше работает
// в режиме "никогда не падать" и рассчитывает на проверенные данные
func NewGamesConfigFromYAML(path string) (config.GamesConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file gamesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := &gamesConfig{
		games:   make(map[string]*engine.GameConfig),
		tickets: make(map[string]*engine.TicketConfig),
	}

	for _, g := range file.Games {
		if err := validateGame(g); err != nil {
			return nil, fmt.Errorf("game %q: %w", g.ID, err)
		}
		cfg.games[g.ID] = g
		cfg.order = append(cfg.order, g.ID)
	}
	for _, t := range file.Tickets {
		if err := validateTicket(t); err != nil {
			return nil, fmt.Errorf("ticket %q: %w", t.ID, err)
		}
		cfg.tickets[t.ID] = t
		cfg.torder = append(cfg.torder, t.ID)
	}

	return cfg, nil
}

func validateGame(g *engine.GameConfig) error {
	if g.ID == "" {
		return fmt.Errorf("empty id")
	}
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("invalid grid %dx%d", g.Rows, g.Cols)
	}

	switch g.Mechanism {
	case engine.MechanismLines:
		if len(g.Lines) == 0 {
			return fmt.Errorf("lines mechanism without line definitions")
		}
		// Таблица линий — данные конфигурации, границы проверяются здесь,
		// а не в оценщике
		for i, line := range g.Lines {
			if len(line) != g.Cols {
				return fmt.Errorf("line %d: length %d, expected %d", i, len(line), g.Cols)
			}
			for _, row := range line {
				if row < 0 || row >= g.Rows {
					return fmt.Errorf("line %d: row %d out of range", i, row)
				}
			}
		}
	case engine.MechanismWays:
	case engine.MechanismCluster:
		if g.MinCluster < 2 {
			return fmt.Errorf("min_cluster %d", g.MinCluster)
		}
	default:
		return fmt.Errorf("unknown mechanism %q", g.Mechanism)
	}

	for _, s := range g.Symbols {
		if s.Weight < 0 {
			return fmt.Errorf("symbol %s: negative weight", s.ID)
		}
	}
	return nil
}

func validateTicket(t *engine.TicketConfig) error {
	if t.ID == "" {
		return fmt.Errorf("empty id")
	}
	switch t.Category {
	case engine.CategoryMatch, engine.CategoryGrid, engine.CategoryBonus:
	default:
		return fmt.Errorf("unknown category %q", t.Category)
	}
	if len(t.Tiers) == 0 {
		return fmt.Errorf("empty tier table")
	}

	weighted := false
	probSum := 0.0
	for _, tier := range t.Tiers {
		if tier.Weight < 0 {
			return fmt.Errorf("tier %s: negative weight", tier.ID)
		}
		if tier.Weight > 0 {
			weighted = true
		}
		probSum += tier.Probability
	}
	// В вероятностном режиме масса обязана сходиться к единице
	if !weighted && math.Abs(probSum-1) > tierProbTolerance {
		return fmt.Errorf("tier probabilities sum to %v", probSum)
	}
	return nil
}

func (c *gamesConfig) Game(id string) (*engine.GameConfig, bool) {
	g, ok := c.games[id]
	return g, ok
}

func (c *gamesConfig) Ticket(id string) (*engine.TicketConfig, bool) {
	t, ok := c.tickets[id]
	return t, ok
}

func (c *gamesConfig) Games() []*engine.GameConfig {
	out := make([]*engine.GameConfig, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.games[id])
	}
	return out
}

func (c *gamesConfig) Tickets() []*engine.TicketConfig {
	out := make([]*engine.TicketConfig, 0, len(c.torder))
	for _, id := range c.torder {
		out = append(out, c.tickets[id])
	}
	return out
}
