package env

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validYAML = `
games:
  - id: demo-lines
    rows: 3
    cols: 3
    mechanism: lines
    symbols:
      - { id: A, weight: 10 }
      - { id: B, weight: 10 }
    lines:
      - [0, 0, 0]
      - [1, 1, 1]
    paytable:
      A: { 3: 100 }
  - id: demo-cluster
    rows: 5
    cols: 5
    mechanism: cluster
    min_cluster: 4
    symbols:
      - { id: A, weight: 10 }
    cluster_pay:
      A: 5
tickets:
  - id: demo-ticket
    category: match
    tiers:
      - { id: lose, payout: 0, weight: 9 }
      - { id: win, payout: 500, weight: 1, win: true }
`

func TestLoadValidConfig(t *testing.T) {
	cfg, err := NewGamesConfigFromYAML(writeYAML(t, validYAML))
	if err != nil {
		t.Fatalf("NewGamesConfigFromYAML: %v", err)
	}

	if _, ok := cfg.Game("demo-lines"); !ok {
		t.Error("игра demo-lines не загружена")
	}
	if _, ok := cfg.Game("demo-cluster"); !ok {
		t.Error("игра demo-cluster не загружена")
	}
	if _, ok := cfg.Game("nope"); ok {
		t.Error("найдена несуществующая игра")
	}
	if _, ok := cfg.Ticket("demo-ticket"); !ok {
		t.Error("билет demo-ticket не загружен")
	}

	// Порядок реестра совпадает с порядком файла
	games := cfg.Games()
	if len(games) != 2 || games[0].ID != "demo-lines" || games[1].ID != "demo-cluster" {
		t.Errorf("Games() = %v", games)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{
			"линия не той длины",
			`
games:
  - id: bad
    rows: 3
    cols: 3
    mechanism: lines
    symbols: [{ id: A, weight: 1 }]
    lines: [[0, 0]]
`,
		},
		{
			"ряд линии вне поля",
			`
games:
  - id: bad
    rows: 3
    cols: 3
    mechanism: lines
    symbols: [{ id: A, weight: 1 }]
    lines: [[0, 3, 0]]
`,
		},
		{
			"неизвестная механика",
			`
games:
  - id: bad
    rows: 3
    cols: 3
    mechanism: wheel
    symbols: [{ id: A, weight: 1 }]
`,
		},
		{
			"кластер меньше двух",
			`
games:
  - id: bad
    rows: 3
    cols: 3
    mechanism: cluster
    min_cluster: 1
    symbols: [{ id: A, weight: 1 }]
`,
		},
		{
			"отрицательный вес символа",
			`
games:
  - id: bad
    rows: 3
    cols: 3
    mechanism: ways
    symbols: [{ id: A, weight: -1 }]
`,
		},
		{
			"билет с пустой таблицей тиров",
			`
tickets:
  - id: bad
    category: match
    tiers: []
`,
		},
		{
			"вероятности не сходятся к единице",
			`
tickets:
  - id: bad
    category: bonus
    tiers:
      - { id: lose, payout: 0, probability: 0.5 }
      - { id: win, payout: 100, probability: 0.2, win: true }
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGamesConfigFromYAML(writeYAML(t, tc.yaml)); err == nil {
				t.Error("ожидалась ошибка валидации")
			}
		})
	}
}
