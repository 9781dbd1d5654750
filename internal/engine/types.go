package engine

// Symbol — непрозрачный идентификатор символа. Движок сравнивает символы
// только на равенство; смысл задаётся конфигурацией (флаги wild/scatter)
type Symbol string

// Пустая ячейка после удаления выигрыша
const EmptySymbol = Symbol("")

type SymbolDef struct {
	ID      Symbol `yaml:"id"`
	Weight  int    `yaml:"weight"`
	Wild    bool   `yaml:"wild"`
	Scatter bool   `yaml:"scatter"`
}

// Grid — матрица rows x cols, (0,0) — левый верхний угол
type Grid [][]Symbol

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone возвращает глубокую копию поля
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = make([]Symbol, len(g[r]))
		copy(out[r], g[r])
	}
	return out
}

type Position struct {
	Row int
	Col int
}

// Mechanism — закрытый набор механик выплат. Ровно одна активна в конфигурации
type Mechanism string

const (
	MechanismLines   Mechanism = "lines"
	MechanismWays    Mechanism = "ways"
	MechanismCluster Mechanism = "cluster"
)

// LineDefinition — номер ряда на каждом барабане. Таблица линий — данные
// конфигурации, а не константа движка
type LineDefinition []int

type CombinationKind string

const (
	KindLine    CombinationKind = "line"
	KindWay     CombinationKind = "way"
	KindCluster CombinationKind = "cluster"
	KindScatter CombinationKind = "scatter"
)

type WinningCombination struct {
	Symbol    Symbol
	Count     int
	Payout    int // В минимальных денежных единицах
	Positions []Position
	Kind      CombinationKind
	Line      int // Номер линии (с 1), только для Kind == line
	Ways      int // Число способов, только для Kind == way
}

// Paytable — символ -> длина серии -> выплата в процентах от ставки
type Paytable map[Symbol]map[int]int

// GameConfig — неизменяемая конфигурация игры. Владелец — вызывающая
// сторона (мастер настройки), движок её никогда не модифицирует
type GameConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	Symbols   []SymbolDef `yaml:"symbols"`
	Mechanism Mechanism   `yaml:"mechanism"`

	// Только для механики lines
	Lines []LineDefinition `yaml:"lines"`

	// Только для механики cluster
	MinCluster int `yaml:"min_cluster"`

	// Выплаты для lines/ways: символ -> длина -> процент ставки
	Paytable Paytable `yaml:"paytable"`
	// Выплаты для cluster: символ -> базовый процент за ячейку
	ClusterPay map[Symbol]int `yaml:"cluster_pay"`

	// Каскады (tumbling reels). Для кластерных игр по умолчанию включены
	Cascades    *bool `yaml:"cascades"`
	MaxCascades int   `yaml:"max_cascades"`

	// Скаттеры: количество -> процент ставки / количество фриспинов
	ScatterPay map[int]int `yaml:"scatter_pay"`
	FreeSpins  map[int]int `yaml:"free_spins"`

	// Предел выигрыша в кратности ставки (0 — без предела)
	MaxWinXBet int `yaml:"max_win_x_bet"`
}

// CascadesEnabled — включены ли каскады. Открытый вопрос исходника решён
// явным флагом: по умолчанию каскадятся только кластерные игры
func (c *GameConfig) CascadesEnabled() bool {
	if c.Cascades != nil {
		return *c.Cascades
	}
	return c.Mechanism == MechanismCluster
}

// DropIn — новый символ, упавший на поле после каскада
type DropIn struct {
	Position
	Symbol Symbol
}

// CascadeStep — один шаг каскада для слоя отображения
type CascadeStep struct {
	Combinations []WinningCombination
	Dropped      []DropIn
}

// RoundResult — итог одного раунда. Инвариант:
// TotalPayout == сумма Payout по всем Combinations
type RoundResult struct {
	Grid         Grid
	Combinations []WinningCombination
	CascadeSteps []CascadeStep
	TotalPayout  int
	// Выигрыш в сотых долях ставки
	BetMultiplier     int
	CascadeCount      int
	ScatterCount      int
	AwardedFreeSpins  int
	FeaturesTriggered []string
}

// Диагностические флаги в FeaturesTriggered
const (
	FeatureCascadeLimit = "cascade_limit"
	FeatureFreeSpins    = "free_spins"
	FeatureDefaultSet   = "default_symbol_set"
)
