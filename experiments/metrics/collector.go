package metrics

import (
	"time"
)

type SearchMetric struct {
	Depth     int // Deepest completed search depth
	Duration  time.Duration
	Visited   int // Interior nodes expanded by the search
	Evaluated int // Heuristic evaluations
	Cutoffs   int // Alpha-beta prunes
	Fallback  bool
	Value     float64 // Search value of the chosen action
}

type MoveMetric struct {
	Step   int
	Player int // Seat 0 or 1
	Action string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         string // Player name, "" on a tie
	Scores         [2]int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	SetDepth(depth int)
	AddVisit()
	AddEvaluation()
	AddCutoff()
	SetFallback()
	Complete() SearchMetric
}

// The search is single threaded, so the collector needs no atomics.
type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.metric = SearchMetric{Depth: depth}
}

func (m *collector) SetDepth(depth int) {
	m.metric.Depth = depth
}

func (m *collector) AddVisit() {
	m.metric.Visited++
}

func (m *collector) AddEvaluation() {
	m.metric.Evaluated++
}

func (m *collector) AddCutoff() {
	m.metric.Cutoffs++
}

func (m *collector) SetFallback() {
	m.metric.Fallback = true
}

func (m *collector) Complete() SearchMetric {
	metric := m.metric
	metric.Duration = time.Since(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) SetDepth(depth int)     {}
func (m *dummyCollector) AddVisit()              {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) SetFallback()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
