package searcher

import (
	"fishing/experiments/metrics"
	"fishing/game"
	"fishing/meta"
	"fishing/utils"
	"math"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

// Option configures a Selector.
type Option func(s *Selector)

// ActionScore is the search value of one root action.
type ActionScore struct {
	Action game.Action
	Value  float64
}

// Decision is the outcome of one root search.
type Decision struct {
	Action   game.Action
	Value    float64 // -Inf on a fallback
	Scores   []ActionScore
	Fallback bool // No legal action: Action was drawn at random
	Metric   metrics.SearchMetric
}

// Selector picks player 0's next action by alpha-beta search below each
// legal root action.
type Selector struct {
	depth     int
	deepening bool
	evaluate  game.Evaluate
	random    utils.Random
	expander  func() game.Expander
	metrics   metrics.Collector
}

// WithDepth sets the plies searched below each root action. Negative values are ignored.
func WithDepth(depth int) Option {
	return func(s *Selector) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Selector) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithRandom sets the source of the fallback action.
func WithRandom(random utils.Random) Option {
	return func(s *Selector) {
		if random != nil {
			s.random = random
		}
	}
}

// WithIterativeDeepening searches depth 1..N, ordering root actions by the
// previous pass so that ties go to the action that was best sooner.
func WithIterativeDeepening(enabled bool) Option {
	return func(s *Selector) {
		s.deepening = enabled
	}
}

func WithMetrics() Option {
	return func(s *Selector) {
		s.metrics = metrics.NewCollector()
	}
}

// WithExpander replaces the expander factory. A fresh expander is built for
// every decision.
func WithExpander(factory func() game.Expander) Option {
	return func(s *Selector) {
		if factory != nil {
			s.expander = factory
		}
	}
}

func NewSelector(options ...Option) *Selector {
	s := &Selector{ // Default values
		depth:     meta.SEARCH_DEPTH,
		deepening: true,
		evaluate:  game.EvaluateOpportunity,
		random:    utils.NewRandom(uint64(time.Now().UnixNano())),
		expander:  func() game.Expander { return game.NewNodeExpander() },
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Selector) Depth() int {
	return s.depth
}

// ChooseMove returns the action maximising player 0's minimax value.
func (s *Selector) ChooseMove(state game.State) game.Action {
	return s.Analyze(state).Action
}

// FindMove returns the chosen action with the search metrics of the decision.
func (s *Selector) FindMove(state game.State) (game.Action, metrics.SearchMetric) {
	decision := s.Analyze(state)
	return decision.Action, decision.Metric
}

// Analyze searches every legal root action and reports their values.
func (s *Selector) Analyze(state game.State) Decision {
	s.metrics.Start(s.depth)
	tree := search{expander: s.expander(), evaluate: s.evaluate, metrics: s.metrics}

	root := game.NewNode(state, 0)
	children := tree.expander.Expand(root)
	if len(children) == 0 {
		action := game.Actions[s.random.Intn(len(game.Actions))]
		log.Warn().Msgf("No legal action at the root, falling back to random action %s", action)
		s.metrics.SetFallback()
		metric := s.metrics.Complete()
		metric.Value = math.Inf(-1)
		return Decision{
			Action:   action,
			Value:    metric.Value,
			Fallback: true,
			Metric:   metric,
		}
	}

	first := s.depth
	if s.deepening && s.depth > 1 {
		first = 1
	}

	order := slices.Clone(children)
	var best *game.Node
	var values map[*game.Node]float64
	for depth := first; depth <= s.depth; depth++ {
		if values != nil {
			// Stable, so equal values keep the previous pass's order
			slices.SortStableFunc(order, func(a, b *game.Node) int {
				switch va, vb := values[a], values[b]; {
				case va > vb:
					return -1
				case va < vb:
					return 1
				}
				return 0
			})
		}

		values = make(map[*game.Node]float64, len(order))
		best = nil
		bestValue := math.Inf(-1)
		for _, child := range order {
			v := tree.alphaBeta(child, 1, math.Inf(-1), math.Inf(1), depth)
			values[child] = v
			if best == nil || v > bestValue {
				best, bestValue = child, v
			}
		}
		s.metrics.SetDepth(depth)
	}

	scores := make([]ActionScore, 0, len(children))
	for _, child := range children {
		scores = append(scores, ActionScore{Action: child.Move, Value: values[child]})
	}
	metric := s.metrics.Complete()
	metric.Value = values[best]
	return Decision{
		Action: best.Move,
		Value:  metric.Value,
		Scores: scores,
		Metric: metric,
	}
}
