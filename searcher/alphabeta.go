package searcher

import (
	"fishing/experiments/metrics"
	"fishing/game"
	"math"
)

// AlphaBeta returns the minimax value of node searched depth plies deep with
// alpha-beta pruning. Player 0 maximises and player 1 minimises. Leaves and
// nodes at depth 0 are scored by evaluate.
func AlphaBeta(expander game.Expander, evaluate game.Evaluate, node *game.Node, player int, alpha, beta float64, depth int) float64 {
	s := search{expander: expander, evaluate: evaluate, metrics: metrics.NewDummyCollector()}
	return s.alphaBeta(node, player, alpha, beta, depth)
}

// Minimax is AlphaBeta without pruning.
func Minimax(expander game.Expander, evaluate game.Evaluate, node *game.Node, player int, depth int) float64 {
	s := search{expander: expander, evaluate: evaluate, metrics: metrics.NewDummyCollector()}
	return s.minimax(node, player, depth)
}

type search struct {
	expander game.Expander
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func (s *search) alphaBeta(node *game.Node, player int, alpha, beta float64, depth int) float64 {
	children := s.expander.Expand(node)
	if len(children) == 0 || depth == 0 {
		s.metrics.AddEvaluation()
		return s.evaluate(node.State)
	}
	s.metrics.AddVisit()

	if player == 0 {
		v := math.Inf(-1)
		for _, child := range children {
			v = math.Max(v, s.alphaBeta(child, 1, alpha, beta, depth-1))
			alpha = math.Max(alpha, v)
			if alpha >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
		return v
	}

	v := math.Inf(1)
	for _, child := range children {
		v = math.Min(v, s.alphaBeta(child, 0, alpha, beta, depth-1))
		beta = math.Min(beta, v)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return v
}

func (s *search) minimax(node *game.Node, player int, depth int) float64 {
	children := s.expander.Expand(node)
	if len(children) == 0 || depth == 0 {
		s.metrics.AddEvaluation()
		return s.evaluate(node.State)
	}
	s.metrics.AddVisit()

	if player == 0 {
		v := math.Inf(-1)
		for _, child := range children {
			v = math.Max(v, s.minimax(child, 1, depth-1))
		}
		return v
	}

	v := math.Inf(1)
	for _, child := range children {
		v = math.Min(v, s.minimax(child, 0, depth-1))
	}
	return v
}
