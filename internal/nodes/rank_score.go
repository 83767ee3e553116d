package nodes

import (
	"fmt"
	"sort"

	"movie_recommend/internal/workflow"
)

type ScoreRankNode struct {
	name  string
	limit int
	order string // "desc", "asc"
}

func NewScoreRankNode(cfg workflow.NodeConfig) (workflow.Node, error) {
	limit, _ := cfg.Config["limit"].(float64)
	order, _ := cfg.Config["order"].(string)

	switch order {
	case "":
		order = "desc"
	case "desc", "asc":
	default:
		return nil, fmt.Errorf("rank node '%s': unsupported order %q", cfg.Name, order)
	}

	return &ScoreRankNode{
		name:  cfg.Name,
		limit: int(limit),
		order: order,
	}, nil
}

func (n *ScoreRankNode) Name() string { return n.name }
func (n *ScoreRankNode) Type() string { return "rank" }

func (n *ScoreRankNode) Execute(ctx *workflow.Context) error {
	candidates := ctx.GetCandidates()
	if len(candidates) == 0 {
		return nil
	}

	// 稳定排序：分数相同时目录中靠前的胜出
	switch n.order {
	case "desc":
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score > candidates[j].Score
		})
	case "asc":
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score < candidates[j].Score
		})
	}

	// 截断
	if n.limit > 0 && len(candidates) > n.limit {
		candidates = candidates[:n.limit]
	}

	ctx.UpdateCandidates(candidates)
	ctx.AddLog(fmt.Sprintf("Rank (%s) completed. Strategy: %s, Result count: %d", n.name, n.order, len(candidates)))

	return nil
}
