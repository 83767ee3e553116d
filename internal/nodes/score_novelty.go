package nodes

import (
	"errors"
	"fmt"

	"movie_recommend/internal/scoring"
	"movie_recommend/internal/workflow"
)

var errGraphNotBuilt = errors.New("similarity graph not built, a recall node must run first")

// NoveltyScoreNode 为每个候选计算热度和新颖度
type NoveltyScoreNode struct {
	name string
}

func NewNoveltyScoreNode(cfg workflow.NodeConfig) (workflow.Node, error) {
	return &NoveltyScoreNode{name: cfg.Name}, nil
}

func (n *NoveltyScoreNode) Name() string { return n.name }
func (n *NoveltyScoreNode) Type() string { return "score" }

func (n *NoveltyScoreNode) Execute(ctx *workflow.Context) error {
	g, peers := ctx.Graph()
	if g == nil {
		return errGraphNotBuilt
	}

	candidates := ctx.GetCandidates()
	for _, item := range candidates {
		r, err := scoring.Score(item.Name, peers, g)
		if err != nil {
			return fmt.Errorf("score %q: %w", item.Name, err)
		}
		item.Popularity = r.Popularity
		item.MeanOverlap = r.MeanOverlap
		item.Novelty = r.Novelty
		item.Score = r.Ratio()
		if item.MetaData == nil {
			item.MetaData = make(map[string]interface{})
		}
		item.MetaData["cluster_size"] = r.ClusterSize
	}

	ctx.UpdateCandidates(candidates)
	ctx.AddLog(fmt.Sprintf("Novelty score (%s) scored %d items against %d peers", n.name, len(candidates), len(peers)))
	return nil
}
