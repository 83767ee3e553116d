package nodes

import (
	"fmt"

	"movie_recommend/internal/model"
	"movie_recommend/internal/workflow"
)

// NoveltyFilterNode 去掉新颖度为 0 的候选
// 没人看过的、或者没有同伴看过相似电影的，都无法评估
type NoveltyFilterNode struct {
	name string
}

func NewNoveltyFilterNode(cfg workflow.NodeConfig) (workflow.Node, error) {
	return &NoveltyFilterNode{name: cfg.Name}, nil
}

func (n *NoveltyFilterNode) Name() string { return n.name }
func (n *NoveltyFilterNode) Type() string { return "filter" }

func (n *NoveltyFilterNode) Execute(ctx *workflow.Context) error {
	candidates := ctx.GetCandidates()
	if len(candidates) == 0 {
		return nil
	}

	kept := make([]*model.Item, 0, len(candidates))
	filteredCount := 0
	for _, item := range candidates {
		if item.Novelty == 0 {
			filteredCount++
			continue
		}
		kept = append(kept, item)
	}

	ctx.UpdateCandidates(kept)
	ctx.AddLog(fmt.Sprintf("Novelty filter (%s) removed %d items, kept %d", n.name, filteredCount, len(kept)))
	return nil
}
