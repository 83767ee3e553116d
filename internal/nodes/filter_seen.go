package nodes

import (
	"fmt"

	"movie_recommend/internal/graph"
	"movie_recommend/internal/model"
	"movie_recommend/internal/workflow"
)

// SeenFilterNode 去掉用户自己已经看过的电影
// 只影响候选集，相似度图和同伴历史不变
type SeenFilterNode struct {
	name string
}

func NewSeenFilterNode(cfg workflow.NodeConfig) (workflow.Node, error) {
	return &SeenFilterNode{name: cfg.Name}, nil
}

func (n *SeenFilterNode) Name() string { return n.name }
func (n *SeenFilterNode) Type() string { return "filter" }

func (n *SeenFilterNode) Execute(ctx *workflow.Context) error {
	watched := graph.NewSet(ctx.Input.Watched...)
	candidates := ctx.GetCandidates()
	if len(candidates) == 0 || len(watched) == 0 {
		return nil
	}

	kept := make([]*model.Item, 0, len(candidates))
	for _, item := range candidates {
		if watched.Contains(item.Name) {
			continue
		}
		kept = append(kept, item)
	}

	ctx.UpdateCandidates(kept)
	ctx.AddLog(fmt.Sprintf("Seen filter (%s) removed %d of %d items", n.name, len(candidates)-len(kept), len(candidates)))
	return nil
}
