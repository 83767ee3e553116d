package nodes

import (
	"fmt"

	"movie_recommend/internal/graph"
	"movie_recommend/internal/model"
	"movie_recommend/internal/scoring"
	"movie_recommend/internal/workflow"
)

// CatalogRecallNode 以整个电影目录作为候选集，同时构建相似度图
type CatalogRecallNode struct {
	name string
}

func NewCatalogRecallNode(cfg workflow.NodeConfig) (workflow.Node, error) {
	return &CatalogRecallNode{name: cfg.Name}, nil
}

func (n *CatalogRecallNode) Name() string { return n.name }
func (n *CatalogRecallNode) Type() string { return "recall" }

func (n *CatalogRecallNode) Execute(ctx *workflow.Context) error {
	in := ctx.Input

	// 图只构建一次，之后只读
	g := graph.Build(in.Movies, in.Similarities)
	ctx.SetGraph(g, scoring.Histories(in.Peers))

	// 保持目录顺序，排序阶段平分时靠它决定先后
	items := make([]*model.Item, 0, len(in.Movies))
	for _, movie := range in.Movies {
		items = append(items, &model.Item{
			ID:     movie,
			Name:   movie,
			Source: n.name,
		})
	}

	ctx.AddCandidates(items)
	ctx.AddLog(fmt.Sprintf("Catalog recall (%s) returned %d items, graph has %d nodes", n.name, len(items), g.Len()))
	return nil
}
