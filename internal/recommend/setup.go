package recommend

import (
	"movie_recommend/internal/nodes"
	"movie_recommend/internal/workflow"
)

// DefaultScene 默认推荐场景
const DefaultScene = "movie"

// RegisterNodes 注册所有可用的 Workflow 节点
func RegisterNodes(registry *workflow.Registry) *workflow.Registry {
	registry.Register("recall_catalog", nodes.NewCatalogRecallNode)
	registry.Register("score_novelty", nodes.NewNoveltyScoreNode)
	registry.Register("filter_novelty", nodes.NewNoveltyFilterNode)
	registry.Register("filter_seen", nodes.NewSeenFilterNode)
	registry.Register("rank_score", nodes.NewScoreRankNode)
	return registry
}

// DefaultPipelines 内置的 pipeline 配置，没有配置文件时使用
func DefaultPipelines() workflow.GlobalConfig {
	return workflow.GlobalConfig{
		Pipelines: map[string]workflow.PipelineConfig{
			DefaultScene: {
				Description: "popularity x novelty over the similarity graph",
				Nodes: []workflow.NodeConfig{
					{Name: "catalog", Type: "recall_catalog"},
					{Name: "novelty", Type: "score_novelty"},
					{Name: "drop_unscored", Type: "filter_novelty"},
					{Name: "by_ratio", Type: "rank_score", Config: map[string]interface{}{"order": "desc"}},
				},
			},
		},
	}
}
