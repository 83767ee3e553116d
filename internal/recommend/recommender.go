// Package recommend 根据同伴的观看历史和电影相似关系推荐一部电影
package recommend

import (
	"context"
	"fmt"

	"movie_recommend/internal/graph"
	"movie_recommend/internal/model"
	"movie_recommend/internal/workflow"
)

// NoRecommendation 没有可推荐电影时的返回值，不是错误
const NoRecommendation = "No movie to recommend"

// Recommender 在指定场景的 pipeline 上执行推荐
type Recommender struct {
	engine *workflow.Engine
	scene  string
}

// New 创建 Recommender
func New(engine *workflow.Engine, scene string) *Recommender {
	if scene == "" {
		scene = DefaultScene
	}
	return &Recommender{
		engine: engine,
		scene:  scene,
	}
}

// NewDefault 使用内置 pipeline 创建 Recommender
func NewDefault() (*Recommender, error) {
	engine, err := workflow.NewEngine(DefaultPipelines(), RegisterNodes(workflow.NewRegistry()))
	if err != nil {
		return nil, err
	}
	return New(engine, DefaultScene), nil
}

// Rank 执行 pipeline，返回排好序的候选
func (r *Recommender) Rank(ctx context.Context, in workflow.Input) ([]*model.Item, error) {
	wfCtx := workflow.NewContext(ctx, in)
	if err := r.engine.Run(wfCtx, r.scene); err != nil {
		return nil, fmt.Errorf("run %s: %w", wfCtx.RunID, err)
	}
	return wfCtx.GetCandidates(), nil
}

// Recommend 返回排名第一的电影，没有候选时返回 NoRecommendation
func (r *Recommender) Recommend(ctx context.Context, in workflow.Input) (string, error) {
	ranked, err := r.Rank(ctx, in)
	if err != nil {
		return "", err
	}
	return Top(ranked), nil
}

// Top 返回排好序的候选中的第一部电影，为空时返回 NoRecommendation
func Top(ranked []*model.Item) string {
	if len(ranked) == 0 {
		return NoRecommendation
	}
	return ranked[0].Name
}

// Recommend 用内置 pipeline 为一组输入推荐电影
func Recommend(movies []string, similarities []graph.Pair, peers [][]string) (string, error) {
	r, err := NewDefault()
	if err != nil {
		return "", err
	}
	return r.Recommend(context.Background(), workflow.Input{
		Movies:       movies,
		Similarities: similarities,
		Peers:        peers,
	})
}
