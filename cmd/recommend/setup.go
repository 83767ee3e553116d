package main

import (
	"fmt"

	"movie_recommend/internal/catalog"
	"movie_recommend/internal/history"
	"movie_recommend/internal/logger"
	"movie_recommend/internal/recommend"
	"movie_recommend/internal/workflow"
)

// newRecommender 根据配置创建 Recommender
func newRecommender(cfg *AppConfig) (*recommend.Recommender, error) {
	registry := recommend.RegisterNodes(workflow.NewRegistry())

	if cfg.Paths.Pipelines == "" {
		engine, err := workflow.NewEngine(recommend.DefaultPipelines(), registry)
		if err != nil {
			return nil, err
		}
		return recommend.New(engine, cfg.Recommend.Scene), nil
	}

	engine, err := workflow.LoadEngine(cfg.Paths.Pipelines, registry)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded pipelines %v from %s", engine.Scenes(), cfg.Paths.Pipelines)
	return recommend.New(engine, cfg.Recommend.Scene), nil
}

// loadInput 读取数据集，可选地用 JSONL 历史替换同伴列表
func loadInput(cfg *AppConfig) (workflow.Input, error) {
	ds := catalog.Example()
	if cfg.Paths.Dataset != "" {
		loaded, err := catalog.Load(cfg.Paths.Dataset)
		if err != nil {
			return workflow.Input{}, err
		}
		ds = loaded
	}

	in, err := ds.Input()
	if err != nil {
		return workflow.Input{}, err
	}

	if cfg.Paths.History != "" {
		store, err := history.NewFileStore(cfg.Paths.History)
		if err != nil {
			return workflow.Input{}, err
		}
		if err := applyHistory(&in, store, cfg.Recommend.LookbackDays); err != nil {
			return workflow.Input{}, err
		}
		logger.Debug("Loaded %d peers from %s", len(in.Peers), cfg.Paths.History)
	}

	return in, nil
}

// applyHistory 用历史来源中的同伴列表替换数据集中的 peers
func applyHistory(in *workflow.Input, store history.Store, lookbackDays int) error {
	peers, err := store.Histories(lookbackDays)
	if err != nil {
		return fmt.Errorf("failed to read peer history: %w", err)
	}
	in.Peers = peers
	return nil
}
