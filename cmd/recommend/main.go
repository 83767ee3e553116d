package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"movie_recommend/internal/logger"
	"movie_recommend/internal/recommend"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		logger.Fatal("recommend failed: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	// 1. 配置与日志
	cfg, err := InitAppConfig(args)
	if err != nil {
		return err
	}
	logger.Init(logger.Config{Format: cfg.Log.Format})
	logger.SetDebug(cfg.Log.Debug)

	// 2. 输入数据
	in, err := loadInput(cfg)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}

	// 3. Pipeline
	r, err := newRecommender(cfg)
	if err != nil {
		return fmt.Errorf("failed to init recommender: %w", err)
	}

	// 4. 推荐
	if !cfg.Recommend.Explain {
		movie, err := r.Recommend(ctx, in)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, movie)
		return err
	}

	ranked, err := r.Rank(ctx, in)
	if err != nil {
		return err
	}
	for i, item := range ranked {
		l := logger.With(map[string]interface{}{
			"rank":         i + 1,
			"popularity":   item.Popularity,
			"mean_overlap": item.MeanOverlap,
			"novelty":      item.Novelty,
			"score":        item.Score,
			"cluster_size": item.MetaData["cluster_size"],
		})
		l.Info().Msg(item.Name)
	}
	_, err = fmt.Fprintln(stdout, recommend.Top(ranked))
	return err
}
