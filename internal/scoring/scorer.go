// Package scoring 计算单部电影的热度与新颖度
package scoring

import (
	"movie_recommend/internal/graph"
)

// Result 单部电影的评分结果
type Result struct {
	Popularity  int     // 看过该电影的同伴数量
	MeanOverlap float64 // 有重叠的同伴平均看过多少部相似电影
	Novelty     float64 // 1 / MeanOverlap
	ClusterSize int     // 相似簇大小，不含电影本身
}

// Ratio 排序依据 popularity / novelty，新颖度为 0 时返回 0
func (r Result) Ratio() float64 {
	if r.Novelty == 0 {
		return 0
	}
	return float64(r.Popularity) / r.Novelty
}

// Histories 将同伴的观看列表转换为集合
func Histories(peers [][]string) []graph.Set {
	result := make([]graph.Set, len(peers))
	for i, seen := range peers {
		result[i] = graph.NewSet(seen...)
	}
	return result
}

// Score 计算 item 的热度和新颖度
// 没人看过，或者没有同伴看过它的相似电影时，返回零值 Result
func Score(item string, peers []graph.Set, g *graph.Graph) (Result, error) {
	popularity := 0
	for _, seen := range peers {
		if seen.Contains(item) {
			popularity++
		}
	}
	if popularity == 0 {
		return Result{}, nil
	}

	similar, err := g.Cluster(item)
	if err != nil {
		return Result{}, err
	}
	delete(similar, item)

	total, counted := 0, 0
	for _, seen := range peers {
		overlap := seen.Overlap(similar)
		if overlap > 0 {
			total += overlap
			counted++
		}
	}
	if counted == 0 {
		return Result{}, nil
	}

	mean := float64(total) / float64(counted)
	return Result{
		Popularity:  popularity,
		MeanOverlap: mean,
		Novelty:     1 / mean,
		ClusterSize: len(similar),
	}, nil
}
