package catalog

import (
	"errors"
	"fmt"
	"os"

	"movie_recommend/internal/graph"
	"movie_recommend/internal/model"
	"movie_recommend/internal/workflow"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPair 相似对不是恰好两部电影
var ErrInvalidPair = errors.New("similarity pair must name exactly two movies")

// Dataset 一次推荐的输入数据，对应 YAML 数据文件
type Dataset struct {
	Movies       []string     `yaml:"movies"`
	Similarities [][]string   `yaml:"similarities"`
	Peers        []model.Peer `yaml:"peers"`
	Watched      []string     `yaml:"watched"` // 用户自己看过的电影
}

// Load 从 YAML 文件读取数据集
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	return Parse(data)
}

// Parse 解析 YAML 数据集
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if _, err := ds.Pairs(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Pairs 将相似关系转换为图的边
func (d *Dataset) Pairs() ([]graph.Pair, error) {
	pairs := make([]graph.Pair, 0, len(d.Similarities))
	for i, s := range d.Similarities {
		if len(s) != 2 {
			return nil, fmt.Errorf("similarity #%d %v: %w", i, s, ErrInvalidPair)
		}
		pairs = append(pairs, graph.Pair{A: s[0], B: s[1]})
	}
	return pairs, nil
}

// Histories 按数据文件中的顺序返回同伴观看历史
func (d *Dataset) Histories() [][]string {
	result := make([][]string, len(d.Peers))
	for i, p := range d.Peers {
		result[i] = p.Seen
	}
	return result
}

// Input 转换为 workflow 输入
func (d *Dataset) Input() (workflow.Input, error) {
	pairs, err := d.Pairs()
	if err != nil {
		return workflow.Input{}, err
	}
	return workflow.Input{
		Movies:       d.Movies,
		Similarities: pairs,
		Peers:        d.Histories(),
		Watched:      d.Watched,
	}, nil
}

// Example 内置的示例数据
func Example() *Dataset {
	const (
		snatch    = "Snatch"
		lockStock = "Lock, Stock and Two Smoking Barrels"
		hateful   = "The Hateful Eight"
		painGain  = "Pain & Gain"
		resDogs   = "Reservoir Dogs"
	)

	return &Dataset{
		Movies: []string{snatch, lockStock, hateful, painGain, resDogs},
		Similarities: [][]string{
			{snatch, lockStock},
			{snatch, painGain},
			{resDogs, hateful},
		},
		Peers: []model.Peer{
			{ID: "friend-1", Seen: []string{resDogs}},
			{ID: "friend-2", Seen: []string{resDogs, lockStock}},
			{ID: "friend-3", Seen: []string{resDogs}},
			{ID: "friend-4", Seen: []string{snatch}},
			{ID: "friend-5", Seen: []string{lockStock}},
			{ID: "friend-6", Seen: []string{painGain, resDogs}},
		},
	}
}
