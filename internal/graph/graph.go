package graph

import (
	"fmt"
	"sort"
)

// Pair 表示两部电影相似 (无向)
type Pair struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

// Set 条目集合
type Set map[string]struct{}

// NewSet 由列表构建集合，重复条目只保留一个
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Contains 判断条目是否在集合中
func (s Set) Contains(item string) bool {
	_, ok := s[item]
	return ok
}

// Overlap 返回两个集合交集的大小
func (s Set) Overlap(other Set) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for item := range small {
		if large.Contains(item) {
			n++
		}
	}
	return n
}

// Sorted 返回排序后的条目列表，便于输出和测试
func (s Set) Sorted() []string {
	result := make([]string, 0, len(s))
	for item := range s {
		result = append(result, item)
	}
	sort.Strings(result)
	return result
}

// Graph 电影相似度图
// 构建完成后只读，可以在多个调用之间共享
type Graph struct {
	adj   map[string]Set
	order []string // 节点首次出现的顺序
}

// Build 根据目录和相似对构建图
// 只出现在 pairs 中、不在 items 中的电影同样会成为节点
func Build(items []string, pairs []Pair) *Graph {
	g := &Graph{
		adj: make(map[string]Set, len(items)),
	}

	for _, p := range pairs {
		g.addNode(p.A)
		g.addNode(p.B)
		if p.A == p.B {
			continue
		}
		g.adj[p.A][p.B] = struct{}{}
		g.adj[p.B][p.A] = struct{}{}
	}

	for _, item := range items {
		g.addNode(item)
	}

	return g
}

func (g *Graph) addNode(item string) {
	if _, ok := g.adj[item]; ok {
		return
	}
	g.adj[item] = make(Set)
	g.order = append(g.order, item)
}

// Contains 判断电影是否为图中的节点
func (g *Graph) Contains(item string) bool {
	_, ok := g.adj[item]
	return ok
}

// Len 节点数量
func (g *Graph) Len() int {
	return len(g.adj)
}

// items 按首次出现顺序返回所有节点
func (g *Graph) items() []string {
	result := make([]string, len(g.order))
	copy(result, g.order)
	return result
}

// neighbors 返回直接相似的电影 (不含自身)
func (g *Graph) neighbors(item string) ([]string, error) {
	adj, ok := g.adj[item]
	if !ok {
		return nil, fmt.Errorf("neighbors of %q: %w", item, ErrUnknownItem)
	}
	return adj.Sorted(), nil
}

// Cluster 返回从 start 出发可达的全部电影，包含 start 本身
// 使用显式栈的迭代 DFS，visited 只属于本次调用
func (g *Graph) Cluster(start string) (Set, error) {
	if _, ok := g.adj[start]; !ok {
		return nil, fmt.Errorf("cluster of %q: %w", start, ErrUnknownItem)
	}

	visited := Set{start: {}}
	stack := []string{start}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for neighbor := range g.adj[node] {
			if visited.Contains(neighbor) {
				continue
			}
			visited[neighbor] = struct{}{}
			stack = append(stack, neighbor)
		}
	}

	return visited, nil
}
