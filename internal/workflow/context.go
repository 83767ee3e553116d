package workflow

import (
	"context"
	"sync"

	"movie_recommend/internal/graph"
	"movie_recommend/internal/model"

	"github.com/google/uuid"
)

// Input 一次推荐的全部输入
type Input struct {
	Movies       []string     // 电影目录，顺序决定平分时的优先级
	Similarities []graph.Pair // 相似对
	Peers        [][]string   // 同伴观看历史
	Watched      []string     // 用户自己看过的电影，只有 filter_seen 节点使用
}

// Context 承载推荐流程的所有状态信息
// 每次推荐新建一个，流程结束后丢弃
type Context struct {
	Ctx   context.Context
	RunID string
	Input Input

	// 数据流转区 (需要锁保护)
	mu         sync.RWMutex
	graph      *graph.Graph
	peers      []graph.Set
	Candidates []*model.Item // 当前的主候选集
	TraceLog   []string      // 执行日志
}

// NewContext 创建一个新的工作流上下文
func NewContext(ctx context.Context, in Input) *Context {
	return &Context{
		Ctx:        ctx,
		RunID:      uuid.New().String(),
		Input:      in,
		Candidates: make([]*model.Item, 0),
		TraceLog:   make([]string, 0),
	}
}

// SetGraph 保存召回阶段构建好的相似度图及同伴集合
func (c *Context) SetGraph(g *graph.Graph, peers []graph.Set) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.graph = g
	c.peers = peers
}

// Graph 返回相似度图和同伴集合，召回前为 nil
func (c *Context) Graph() (*graph.Graph, []graph.Set) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.graph, c.peers
}

// AddCandidates 向候选集中添加项目
func (c *Context) AddCandidates(items []*model.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Candidates = append(c.Candidates, items...)
}

// GetCandidates 获取当前候选集的副本
func (c *Context) GetCandidates() []*model.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]*model.Item, len(c.Candidates))
	copy(result, c.Candidates)
	return result
}

// UpdateCandidates 更新整个候选集
// 通常用于过滤或排序阶段
func (c *Context) UpdateCandidates(items []*model.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Candidates = items
}

// AddLog 添加追踪日志
func (c *Context) AddLog(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.TraceLog = append(c.TraceLog, msg)
}

// GetTraceLog 获取追踪日志的副本
func (c *Context) GetTraceLog() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]string, len(c.TraceLog))
	copy(result, c.TraceLog)
	return result
}

// Node 定义工作流中的执行节点
type Node interface {
	Name() string
	Type() string // e.g., "recall", "score", "filter", "rank"
	Execute(ctx *Context) error
}
