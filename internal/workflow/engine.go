package workflow

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"movie_recommend/internal/logger"

	"github.com/goccy/go-json"
)

// PipelineConfig 单个 Pipeline 的配置
type PipelineConfig struct {
	Description string       `json:"description"`
	TimeoutMs   int          `json:"timeout_ms"`
	Nodes       []NodeConfig `json:"nodes"`
}

// NodeConfig 节点的配置片段
type NodeConfig struct {
	Name   string                 `json:"name"`
	Type   string                 `json:"type"`
	Config map[string]interface{} `json:"config"`
}

// GlobalConfig 整个配置文件的结构
type GlobalConfig struct {
	Pipelines map[string]PipelineConfig `json:"pipelines"`
}

// NodeFactory 创建 Node 的函数签名
type NodeFactory func(config NodeConfig) (Node, error)

// Registry 节点注册表
type Registry struct {
	factories map[string]NodeFactory
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]NodeFactory),
	}
}

// Register 注册一个新的节点类型
func (r *Registry) Register(nodeType string, factory NodeFactory) {
	r.factories[nodeType] = factory
}

// CreateNode 根据配置创建节点实例
func (r *Registry) CreateNode(cfg NodeConfig) (Node, error) {
	factory, ok := r.factories[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNodeType, cfg.Type)
	}
	return factory(cfg)
}

type pipeline struct {
	nodes   []Node
	timeout time.Duration
}

// Engine 流程引擎
// 构建完成后只读
type Engine struct {
	pipelines map[string]pipeline // scene -> nodes
}

// NewEngine 根据配置创建引擎
func NewEngine(globalCfg GlobalConfig, registry *Registry) (*Engine, error) {
	engine := &Engine{
		pipelines: make(map[string]pipeline),
	}

	for scene, pipeCfg := range globalCfg.Pipelines {
		var nodes []Node
		for _, nodeCfg := range pipeCfg.Nodes {
			node, err := registry.CreateNode(nodeCfg)
			if err != nil {
				return nil, fmt.Errorf("failed to create node '%s' in pipeline '%s': %w", nodeCfg.Name, scene, err)
			}
			nodes = append(nodes, node)
		}
		engine.pipelines[scene] = pipeline{
			nodes:   nodes,
			timeout: time.Duration(pipeCfg.TimeoutMs) * time.Millisecond,
		}
	}

	return engine, nil
}

// LoadEngine 从 JSON 配置文件创建引擎
func LoadEngine(configPath string, registry *Registry) (*Engine, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline config: %w", err)
	}

	var globalCfg GlobalConfig
	if err := json.Unmarshal(data, &globalCfg); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline config: %w", err)
	}

	return NewEngine(globalCfg, registry)
}

// Scenes 返回已加载的场景名，按字母序
func (e *Engine) Scenes() []string {
	scenes := make([]string, 0, len(e.pipelines))
	for scene := range e.pipelines {
		scenes = append(scenes, scene)
	}
	sort.Strings(scenes)
	return scenes
}

// Run 执行指定场景的推荐流程
func (e *Engine) Run(ctx *Context, scene string) error {
	p, ok := e.pipelines[scene]
	if !ok {
		return fmt.Errorf("%w for scene: %s", ErrPipelineNotFound, scene)
	}

	if p.timeout > 0 {
		c, cancel := context.WithTimeout(ctx.Ctx, p.timeout)
		defer cancel()
		ctx.Ctx = c
	}

	ctx.AddLog(fmt.Sprintf("Starting pipeline execution for scene: %s", scene))
	logger.Debug("run %s: starting pipeline %s with %d nodes", ctx.RunID, scene, len(p.nodes))

	for _, node := range p.nodes {
		if err := ctx.Ctx.Err(); err != nil {
			ctx.AddLog(fmt.Sprintf("Pipeline aborted before node %s: %v", node.Name(), err))
			return fmt.Errorf("pipeline '%s' aborted: %w", scene, err)
		}

		ctx.AddLog(fmt.Sprintf("Executing node: %s (%s)", node.Name(), node.Type()))
		if err := node.Execute(ctx); err != nil {
			ctx.AddLog(fmt.Sprintf("Node execution failed: %v", err))
			return fmt.Errorf("node '%s' failed: %w", node.Name(), err)
		}
		logger.Debug("run %s: node %s done, %d candidates", ctx.RunID, node.Name(), len(ctx.GetCandidates()))
	}

	ctx.AddLog("Pipeline execution completed")
	return nil
}
