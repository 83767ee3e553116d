package workflow

import "errors"

var (
	// ErrPipelineNotFound 场景没有对应的 pipeline
	ErrPipelineNotFound = errors.New("pipeline not found")

	// ErrUnknownNodeType 节点类型没有注册
	ErrUnknownNodeType = errors.New("unknown node type")
)
