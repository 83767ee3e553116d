package graph

import "errors"

// ErrUnknownItem 查询的条目不是图中的节点
var ErrUnknownItem = errors.New("unknown item")
