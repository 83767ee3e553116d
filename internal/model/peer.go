package model

// Peer 代表一个同伴 (好友) 及其观看历史
type Peer struct {
	ID   string   `json:"id" yaml:"id"`
	Seen []string `json:"seen" yaml:"seen"` // 已看过的电影
}
