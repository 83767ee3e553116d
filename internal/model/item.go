package model

// Item 代表推荐流程中的一个候选电影
type Item struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Score       float64                `json:"score"`        // 排序分数 popularity / novelty
	Popularity  int                    `json:"popularity"`   // 看过该电影的同伴数
	Novelty     float64                `json:"novelty"`      // 1 / 平均重叠数
	MeanOverlap float64                `json:"mean_overlap"` // 同伴平均看过的相似电影数
	Source      string                 `json:"source"`       // 召回源标记 (e.g., "catalog")
	MetaData    map[string]interface{} `json:"meta_data,omitempty"`
}
