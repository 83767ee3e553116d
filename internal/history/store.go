package history

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"movie_recommend/internal/logger"

	"github.com/goccy/go-json"
)

// Record 代表一条同伴观看记录
type Record struct {
	PeerID    string `json:"peer_id"`
	Movie     string `json:"movie"`
	Timestamp int64  `json:"timestamp,omitempty"` // 0 表示没有时间，不受回看窗口限制
}

// Store 定义同伴观看历史的来源
type Store interface {
	// Histories 按同伴首次出现的顺序返回最近 N 天的观看列表，days <= 0 表示全部
	Histories(days int) ([][]string, error)
}

var _ Store = (*FileStore)(nil)

// FileStore 基于 JSONL 文件的只读历史
// 记录只在 NewFileStore 中加载一次，之后不再修改
type FileStore struct {
	filePath string
	records  []Record
	now      func() time.Time
}

// NewFileStore 读取 JSONL 历史文件
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		filePath: filePath,
		records:  make([]Record, 0),
		now:      time.Now,
	}

	if err := fs.load(); err != nil {
		return nil, err
	}

	return fs, nil
}

// load 从文件加载所有记录到内存
func (s *FileStore) load() error {
	f, err := os.Open(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record Record
		if err := json.Unmarshal(line, &record); err != nil || record.PeerID == "" || record.Movie == "" {
			// 忽略损坏的行
			logger.Debug("history %s: skipping line %d", s.filePath, lineNo)
			continue
		}
		s.records = append(s.records, record)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan history file: %w", err)
	}

	return nil
}

// Len 已加载的记录数
func (s *FileStore) Len() int {
	return len(s.records)
}

// Histories 按同伴分组返回观看列表
func (s *FileStore) Histories(days int) ([][]string, error) {
	var cutoff int64
	if days > 0 {
		cutoff = s.now().Unix() - int64(days*24*60*60)
	}

	index := make(map[string]int)
	var result [][]string
	for _, r := range s.records {
		if cutoff > 0 && r.Timestamp != 0 && r.Timestamp < cutoff {
			continue
		}
		i, ok := index[r.PeerID]
		if !ok {
			i = len(result)
			index[r.PeerID] = i
			result = append(result, nil)
		}
		result[i] = append(result[i], r.Movie)
	}

	return result, nil
}
