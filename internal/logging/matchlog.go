package logging

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"
)

const maxWords = 16

// MatchRecord is written as a single JSON object per match.
type MatchRecord struct {
	Timestamp time.Time `json:"ts"`
	RunID     string    `json:"run_id"`
	Target    uint32    `json:"target"`
	Name      string    `json:"name"`
	Prefix    string    `json:"prefix,omitempty"`
	Suffix    string    `json:"suffix,omitempty"`
	MaxDepth  int       `json:"max_depth"`
	Pruned    bool      `json:"pruned"`
	Words     []string  `json:"words,omitempty"`
	Covered   int       `json:"covered"`
}

type MatchLogger struct {
	w io.Writer
}

func NewMatchLogger(w io.Writer) *MatchLogger {
	return &MatchLogger{w: w}
}

func OpenMatchLog(path string) (*MatchLogger, func() error, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return NewMatchLogger(file), file.Close, nil
}

func (l *MatchLogger) Write(record MatchRecord) error {
	if len(record.Words) > maxWords {
		record.Words = record.Words[:maxWords]
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = l.w.Write(append(data, '\n'))
	return err
}
