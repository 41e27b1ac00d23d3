package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestMatchLoggerWritesJSONL(t *testing.T) {
	var buf bytes.Buffer
	logger := NewMatchLogger(&buf)

	words := make([]string, 20)
	for i := range words {
		words[i] = fmt.Sprintf("w%02d", i)
	}

	records := []MatchRecord{
		{Timestamp: time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC), RunID: "run-1", Target: 1, Name: "play_music", Prefix: "play_", Words: words},
		{Timestamp: time.Date(2026, 2, 3, 10, 0, 1, 0, time.UTC), RunID: "run-1", Target: 2, Name: "bgm"},
	}
	for _, r := range records {
		if err := logger.Write(r); err != nil {
			t.Fatalf("Write error: %v", err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var parsed MatchRecord
	if err := json.Unmarshal([]byte(lines[0]), &parsed); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if parsed.Name != "play_music" || parsed.Prefix != "play_" {
		t.Fatalf("unexpected record %+v", parsed)
	}
	if len(parsed.Words) != maxWords {
		t.Fatalf("expected words capped at %d, got %d", maxWords, len(parsed.Words))
	}
	if strings.Contains(lines[1], "prefix") {
		t.Fatalf("expected empty prefix omitted: %s", lines[1])
	}
}

func TestOpenMatchLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "matches.jsonl")

	for i := 0; i < 2; i++ {
		logger, closer, err := OpenMatchLog(path)
		if err != nil {
			t.Fatalf("OpenMatchLog error: %v", err)
		}
		if err := logger.Write(MatchRecord{Target: uint32(i + 1), Name: "a"}); err != nil {
			t.Fatalf("Write error: %v", err)
		}
		if err := closer(); err != nil {
			t.Fatalf("close error: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 appended records, got %d", len(lines))
	}
}
