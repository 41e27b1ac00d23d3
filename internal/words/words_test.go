package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFind(t *testing.T) {
	dict, err := New([]string{"play", "music", "us", "ice", "sic", "Play"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if dict.Len() != 4 {
		t.Fatalf("expected 4 words (short and duplicate dropped), got %d", dict.Len())
	}

	hits := dict.Find("play_music")
	expected := []string{"play", "music", "sic"}
	if strings.Join(hits.Words, ",") != strings.Join(expected, ",") {
		t.Fatalf("expected words %v, got %v", expected, hits.Words)
	}
	if hits.Covered != 9 {
		t.Fatalf("expected 9 covered bytes, got %d", hits.Covered)
	}
}

func TestFindOverlapsAndRepeats(t *testing.T) {
	dict, err := New([]string{"aaa", "icei"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	hits := dict.Find("aaaa_iceice")
	if strings.Join(hits.Words, ",") != "aaa,icei" {
		t.Fatalf("expected aaa and icei once each, got %v", hits.Words)
	}
	if hits.Covered != 8 {
		t.Fatalf("expected 8 covered bytes, got %d", hits.Covered)
	}

	hits = dict.Find("ICEICE")
	if len(hits.Words) != 1 || hits.Covered != 4 {
		t.Fatalf("expected icei covering 4 bytes, got %+v", hits)
	}
}

func TestFindNoHits(t *testing.T) {
	dict, err := New([]string{"bgm"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	hits := dict.Find("zzqx")
	if len(hits.Words) != 0 || hits.Covered != 0 {
		t.Fatalf("expected no hits, got %+v", hits)
	}
}

func TestNewRejectsEmptyList(t *testing.T) {
	if _, err := New([]string{"a", "b"}); err == nil {
		t.Fatalf("expected error for list without usable words")
	}
}

func TestLoadSplitsNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# names\nPlay_Stage_01\nbgm theme\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	dict, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if dict.Len() != 4 {
		t.Fatalf("expected play, stage, bgm, theme; got %d words", dict.Len())
	}
	hits := dict.Find("stage_theme")
	if len(hits.Words) != 2 {
		t.Fatalf("expected 2 words, got %v", hits.Words)
	}
}
