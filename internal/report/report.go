package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/wwnames/fnvbrute/internal/logging"
)

const topNames = 10

type Summary struct {
	Total     int             `json:"total"`
	Unique    int             `json:"unique"`
	Runs      int             `json:"runs"`
	Start     time.Time       `json:"start"`
	End       time.Time       `json:"end"`
	PerTarget []TargetSummary `json:"targets"`
	TopNames  []NameScore     `json:"top_names"`
}

type TargetSummary struct {
	Target  uint32 `json:"target"`
	Matches int    `json:"matches"`
	Best    string `json:"best"`
}

type NameScore struct {
	Target  uint32   `json:"target"`
	Name    string   `json:"name"`
	Covered int      `json:"covered"`
	Words   []string `json:"words,omitempty"`
}

type Reader struct {
	Since time.Time
}

func (r *Reader) Read(path string) ([]logging.MatchRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []logging.MatchRecord
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec logging.MatchRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, err
		}
		if !r.Since.IsZero() && rec.Timestamp.Before(r.Since) {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Summarize folds match records. A name found again by a later run counts
// once per target.
func Summarize(records []logging.MatchRecord) Summary {
	var summary Summary
	if len(records) == 0 {
		return summary
	}

	summary.Start = records[0].Timestamp
	summary.End = records[0].Timestamp

	runs := map[string]struct{}{}
	names := map[uint32]map[string]NameScore{}

	for _, rec := range records {
		summary.Total++
		if rec.Timestamp.Before(summary.Start) {
			summary.Start = rec.Timestamp
		}
		if rec.Timestamp.After(summary.End) {
			summary.End = rec.Timestamp
		}
		if rec.RunID != "" {
			runs[rec.RunID] = struct{}{}
		}

		byName, ok := names[rec.Target]
		if !ok {
			byName = map[string]NameScore{}
			names[rec.Target] = byName
		}
		if _, seen := byName[rec.Name]; !seen {
			byName[rec.Name] = NameScore{Target: rec.Target, Name: rec.Name, Covered: rec.Covered, Words: rec.Words}
		}
	}
	summary.Runs = len(runs)

	var all []NameScore
	for target, byName := range names {
		scores := make([]NameScore, 0, len(byName))
		for _, s := range byName {
			scores = append(scores, s)
		}
		sortScores(scores)

		summary.PerTarget = append(summary.PerTarget, TargetSummary{
			Target:  target,
			Matches: len(scores),
			Best:    scores[0].Name,
		})
		summary.Unique += len(scores)
		all = append(all, scores...)
	}

	sort.Slice(summary.PerTarget, func(i, j int) bool {
		return summary.PerTarget[i].Target < summary.PerTarget[j].Target
	})

	sortScores(all)
	if len(all) > topNames {
		all = all[:topNames]
	}
	summary.TopNames = all

	return summary
}

// sortScores orders by dictionary coverage, then by shorter name.
func sortScores(scores []NameScore) {
	sort.Slice(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.Covered != b.Covered {
			return a.Covered > b.Covered
		}
		if len(a.Name) != len(b.Name) {
			return len(a.Name) < len(b.Name)
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Target < b.Target
	})
}

func RenderText(summary Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matches: %d (%d unique)\n", summary.Total, summary.Unique)
	fmt.Fprintf(&b, "Runs: %d\n", summary.Runs)
	if !summary.Start.IsZero() {
		fmt.Fprintf(&b, "Window: %s - %s\n", summary.Start.Format(time.RFC3339), summary.End.Format(time.RFC3339))
	}

	if len(summary.PerTarget) == 0 {
		b.WriteString("Targets: none\n")
	} else {
		b.WriteString("Targets:\n")
		for _, t := range summary.PerTarget {
			fmt.Fprintf(&b, "- %d: %d match(es), best %s\n", t.Target, t.Matches, t.Best)
		}
	}

	writeScores(&b, "Top names", summary.TopNames)
	return b.String()
}

func RenderMarkdown(summary Summary) string {
	var b strings.Builder
	b.WriteString("# FNV Match Report\n\n")
	b.WriteString("## Totals\n\n")
	fmt.Fprintf(&b, "- Matches: %d\n", summary.Total)
	fmt.Fprintf(&b, "- Unique: %d\n", summary.Unique)
	fmt.Fprintf(&b, "- Runs: %d\n\n", summary.Runs)

	b.WriteString("## Targets\n\n")
	if len(summary.PerTarget) == 0 {
		b.WriteString("- none\n\n")
	} else {
		b.WriteString("| target | matches | best |\n|---|---|---|\n")
		for _, t := range summary.PerTarget {
			fmt.Fprintf(&b, "| %d | %d | `%s` |\n", t.Target, t.Matches, t.Best)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Top names\n\n")
	if len(summary.TopNames) == 0 {
		b.WriteString("- none\n\n")
		return b.String()
	}
	for _, s := range summary.TopNames {
		fmt.Fprintf(&b, "- `%s` (%d): %d covered %s\n", s.Name, s.Target, s.Covered, strings.Join(s.Words, " "))
	}
	b.WriteString("\n")
	return b.String()
}

func RenderJSON(summary Summary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}

func writeScores(b *strings.Builder, title string, scores []NameScore) {
	if len(scores) == 0 {
		fmt.Fprintf(b, "%s: none\n", title)
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, s := range scores {
		if len(s.Words) == 0 {
			fmt.Fprintf(b, "- %s (%d)\n", s.Name, s.Target)
			continue
		}
		fmt.Fprintf(b, "- %s (%d): %s\n", s.Name, s.Target, strings.Join(s.Words, ", "))
	}
}

// WriteOutput writes content to path, or to w when path is empty.
func WriteOutput(w io.Writer, path string, content []byte) error {
	if path == "" {
		_, err := w.Write(content)
		return err
	}
	return os.WriteFile(path, content, 0o600)
}
