// Package runlog persists one JSON summary artifact per generation run.
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clicksalesmedia/blogpilot/internal/models"
)

// Entry records the outcome of one post in a run.
type Entry struct {
	Title            string `json:"title"`
	Category         string `json:"category"`
	Language         string `json:"language"`
	PublishedSuccess bool   `json:"published_success"`
}

// Summary is the run-level artifact, one file per calendar day. A rerun on
// the same day overwrites the earlier file.
type Summary struct {
	Timestamp      time.Time `json:"timestamp"`
	PostsGenerated int       `json:"posts_generated"`
	Posts          []Entry   `json:"posts"`
}

// NewSummary builds a summary from the posts of a finished run.
func NewSummary(posts []models.Post, published []bool) Summary {
	entries := make([]Entry, 0, len(posts))
	for i, p := range posts {
		entries = append(entries, Entry{
			Title:            p.Title,
			Category:         p.Category,
			Language:         p.Language,
			PublishedSuccess: i < len(published) && published[i],
		})
	}
	return Summary{
		Timestamp:      time.Now(),
		PostsGenerated: len(posts),
		Posts:          entries,
	}
}

// Writer saves run summaries under a base directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run log directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Save writes the summary as generation_log_YYYYMMDD.json and returns the
// file path.
func (w *Writer) Save(summary Summary) (string, error) {
	filename := fmt.Sprintf("generation_log_%s.json", summary.Timestamp.Format("20060102"))
	path := filepath.Join(w.dir, filename)

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal run summary: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write run log: %w", err)
	}

	return path, nil
}
