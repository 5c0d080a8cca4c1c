package reports

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leadscope/backend/analyzer"
)

const indexFile = "reports_index.json"

// IndexEntry summarizes one persisted analysis for the report index.
type IndexEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Company   string `json:"company"`
	Industry  string `json:"industry,omitempty"`
	Quality   string `json:"quality"`
	Score     int    `json:"score"`
}

// Index is the persisted report catalog: entries newest-first plus
// per-tier counts.
type Index struct {
	Entries []IndexEntry   `json:"entries"`
	Summary map[string]int `json:"summary"`
}

// Store persists analysis results under a data directory: the raw JSON
// under json/, a rendered markdown report under reports/, and a catalog
// in reports_index.json. All writes go through a temp-file rename so a
// crash never leaves a half-written file behind.
type Store struct {
	mutex      sync.RWMutex
	baseDir    string
	jsonDir    string
	reportsDir string
	index      Index
}

// NewStore creates the directory layout under dataDir and loads any
// existing index.
func NewStore(dataDir string) (*Store, error) {
	s := &Store{
		baseDir:    dataDir,
		jsonDir:    filepath.Join(dataDir, "json"),
		reportsDir: filepath.Join(dataDir, "reports"),
		index: Index{
			Summary: make(map[string]int),
		},
	}

	for _, dir := range []string{dataDir, s.jsonDir, s.reportsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if err := s.loadIndex(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load report index: %w", err)
	}

	return s, nil
}

func (s *Store) loadIndex() error {
	data, err := os.ReadFile(filepath.Join(s.baseDir, indexFile))
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := json.Unmarshal(data, &s.index); err != nil {
		return err
	}
	if s.index.Summary == nil {
		s.index.Summary = make(map[string]int)
	}
	return nil
}

// writeAtomic writes to a temporary file and renames it into place.
func writeAtomic(path string, data []byte) error {
	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// SaveReport persists one analysis result and returns its index entry.
func (s *Store) SaveReport(result *analyzer.AnalysisResult) (IndexEntry, error) {
	entry := IndexEntry{
		ID:        uuid.NewString(),
		Timestamp: result.Timestamp,
		URL:       result.URL,
		Company:   result.CompanyProfile.CompanyName,
		Industry:  result.CompanyProfile.Industry,
		Quality:   result.LeadScore.Quality,
		Score:     result.LeadScore.Overall,
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return IndexEntry{}, fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := writeAtomic(filepath.Join(s.jsonDir, entry.ID+".json"), data); err != nil {
		return IndexEntry{}, err
	}

	markdown := RenderMarkdown(result)
	if err := writeAtomic(filepath.Join(s.reportsDir, entry.ID+".md"), []byte(markdown)); err != nil {
		return IndexEntry{}, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Newest first.
	s.index.Entries = append([]IndexEntry{entry}, s.index.Entries...)
	s.index.Summary[entry.Quality]++

	return entry, s.saveIndexLocked()
}

func (s *Store) saveIndexLocked() error {
	data, err := json.MarshalIndent(s.index, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}
	return writeAtomic(filepath.Join(s.baseDir, indexFile), data)
}

// GetIndex returns a copy of the current report catalog.
func (s *Store) GetIndex() Index {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := Index{
		Entries: make([]IndexEntry, len(s.index.Entries)),
		Summary: make(map[string]int, len(s.index.Summary)),
	}
	copy(out.Entries, s.index.Entries)
	for quality, count := range s.index.Summary {
		out.Summary[quality] = count
	}
	return out
}

// GetResult loads the raw analysis JSON for a stored report.
func (s *Store) GetResult(id string) (*analyzer.AnalysisResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid report id: %w", err)
	}

	data, err := os.ReadFile(filepath.Join(s.jsonDir, id+".json"))
	if err != nil {
		return nil, err
	}

	var result analyzer.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored result: %w", err)
	}
	return &result, nil
}
