// Package stats keeps monthly usage counters for the diagnostic service and
// persists them to disk so restarts don't lose them.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Monthly holds counters for one calendar month.
type Monthly struct {
	Analyses    int       `json:"analyses"`
	Errors      int       `json:"errors"`
	CacheHits   int       `json:"cache_hits"`
	CacheMisses int       `json:"cache_misses"`
	LastUpdated time.Time `json:"last_updated"`
}

// Storage tracks counters keyed by "YYYY-MM" with atomic file persistence.
type Storage struct {
	mu       sync.RWMutex
	months   map[string]*Monthly
	filePath string

	writeCh chan struct{}
	done    chan struct{}
	stopped sync.Once
}

// NewStorage loads or creates the counter file under dataDir and starts the
// background writer.
func NewStorage(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Storage{
		months:   make(map[string]*Monthly),
		filePath: filepath.Join(dataDir, "stats.json"),
		writeCh:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load stats: %w", err)
	}

	go s.backgroundWriter()
	return s, nil
}

// RecordAnalysis counts one finished analysis, failed or not.
func (s *Storage) RecordAnalysis(failed bool) {
	s.mu.Lock()
	m := s.currentLocked()
	m.Analyses++
	if failed {
		m.Errors++
	}
	m.LastUpdated = time.Now()
	s.mu.Unlock()

	s.requestWrite()
}

// RecordCacheLookup counts one fetch cache lookup.
func (s *Storage) RecordCacheLookup(hit bool) {
	s.mu.Lock()
	m := s.currentLocked()
	if hit {
		m.CacheHits++
	} else {
		m.CacheMisses++
	}
	m.LastUpdated = time.Now()
	s.mu.Unlock()
}

// Current returns a copy of this month's counters.
func (s *Storage) Current() Monthly {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m, ok := s.months[monthKey()]; ok {
		return *m
	}
	return Monthly{}
}

// Months returns all tracked month keys.
func (s *Storage) Months() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.months))
	for k := range s.months {
		keys = append(keys, k)
	}
	return keys
}

// Prune drops every month except the current and previous one.
func (s *Storage) Prune() {
	now := time.Now()
	keep := map[string]bool{}
	keep[now.Format("2006-01")] = true
	keep[now.AddDate(0, -1, 0).Format("2006-01")] = true

	s.mu.Lock()
	for key := range s.months {
		if !keep[key] {
			delete(s.months, key)
		}
	}
	s.mu.Unlock()

	s.requestWrite()
}

// Shutdown stops the background writer after a final save.
func (s *Storage) Shutdown() error {
	var err error
	s.stopped.Do(func() {
		close(s.done)
		err = s.save()
	})
	return err
}

func (s *Storage) currentLocked() *Monthly {
	key := monthKey()
	m, ok := s.months[key]
	if !ok {
		m = &Monthly{}
		s.months[key] = m
	}
	return m
}

func monthKey() string {
	return time.Now().Format("2006-01")
}

func (s *Storage) requestWrite() {
	select {
	case s.writeCh <- struct{}{}:
	default:
	}
}

func (s *Storage) backgroundWriter() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-s.writeCh:
			_ = s.save()
		case <-ticker.C:
			_ = s.save()
		}
	}
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Unmarshal(data, &s.months)
}

func (s *Storage) save() error {
	s.mu.RLock()
	data, err := json.Marshal(s.months)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	// Write-then-rename keeps the file intact if the process dies mid-write.
	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename stats: %w", err)
	}
	return nil
}
