package chash_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// BenchmarkMetrics represents metrics for a single benchmark
type BenchmarkMetrics struct {
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Operations  int                `json:"operations"`
	NsPerOp     float64            `json:"ns_per_op"`
	BytesPerOp  int                `json:"bytes_per_op,omitempty"`
	AllocsPerOp int                `json:"allocs_per_op,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// BenchmarkSummary represents all benchmark results
type BenchmarkSummary struct {
	Timestamp string             `json:"timestamp"`
	Branch    string             `json:"branch"`
	GoVersion string             `json:"go_version"`
	Results   []BenchmarkMetrics `json:"results"`
}

// heapSnapshot captures the allocation counters used to derive per-entry
// memory cost
type heapSnapshot struct {
	heapAlloc uint64
	mallocs   uint64
}

func takeHeapSnapshot() heapSnapshot {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return heapSnapshot{heapAlloc: m.HeapAlloc, mallocs: m.Mallocs}
}

// since returns the bytes retained and allocations made after s
func (s heapSnapshot) since() (bytes int64, allocs uint64) {
	now := takeHeapSnapshot()
	return int64(now.heapAlloc) - int64(s.heapAlloc), now.mallocs - s.mallocs
}

// rate returns operations per second
func rate(ops int, d time.Duration) float64 {
	return float64(ops) / d.Seconds()
}

// currentBranch reads the checked out branch from .git/HEAD, if any
func currentBranch(repoRoot string) string {
	head, err := os.ReadFile(filepath.Join(repoRoot, ".git", "HEAD"))
	if err != nil {
		return "dev"
	}
	ref := strings.TrimSpace(string(head))
	if !strings.HasPrefix(ref, "ref: refs/heads/") {
		return "detached"
	}
	return strings.TrimPrefix(ref, "ref: refs/heads/")
}

// saveBenchmarkResult appends a result to benchmark_history/<resultsFile>
// at the repository root
func saveBenchmarkResult(metrics BenchmarkMetrics, resultsFile string) error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	repoRoot := filepath.Dir(currentDir)

	benchmarkDir := filepath.Join(repoRoot, "benchmark_history")
	if err := os.MkdirAll(benchmarkDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	summary := BenchmarkSummary{
		Timestamp: time.Now().Format(time.RFC3339),
		Branch:    currentBranch(repoRoot),
		GoVersion: runtime.Version(),
	}

	path := filepath.Join(benchmarkDir, resultsFile)
	if existing, err := os.ReadFile(path); err == nil {
		var previous BenchmarkSummary
		if err := json.Unmarshal(existing, &previous); err == nil {
			summary.Results = previous.Results
		}
	}
	summary.Results = append(summary.Results, metrics)

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	fmt.Printf("Benchmark results saved to: %s\n", path)
	return nil
}
