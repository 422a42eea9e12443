// Package main provides a performance benchmarking tool for the Gradebook CLI.
// It generates synthetic rosters of increasing size, runs each command several times
// with history tracking off and on, and writes the average timings to CSV.
//
// Prerequisites:
// - gradebook binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where synthetic rosters and SQLite files are created
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the timings of one command on one roster size.
type BenchmarkResult struct {
	Roster      string
	Command     string
	NoTrackTime string
	TrackedTime string
}

// RosterSize describes a synthetic roster.
type RosterSize struct {
	Name     string
	Students int
	Subjects int
	Grades   int
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir string
	Timeout time.Duration
	Runs    int
	Sizes   []RosterSize
	// Commands maps a label to the CLI arguments it runs.
	Commands map[string][]string
	Order    []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: os.Args[1],
		Timeout: 2 * time.Minute,
		Runs:    4,
		Sizes: []RosterSize{
			{Name: "small", Students: 100, Subjects: 5, Grades: 5},
			{Name: "medium", Students: 2_000, Subjects: 8, Grades: 10},
			{Name: "large", Students: 20_000, Subjects: 10, Grades: 20},
		},
		Commands: map[string][]string{
			"summary": {"summary", "--output", "csv"},
			"check":   {"check"},
			"list":    {"student", "list", "--output", "csv"},
		},
		Order: []string{"summary", "check", "list"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the gradebook binary and the work dir exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("gradebook"); err != nil {
		return fmt.Errorf("gradebook binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// generateRoster writes a roster with deterministic pseudo-random grades.
func generateRoster(path string, size RosterSize) error {
	rng := rand.New(rand.NewPCG(uint64(size.Students), uint64(size.Subjects)))

	var sb strings.Builder
	sb.WriteString("name,subject,grades,weight\n")
	for s := range size.Students {
		for j := range size.Subjects {
			grades := make([]string, size.Grades)
			for g := range grades {
				grades[g] = fmt.Sprint(rng.IntN(101))
			}
			weight := 0.5 + float64(j%4)*0.5
			fmt.Fprintf(&sb, "Student %05d,Subject %02d,%s,%.2f\n", s, j, strings.Join(grades, ";"), weight)
		}
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// runBenchmarks executes every command on every roster size
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d rosters, %v timeout, %d runs per phase\n",
		len(config.Sizes), config.Timeout, config.Runs)

	for _, size := range config.Sizes {
		rosterPath := filepath.Join(config.WorkDir, size.Name+".csv")
		if err := generateRoster(rosterPath, size); err != nil {
			return nil, fmt.Errorf("failed to generate %s roster: %w", size.Name, err)
		}
		fmt.Printf("Benchmarking %s roster (%d students x %d subjects x %d grades)\n",
			size.Name, size.Students, size.Subjects, size.Grades)

		for _, label := range config.Order {
			results = append(results, runBenchmarkSuite(config, size.Name, rosterPath, label, config.Commands[label]))
		}
	}
	return results, nil
}

// runBenchmarkSuite runs a command with history tracking disabled and enabled
func runBenchmarkSuite(config BenchmarkConfig, roster, rosterPath, label string, args []string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", label, roster)

	runPhase := func(historyBackend, phaseName string) string {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, config.Runs)
		times := runBenchmark(config, rosterPath, args, historyBackend)
		if len(times) == 0 {
			return "TIMEOUT"
		}
		var sum float64
		for _, t := range times {
			sum += t
		}
		return fmt.Sprintf("%.3fs", sum/float64(len(times)))
	}

	noTrack := runPhase("none", "No-tracking")
	tracked := runPhase("sqlite", "Tracking")
	fmt.Printf("  No-tracking average: %s, Tracking average: %s\n", noTrack, tracked)

	return BenchmarkResult{
		Roster:      roster,
		Command:     label,
		NoTrackTime: noTrack,
		TrackedTime: tracked,
	}
}

// runBenchmark executes a gradebook command several times and returns successful run times
func runBenchmark(config BenchmarkConfig, rosterPath string, args []string, historyBackend string) []float64 {
	full := append([]string{"--file", rosterPath, "--history-backend", historyBackend,
		"--history-db-connect", filepath.Join(config.WorkDir, "history.db"),
		"--snapshot-backend", "none", "--color", "no"}, args...)

	var times []float64
	for range config.Runs {
		start := time.Now()

		cmd := exec.Command("gradebook", full...)
		cmd.Dir = config.WorkDir

		done := make(chan error, 1)
		go func() {
			_, err := cmd.Output()
			done <- err
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}
	return times
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("gradebook_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"roster", "cmd", "no_tracking_avg", "tracking_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Roster, result.Command, result.NoTrackTime, result.TrackedTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, label := range config.Order {
		fmt.Printf("%s:\n", label)
		for _, result := range results {
			if result.Command == label {
				fmt.Printf("  %-8s: No-tracking: %s, Tracking: %s\n", result.Roster, result.NoTrackTime, result.TrackedTime)
			}
		}
	}
}
