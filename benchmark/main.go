// Package main provides a performance benchmarking tool for the attribution CLI.
// It seeds a SQLite journey store at several sizes, times the analysis commands
// against each one, treating the first successful run as cold and averaging the
// rest as warm, and writes a CSV for performance analysis and documentation.
//
// Prerequisites:
// - attribution binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for the benchmark SQLite files (defaults to a temp dir)
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Journeys int
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	Seed     int
	Sizes    []int
	Commands map[string][]string
	Order    []string
}

func main() {
	if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := ""
	if len(os.Args) == 2 {
		workDir = os.Args[1]
	} else {
		dir, err := os.MkdirTemp("", "attribution-benchmark-*")
		if err != nil {
			fmt.Printf("Failed to create work dir: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = os.RemoveAll(dir) }()
		workDir = dir
	}

	config := BenchmarkConfig{
		WorkDir: workDir,
		Timeout: 2 * time.Minute,
		Runs:    5,
		Seed:    42,
		Sizes:   []int{150, 500, 1000},
		Commands: map[string][]string{
			"model":    {"model", "linear"},
			"compare":  {"compare"},
			"variance": {"variance"},
		},
		Order: []string{"model", "compare", "variance"},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the attribution binary exists
func checkPrerequisites() error {
	if _, err := exec.LookPath("attribution"); err != nil {
		return fmt.Errorf("attribution binary not found in PATH")
	}
	return nil
}

// storeArgs points a command at the SQLite file for one dataset size.
func storeArgs(config BenchmarkConfig, size int) []string {
	dbPath := filepath.Join(config.WorkDir, fmt.Sprintf("journeys_%d.db", size))
	return []string{"--store-backend", "sqlite", "--store-db-connect", dbPath}
}

// runBenchmarks seeds each dataset size and times every command against it
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: sizes %v, %v timeout, %d runs per command\n",
		config.Sizes, config.Timeout, config.Runs)

	for _, size := range config.Sizes {
		fmt.Printf("Seeding %d journeys\n", size)
		args := append([]string{"journeys", "generate", "--count", strconv.Itoa(size), "--seed", strconv.Itoa(config.Seed)}, storeArgs(config, size)...)
		if output, err := exec.Command("attribution", args...).CombinedOutput(); err != nil {
			fmt.Printf("Warning: failed to seed %d journeys: %v\nOutput: %s\n", size, err, string(output))
			continue
		}

		for _, command := range config.Order {
			results = append(results, runBenchmarkSuite(config, size, command))
		}
	}

	return results
}

// runBenchmarkSuite times one command against one dataset
func runBenchmarkSuite(config BenchmarkConfig, size int, command string) BenchmarkResult {
	fmt.Printf("Running %s on %d journeys\n", command, size)

	args := append(append([]string{}, config.Commands[command]...), storeArgs(config, size)...)
	args = append(args, "--limit", "1000")
	cold, warm := runBenchmark(config, command, args)

	coldTimeStr := "TIMEOUT"
	if cold > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", cold)
	}
	warmAvg := "TIMEOUT"
	if len(warm) > 0 {
		var sum float64
		for _, t := range warm {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

	return BenchmarkResult{
		Journeys: size,
		Command:  command,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes a command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, command string, args []string) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("attribution", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
			<-done
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	var completionPhrase string
	switch command {
	case "compare":
		completionPhrase = "models across"
	case "variance":
		completionPhrase = "computed in"
	default:
		completionPhrase = "Attribution completed in"
	}

	return strings.Contains(outputStr, completionPhrase)
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/attribution_benchmark_%s.csv", timestamp)

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

	if err := writer.Write([]string{"journeys", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{strconv.Itoa(result.Journeys), result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	for _, command := range config.Order {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %5d journeys: Cold: %s, Warm: %s\n", result.Journeys, result.ColdTime, result.WarmTime)
			}
		}
	}

	fmt.Printf("Benchmark script completed successfully\n")
}
