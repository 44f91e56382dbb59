// strviewbench drives the Two-Way matcher against pathological needles
// (runs like "aaaa...ab" that defeat naive quadratic scanners) at
// increasing haystack sizes, confirming the matcher's runtime grows
// linearly rather than quadratically, and writes a JSON report of the
// timings.
//
// Configuration is an optional JSONC (JSON-with-comments) file parsed
// with tailscale/hujson, so a saved bench config can carry inline notes
// about why a given size ladder was chosen.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"

	strview "github.com/SkeletOSS/str-view"
	"github.com/SkeletOSS/str-view/internal/cmdutil"
)

// benchConfig is the JSONC-decoded shape of an optional config file
// passed as the first argument.
type benchConfig struct {
	Sizes      []int  `json:"sizes"`
	ReportPath string `json:"report_path"`
}

func defaultConfig() benchConfig {
	return benchConfig{
		Sizes:      []int{1 << 10, 1 << 14, 1 << 18, 1 << 20},
		ReportPath: "strviewbench_report.json",
	}
}

// loadConfig reads a JSONC config file, tolerating comments and
// trailing commas the way a hand-edited bench config tends to collect.
func loadConfig(path string) (benchConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	standard, err := hujson.Standardize(raw)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(standard, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// timing is one row of the emitted report: how long the matcher took
// against a pathological needle over a haystack of the given size.
type timing struct {
	HaystackSize int     `json:"haystack_size"`
	NanosPerByte float64 `json:"nanos_per_byte"`
	Elapsed      string  `json:"elapsed"`
}

// pathologicalHaystack builds a run of n 'a' bytes followed by a single
// 'b', the classic input that makes a naive backtracking matcher
// recheck the same prefix O(n) times per position.
func pathologicalHaystack(n int) string {
	return strings.Repeat("a", n) + "b"
}

func runOne(size int) timing {
	haystack := strview.FromString(pathologicalHaystack(size))
	needle := strview.FromString(strings.Repeat("a", size/2) + "b")

	start := time.Now()
	k := strview.Find(haystack, 0, needle)
	elapsed := time.Since(start)

	if k != haystack.Len()-needle.Len() {
		cmdutil.Errorf("pathological case at size %d: expected match at %d, got %d",
			size, haystack.Len()-needle.Len(), k)
	}

	return timing{
		HaystackSize: size,
		NanosPerByte: float64(elapsed.Nanoseconds()) / float64(size),
		Elapsed:      elapsed.String(),
	}
}

func main() {
	var configPath string
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		cmdutil.Fatalf(err, "loading config %q", configPath)
	}

	results := make([]timing, 0, len(cfg.Sizes))
	for _, size := range cfg.Sizes {
		t := runOne(size)
		fmt.Printf("size=%-10d elapsed=%-12s ns/byte=%.3f\n", t.HaystackSize, t.Elapsed, t.NanosPerByte)
		results = append(results, t)
	}
	cmdutil.ExitIfErrors()

	report, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		cmdutil.Fatalf(err, "marshaling report")
	}

	// atomic.WriteFile swaps the report into place via a temp file plus
	// rename, so a crash mid-run never leaves a half-written report at
	// cfg.ReportPath for the next run to misread.
	if err := atomic.WriteFile(cfg.ReportPath, strings.NewReader(string(report))); err != nil {
		cmdutil.Fatalf(err, "writing report to %s", cfg.ReportPath)
	}
	fmt.Println("report written to", cfg.ReportPath)
}
