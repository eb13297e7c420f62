package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/report"
	"github.com/dominikmueller-lingelbach/performance-profile-app/internal/scoring"
)

// Renders a report PDF from a saved payload JSON, or a set of band
// edge-case fixtures when no input is given. Useful for eyeballing
// layout changes without going through the quiz flow.
func main() {
	inputPath := flag.String("input", "", "Path to payload JSON (omit to render edge-case fixtures)")
	outputPath := flag.String("output", "report.pdf", "Output PDF path")
	fixtureDir := flag.String("fixture-dir", ".", "Directory for edge-case fixture PDFs")
	flag.Parse()

	if *inputPath != "" {
		renderOne(*inputPath, *outputPath)
		return
	}

	// Band boundaries: 24/25 is the low/mid edge, 74/75 the mid/high
	// edge and the addendum threshold.
	for _, pct := range []int{24, 25, 74, 75} {
		p := fixturePayload(pct)
		out, err := report.Build(p)
		if err != nil {
			log.Fatalf("render fixture %d: %v", pct, err)
		}
		path := filepath.Join(*fixtureDir, fmt.Sprintf("profile-edge-%d.pdf", pct))
		if err := os.WriteFile(path, out, 0o644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		log.Printf("wrote %s (%d bytes)", path, len(out))
	}
}

func renderOne(inputPath, outputPath string) {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	var p report.Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Fatalf("decode payload JSON: %v", err)
	}
	out, err := report.Build(p)
	if err != nil {
		log.Fatalf("render report: %v", err)
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
	log.Printf("wrote %s (%d bytes)", outputPath, len(out))
}

// fixturePayload puts every category at the given percentage so each
// deep-dive page shows the same band treatment.
func fixturePayload(pct int) report.Payload {
	ranked := report.RankedList{}
	for _, fid := range []string{"DST", "STR", "MAC", "KON", "MOR", "IND", "AKT", "INF", "COM", "AUF", "STA"} {
		ranked = append(ranked, scoring.Entry{ID: fid, Percent: pct})
	}
	return report.Payload{
		ReportID:    fmt.Sprintf("edge-%d", pct),
		Name:        "Testperson",
		Email:       "test@example.com",
		ProfileType: "E",
		Ranked:      ranked,
	}
}
