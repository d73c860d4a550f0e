// Package reporter renders scan results for the CLI.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/macsweep/internal/scanner"
	"github.com/fenilsonani/macsweep/pkg/utils"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// CategoryResult is one category's scan outcome for rendering.
type CategoryResult struct {
	Name       string              `json:"name" yaml:"name"`
	Label      string              `json:"label" yaml:"label"`
	ReportOnly bool                `json:"report_only" yaml:"report_only"`
	Result     *scanner.ScanResult `json:"result" yaml:"result"`
}

// Reporter handles report generation
type Reporter struct {
	writer io.Writer
	format OutputFormat
}

// New creates a new Reporter
func New(writer io.Writer, format OutputFormat) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
	}
}

// Report renders the scan results in the configured format.
func (r *Reporter) Report(results []CategoryResult) error {
	switch r.format {
	case FormatTable:
		return r.reportTable(results)
	case FormatJSON:
		return r.reportJSON(results)
	case FormatYAML:
		return r.reportYAML(results)
	case FormatSummary:
		return r.reportSummary(results)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// reportSummary prints one row per category plus the reclaimable total.
// Report-only categories are flagged and excluded from the total.
func (r *Reporter) reportSummary(results []CategoryResult) error {
	fmt.Fprintf(r.writer, "=== Summary ===\n")

	var grandTotal int64
	for _, cat := range results {
		size := utils.FormatBytes(cat.Result.TotalBytes)
		if cat.ReportOnly {
			fmt.Fprintf(r.writer, "  %-30s %s  [report only]\n", cat.Label, size)
			continue
		}
		fmt.Fprintf(r.writer, "  %-30s %s\n", cat.Label, size)
		grandTotal += cat.Result.TotalBytes
	}

	fmt.Fprintf(r.writer, "  %-30s %s\n", "Total reclaimable:", utils.FormatBytes(grandTotal))

	for _, cat := range results {
		for _, msg := range cat.Result.Errors {
			fmt.Fprintf(r.writer, "Warning: %s\n", msg)
		}
	}

	return nil
}

// reportTable prints every entry with its size and category.
func (r *Reporter) reportTable(results []CategoryResult) error {
	fmt.Fprintf(r.writer, "%-70s | %-12s | %s\n", "Path", "Size", "Category")

	var total int64
	var count int
	for _, cat := range results {
		for _, entry := range cat.Result.Entries {
			path := entry.Path
			if len(path) > 70 {
				path = "..." + path[len(path)-67:]
			}
			fmt.Fprintf(r.writer, "%-70s | %-12s | %s\n",
				path, utils.FormatBytes(entry.SizeBytes), cat.Name)
			count++
			total += entry.SizeBytes
		}
	}

	fmt.Fprintf(r.writer, "\nTotal: %d items, %s\n", count, utils.FormatBytes(total))
	return nil
}

type machineReport struct {
	Timestamp          string           `json:"timestamp" yaml:"timestamp"`
	TotalBytes         int64            `json:"total_bytes" yaml:"total_bytes"`
	TotalSizeFormatted string           `json:"total_size_formatted" yaml:"total_size_formatted"`
	Categories         []CategoryResult `json:"categories" yaml:"categories"`
}

func buildMachineReport(results []CategoryResult) machineReport {
	var total int64
	for _, cat := range results {
		if !cat.ReportOnly {
			total += cat.Result.TotalBytes
		}
	}
	return machineReport{
		Timestamp:          time.Now().Format(time.RFC3339),
		TotalBytes:         total,
		TotalSizeFormatted: utils.FormatBytes(total),
		Categories:         results,
	}
}

// reportJSON generates a JSON report
func (r *Reporter) reportJSON(results []CategoryResult) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildMachineReport(results))
}

// reportYAML generates a YAML report
func (r *Reporter) reportYAML(results []CategoryResult) error {
	encoder := yaml.NewEncoder(r.writer)
	defer encoder.Close()
	return encoder.Encode(buildMachineReport(results))
}

// SaveToFile saves the report to a file
func SaveToFile(results []CategoryResult, path string, format OutputFormat) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reporter := New(file, format)
	return reporter.Report(results)
}
