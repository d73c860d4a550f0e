package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fenilsonani/macsweep/internal/config"
	"github.com/fenilsonani/macsweep/internal/engine"
	"github.com/fenilsonani/macsweep/internal/report"
	"github.com/fenilsonani/macsweep/internal/reporter"
	"github.com/fenilsonani/macsweep/internal/scanner"
	"github.com/fenilsonani/macsweep/internal/ui"
	"github.com/fenilsonani/macsweep/pkg/utils"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath string
	category   string
	scanPath   string
	minSize    string
	outputFmt  string
	outputFile string
	confirm    bool
	secure     bool
	smart      bool
	reportPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "macsweep",
	Short: "Reclaim disk space on macOS",
	Long: `macsweep scans the usual macOS junk drawers -- caches, logs, build
artifacts, duplicates, forgotten downloads -- and removes what you approve.
Run without a subcommand for the interactive interface.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return ui.Run(engine.New(buildOptions(cfg)))
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for reclaimable space without deleting anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		opts := buildOptions(cfg)

		var results []reporter.CategoryResult
		if category != "" {
			// A named category runs even when the config disables it.
			lookup := opts
			lookup.Disabled = nil
			c, ok := scanner.Find(category, lookup)
			if !ok {
				return fmt.Errorf("unknown category: %s", category)
			}
			fmt.Fprintf(os.Stderr, "Scanning %s...\n", c.Label())
			results = []reporter.CategoryResult{{
				Name:       c.Name(),
				Label:      c.Label(),
				ReportOnly: scanner.ReportOnly(c.Name()),
				Result:     c.Scan(),
			}}
		} else {
			e := engine.New(opts)
			ch, _ := e.StartScan(false)
			e.Drain(ch, func(msg engine.Msg) {
				if p, ok := msg.(engine.Progress); ok {
					fmt.Fprintf(os.Stderr, "Scanning: %s\n", p.Label)
				}
			})
			results = categoryResults(e)
		}

		format := reporter.OutputFormat(outputFmt)
		if outputFile != "" {
			if err := reporter.SaveToFile(results, outputFile, format); err != nil {
				return fmt.Errorf("failed to save report: %w", err)
			}
			fmt.Printf("Report saved to: %s\n", outputFile)
			return nil
		}
		return reporter.New(os.Stdout, format).Report(results)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete reclaimable files",
	Long: `Scans, then deletes everything in the selected categories after a
confirmation prompt (skipped with --confirm). With --smart only the safe
categories (caches, logs, trash and the like) are touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		e := engine.New(buildOptions(cfg))
		if category != "" {
			if e.Find(category) == nil {
				return fmt.Errorf("unknown category: %s", category)
			}
			for _, cat := range e.Categories {
				cat.Selected = cat.Name == category
			}
		}

		fmt.Fprintln(os.Stderr, "Scanning...")
		ch, _ := e.StartScan(smart)
		e.Drain(ch, nil)

		if category != "" {
			// StartScan with smart rewrites the selection; reapply ours.
			for _, cat := range e.Categories {
				cat.Selected = cat.Name == category
			}
		}

		batch := e.PrepareDelete()
		if batch.Count == 0 {
			fmt.Println("Nothing to clean.")
			return nil
		}

		for _, line := range batch.Categories {
			fmt.Println("  " + line)
		}
		fmt.Printf("Total: %d items, %s\n", batch.Count, utils.FormatBytes(batch.TotalBytes))

		if !confirm {
			fmt.Print("\nProceed with cleanup? (y/N): ")
			var response string
			fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Cleanup cancelled, nothing was deleted.")
				return nil
			}
		}

		ch, _ = e.StartDelete(batch, secure)
		e.Drain(ch, func(msg engine.Msg) {
			switch m := msg.(type) {
			case engine.ItemDeleted:
				fmt.Printf("Deleted %s (%s)\n", m.Path, utils.FormatBytes(m.Freed))
			case engine.ItemFailed:
				fmt.Fprintf(os.Stderr, "Failed to delete %s: %s\n", m.Path, m.Reason)
			}
		})

		fmt.Printf("\nFreed %s across %d items\n", utils.FormatBytes(e.CleanedBytes), len(e.Report))
		for _, w := range e.Warnings {
			fmt.Fprintln(os.Stderr, "Warning: "+w)
		}

		if cmd.Flags().Changed("report") || cfg.ReportPath != "" {
			path := reportPath
			if path == "" {
				path = cfg.ReportPath
			}
			if path == "" {
				path = report.DefaultPath()
			}
			if err := report.Export(path, e.CleanedBytes, e.Report); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Printf("Report written to: %s\n", path)
		}
		return nil
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return ui.Run(engine.New(buildOptions(cfg)))
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List every category",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		for _, c := range scanner.All(scanner.Options{}) {
			name := c.Name()
			var flags string
			if scanner.ReportOnly(name) {
				flags += "  [report only]"
			}
			if scanner.IsSafe(name) {
				flags += "  [safe]"
			}
			if cfg.CategoryDisabled(name) {
				flags += "  [disabled]"
			}
			fmt.Printf("  %-22s %s%s\n", name, c.Label(), flags)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	scanCmd.Flags().StringVar(&category, "category", "", "scan only this category")
	scanCmd.Flags().StringVar(&scanPath, "path", "", "root for path-scoped categories")
	scanCmd.Flags().StringVar(&minSize, "min-size", "", "large-files floor, e.g. 250MB")
	scanCmd.Flags().StringVar(&outputFmt, "format", "summary", "output format (summary, table, json, yaml)")
	scanCmd.Flags().StringVar(&outputFile, "file", "", "save report to file")

	cleanCmd.Flags().StringVar(&category, "category", "", "clean only this category")
	cleanCmd.Flags().StringVar(&scanPath, "path", "", "root for path-scoped categories")
	cleanCmd.Flags().StringVar(&minSize, "min-size", "", "large-files floor, e.g. 250MB")
	cleanCmd.Flags().BoolVar(&confirm, "confirm", false, "skip the confirmation prompt")
	cleanCmd.Flags().BoolVar(&secure, "secure", false, "overwrite files before removal")
	cleanCmd.Flags().BoolVar(&smart, "smart", false, "clean only the safe categories")
	cleanCmd.Flags().StringVar(&reportPath, "report", "", "write a cleanup report to this path")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	cfgPath, err := config.EnsureConfigExists()
	if err != nil {
		return nil, err
	}
	return config.Load(cfgPath)
}

// buildOptions merges the config file with command-line overrides.
func buildOptions(cfg *config.Config) scanner.Options {
	opts := scanner.Options{
		Root:              cfg.ScanPath,
		LargeFileMinBytes: cfg.LargeFileMinBytes(),
		DuplicateRoots:    cfg.DuplicateRoots,
		DuplicateMinBytes: cfg.DuplicateMinBytes(),
		DuplicateMaxBytes: cfg.DuplicateMaxBytes(),
		Disabled:          cfg.DisabledCategories,
	}
	if scanPath != "" {
		opts.Root = scanPath
	}
	if minSize != "" {
		if n, err := utils.ParseSize(minSize); err == nil {
			opts.LargeFileMinBytes = n
		}
	}
	return opts
}

// categoryResults converts engine state back into reportable results.
func categoryResults(e *engine.Engine) []reporter.CategoryResult {
	var results []reporter.CategoryResult
	for _, cat := range e.Categories {
		if !cat.Scanned {
			continue
		}
		res := scanner.NewScanResult()
		for _, item := range cat.Items {
			res.AddEntry(item.Entry.Path, item.Entry.SizeBytes)
		}
		res.Errors = cat.Errors
		results = append(results, reporter.CategoryResult{
			Name:       cat.Name,
			Label:      cat.Label,
			ReportOnly: cat.ReportOnly,
			Result:     res,
		})
	}
	return results
}
