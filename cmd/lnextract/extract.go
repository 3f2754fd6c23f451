package main

import (
	"fmt"
	"path/filepath"
	"strings"

	linkedin "github.com/SACCSF/NeonCRMLinkedIn"
	"github.com/SACCSF/NeonCRMLinkedIn/extract"
	"github.com/SACCSF/NeonCRMLinkedIn/fs"
	"github.com/SACCSF/NeonCRMLinkedIn/goquery"
	linkslog "github.com/SACCSF/NeonCRMLinkedIn/slog"
)

// extractFlags are the flags shared by the persons and companies commands.
type extractFlags struct {
	Dir            string `arg:"" help:"Directory containing saved HTML snapshots"`
	Format         string `enum:"json,csv" default:"json" help:"Output format"`
	Output         string `short:"o" help:"Output file path (default: <dir>/<dirname>.<format>)"`
	Index          []int  `help:"Pin payload lookup to specific code-block indices instead of scanning"`
	DebugDir       string `help:"Write a raw payload dump per document to this directory"`
	PerDocument    bool   `help:"Write one output file next to each input document instead of one aggregate"`
	KeepDuplicates bool   `help:"Process snapshots with identical contents more than once"`
}

// PersonsCmd extracts person rows using the threshold-drop policy.
type PersonsCmd struct {
	extractFlags
	Threshold int `default:"2" help:"Drop rows with more than this many missing fields"`
}

// Run executes the persons command.
func (c *PersonsCmd) Run(deps *Dependencies) error {
	return runExtract(deps, c.extractFlags, linkedin.PersonVariant, linkedin.DropThreshold{Max: c.Threshold})
}

// CompaniesCmd extracts company rows using the best-row policy.
type CompaniesCmd struct {
	extractFlags
}

// Run executes the companies command.
func (c *CompaniesCmd) Run(deps *Dependencies) error {
	return runExtract(deps, c.extractFlags, linkedin.CompanyVariant, linkedin.BestRow{})
}

func runExtract(deps *Dependencies, flags extractFlags, variant linkedin.Variant, selector linkedin.RowSelector) error {
	paths, err := fs.Discover(flags.Dir)
	if err != nil {
		return err
	}

	var extractor linkedin.DocumentExtractor = &extract.Pipeline{
		Blocks:   goquery.NewBlockExtractor(),
		Locator:  linkedin.Locator{Indices: flags.Index},
		Variant:  variant,
		Selector: selector,
		DebugDir: flags.DebugDir,
	}
	extractor = linkslog.NewLoggingExtractor(extractor, deps.Logger)

	if flags.PerDocument {
		return runPerDocument(deps, flags, variant, extractor, paths)
	}

	runner := &extract.Runner{
		Extractor:      extractor,
		KeepDuplicates: flags.KeepDuplicates,
		Logger:         deps.Logger,
	}
	result, err := runner.Run(deps.Ctx, paths)
	if err != nil {
		return err
	}

	out := outputPath(flags)
	if err := writeTable(out, flags.Format, variant, result.Rows); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "wrote %d rows from %d documents to %s\n", len(result.Rows), result.Documents, out)
	if len(result.Skipped) > 0 {
		fmt.Fprintf(deps.Stdout, "skipped %d duplicate snapshots\n", len(result.Skipped))
	}
	return nil
}

// runPerDocument writes one output file next to each input document.
func runPerDocument(deps *Dependencies, flags extractFlags, variant linkedin.Variant, extractor linkedin.DocumentExtractor, paths []string) error {
	for _, path := range paths {
		rows, err := extractor.ExtractDocument(deps.Ctx, path)
		if err != nil {
			return err
		}
		out := strings.TrimSuffix(path, filepath.Ext(path)) + "." + flags.Format
		if err := writeTable(out, flags.Format, variant, rows); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "wrote %d rows to %s\n", len(rows), out)
	}
	return nil
}

func writeTable(path, format string, variant linkedin.Variant, rows []linkedin.Row) error {
	if format == "csv" {
		return fs.WriteCSV(path, variant.Columns(), rows)
	}
	return fs.WriteJSON(path, rows)
}

// outputPath returns the aggregate output location: the directory-named
// file inside the input directory unless overridden.
func outputPath(flags extractFlags) string {
	if flags.Output != "" {
		return flags.Output
	}
	base := filepath.Base(filepath.Clean(flags.Dir))
	return filepath.Join(flags.Dir, base+"."+flags.Format)
}
