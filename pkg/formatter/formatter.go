package formatter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"github.com/siyuan-infoblox/order-imports/pkg/config"
	"github.com/siyuan-infoblox/order-imports/pkg/errors"
	"github.com/siyuan-infoblox/order-imports/pkg/organizer"
	"github.com/siyuan-infoblox/order-imports/pkg/utils"
)

type FormatterConfig struct {
	Resolver *config.Resolver // organizer configuration per file
	InPlace  bool             // whether to modify files in place
	List     bool             // print the paths of files whose imports change
	Diff     bool             // print a unified diff instead of the import block
	Exclude  []string         // doublestar patterns skipped in directories
	Jobs     int              // files organized concurrently, 0 means GOMAXPROCS
	Out      io.Writer        // destination of results, os.Stdout when nil
	Logger   *slog.Logger     // slog.Default() when nil
}

// Formatter organizes the imports of files on disk
type Formatter struct {
	config FormatterConfig
}

// fileResult is the outcome of organizing one file
type fileResult struct {
	path    string
	changed bool
	output  string // text to print for the file
	err     error
}

// New creates a new Formatter
func New(cfg FormatterConfig) *Formatter {
	if cfg.Resolver == nil {
		cfg.Resolver = config.NewResolver(organizer.DefaultConfig())
	}
	return &Formatter{config: cfg}
}

func (f *Formatter) getResolver() *config.Resolver {
	return f.config.Resolver
}

func (f *Formatter) getOut() io.Writer {
	if f.config.Out == nil {
		return os.Stdout
	}
	return f.config.Out
}

func (f *Formatter) getLogger() *slog.Logger {
	if f.config.Logger == nil {
		return slog.Default()
	}
	return f.config.Logger
}

func (f *Formatter) getJobs() int {
	if f.config.Jobs <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return f.config.Jobs
}

func (f *Formatter) getInPlace() bool {
	return f.config.InPlace
}

// Organize returns src with its import block organized using the
// configuration that applies to path
func (f *Formatter) Organize(path string, src []byte) ([]byte, *organizer.Edit, error) {
	cfg, err := f.getResolver().Resolve(path)
	if err != nil {
		return src, nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToFormatFile, err)
	}
	text := string(src)
	edit := organizer.Organize(text, cfg)
	if edit == nil {
		return src, nil, nil
	}
	return []byte(edit.Apply(text)), edit, nil
}

// WriteFile replaces the content of path keeping its permissions
func WriteFile(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	return nil
}

// processFile organizes a single file and renders what should be printed for it
func (f *Formatter) processFile(path string, verbose bool) fileResult {
	res := fileResult{path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		res.err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
		return res
	}

	out, edit, err := f.Organize(path, src)
	if err != nil {
		res.err = err
		return res
	}
	res.changed = string(out) != string(src)
	f.getLogger().Debug("organized imports", "path", path, "changed", res.changed, "block", edit != nil)

	if res.changed && f.getInPlace() {
		if err := WriteFile(path, out); err != nil {
			res.err = err
			return res
		}
	}

	switch {
	case f.config.List:
		if res.changed {
			res.output = path + "\n"
		}
	case f.config.Diff:
		if res.changed {
			res.output, res.err = unifiedDiff(path, string(src), string(out))
		}
	case verbose && !f.getInPlace():
		// For stdout output, show only the organized import block
		if edit != nil {
			res.output = edit.Text + "\n"
		}
	}
	return res
}

func unifiedDiff(path, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + strings.TrimPrefix(path, "/"),
		ToFile:   "b/" + strings.TrimPrefix(path, "/"),
		Context:  3,
	})
}

// ProcessFileWithOutput processes a source file with optional output control
func (f *Formatter) ProcessFileWithOutput(path string, verbose bool) error {
	res := f.processFile(path, verbose)
	if res.err != nil {
		return res.err
	}
	fmt.Fprint(f.getOut(), res.output)
	return nil
}

// ProcessFile processes a source file and organizes its imports
func (f *Formatter) ProcessFile(path string) error {
	return f.ProcessFileWithOutput(path, true)
}

// ProcessFiles organizes multiple files concurrently. Results are printed in
// the order of filePaths; a failing file does not stop the others.
func (f *Formatter) ProcessFiles(ctx context.Context, filePaths []string) error {
	results := make([]fileResult, len(filePaths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(f.getJobs(), max(len(filePaths), 1)))
	for i, path := range filePaths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = f.processFile(path, false)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := f.getOut()
	processedCount, changedCount, errorCount := 0, 0, 0
	for _, res := range results {
		if res.err != nil {
			fmt.Fprintln(out, color.RedString(errors.InfoMsgErrorProcessing, res.path, res.err))
			errorCount++
			continue
		}
		processedCount++
		if res.changed {
			changedCount++
		}
		fmt.Fprint(out, res.output)
		if res.changed && f.getInPlace() && !f.config.List {
			fmt.Fprintf(out, errors.InfoMsgProcessedFiles+"\n", res.path)
		}
	}

	fmt.Fprintf(out, errors.InfoMsgProcessedCount, processedCount)
	fmt.Fprintf(out, errors.InfoMsgChangedCount, changedCount)
	if errorCount > 0 {
		fmt.Fprint(out, color.RedString(errors.InfoMsgErrorCount, errorCount))
	}
	fmt.Fprintln(out)

	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	return nil
}

// ProcessPath processes a file or directory path
func (f *Formatter) ProcessPath(ctx context.Context, path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		return f.ProcessFile(path)
	}

	out := f.getOut()
	// Printing every import block of a tree is not useful
	if !f.getInPlace() && !f.config.List && !f.config.Diff {
		fmt.Fprintln(out, color.YellowString(errors.WarnMsgProcessingDirWithoutInPlace))
		fmt.Fprintf(out, errors.InfoMsgUseInPlaceFlag+"\n\n")
	}

	files, err := utils.FindSourceFiles(path, f.config.Exclude)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindSourceFiles, err)
	}

	if len(files) == 0 {
		fmt.Fprintf(out, errors.InfoMsgNoSourceFilesFound+"\n", path)
		return nil
	}

	fmt.Fprintf(out, errors.InfoMsgFoundSourceFiles+"\n\n", len(files), path)
	f.getLogger().Debug("processing directory", "path", path, "files", len(files), "jobs", f.getJobs())

	return f.ProcessFiles(ctx, files)
}
