// Package process is the public entry point: it wires the default rule
// registry to the settings and runs post-processing over translation-unit
// dumps on disk.
package process

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/konvert-labs/retouch/internal/analysis"
	"github.com/konvert-labs/retouch/internal/config"
	"github.com/konvert-labs/retouch/internal/processor"
	"github.com/konvert-labs/retouch/internal/rules"
	"github.com/konvert-labs/retouch/internal/syntax"
	"github.com/konvert-labs/retouch/internal/unit"
)

// dumpSuffix is what the converter names its translation-unit dumps.
const dumpSuffix = ".unit.yaml"

// Runner applies the post-processing pass to unit dumps. Build it once and
// reuse it across any number of files.
type Runner struct {
	processor *processor.Processor
	settings  *config.Settings
}

// New builds a runner from a configuration file path; an empty path uses
// the default settings.
func New(configPath string, logger *zap.Logger) (*Runner, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return &Runner{
		processor: processor.New(rules.DefaultRegistry(), settings, logger),
		settings:  settings,
	}, nil
}

// Disable switches off the named rule for this runner.
func (r *Runner) Disable(rule string) {
	r.settings.Disabled = append(r.settings.Disabled, rule)
}

// Result is the outcome of post-processing one unit.
type Result struct {
	Path    string
	Name    string
	Output  string
	Applied []processor.AppliedFix
}

// Run post-processes an already loaded tree.
func (r *Runner) Run(root *syntax.Node, snap *analysis.Snapshot) []processor.AppliedFix {
	return r.processor.Run(root, snap)
}

// ProcessFile loads one unit dump and post-processes it.
func (r *Runner) ProcessFile(path string) (Result, error) {
	u, err := unit.Load(path)
	if err != nil {
		return Result{}, err
	}
	applied := r.processor.Run(u.Root, u.Snapshot)
	return Result{
		Path:    path,
		Name:    u.Name,
		Output:  u.Root.Text(),
		Applied: applied,
	}, nil
}

// ProcessPath processes a unit dump, or every unit dump under a directory.
func ProcessPath(ctx context.Context, logger *zap.Logger, runner *Runner, path string) ([]Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !strings.HasSuffix(path, dumpSuffix) {
			return nil, fmt.Errorf("%s is not a %s dump", path, dumpSuffix)
		}
		res, err := runner.ProcessFile(path)
		if err != nil {
			return nil, err
		}
		return []Result{res}, nil
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && strings.HasSuffix(filePath, dumpSuffix) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
	)

	var results []Result
	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		res, err := runner.ProcessFile(filePath)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing unit", zap.String("file", filePath), zap.Error(err))
			}
			return nil, err
		}
		results = append(results, res)
		_ = bar.Add(1)
	}
	fmt.Println()

	return results, nil
}

// ProcessPaths processes each given path in order.
func ProcessPaths(ctx context.Context, logger *zap.Logger, runner *Runner, paths []string) ([]Result, error) {
	var results []Result
	for _, path := range paths {
		res, err := ProcessPath(ctx, logger, runner, path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		results = append(results, res...)
	}
	return results, nil
}
