package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/konvert-labs/retouch/formatter"
	"github.com/konvert-labs/retouch/process"
)

var (
	ignoreRules string
	dryRun      bool
	outDir      string
)

var processCmd = &cobra.Command{
	Use:   "process [paths...]",
	Short: "Post-process translation-unit dumps",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide unit dump or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		runner, err := process.New(cfgFile, logger)
		if err != nil {
			logger.Fatal("Failed to initialize runner", zap.Error(err))
		}

		if ignoreRules != "" {
			for _, rule := range strings.Split(ignoreRules, ",") {
				runner.Disable(strings.TrimSpace(rule))
			}
		}

		runProcess(ctx, logger, runner, args, dryRun, outDir)
	},
}

func init() {
	processCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rules to ignore")
	processCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report fixes without writing cleaned sources")
	processCmd.Flags().StringVarP(&outDir, "output", "o", "", "Directory for cleaned sources (defaults to next to each dump)")
}

func runProcess(ctx context.Context, logger *zap.Logger, runner *process.Runner, paths []string, dryRun bool, outDir string) {
	results, err := process.ProcessPaths(ctx, logger, runner, paths)
	if err != nil {
		logger.Error("Error processing paths", zap.Error(err))
		os.Exit(1)
	}

	fmt.Println(formatter.FormatResults(results))

	if dryRun {
		return
	}
	for _, res := range results {
		if err := writeCleaned(res, outDir); err != nil {
			logger.Error("Error writing cleaned source",
				zap.String("unit", res.Path), zap.Error(err))
			os.Exit(1)
		}
	}
}

// writeCleaned writes the post-processed source next to its dump, or into
// outDir when one is given. The file name is the unit's own name, falling
// back to the dump name with the dump suffix stripped.
func writeCleaned(res process.Result, outDir string) error {
	name := res.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(res.Path), ".unit.yaml")
	}
	dir := outDir
	if dir == "" {
		dir = filepath.Dir(res.Path)
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), []byte(res.Output), 0o644)
}
