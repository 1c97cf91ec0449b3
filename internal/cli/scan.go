package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackscout/pkg/cache"
	"github.com/matzehuels/stackscout/pkg/detect"
	"github.com/matzehuels/stackscout/pkg/detect/golang"
	"github.com/matzehuels/stackscout/pkg/detect/java"
	"github.com/matzehuels/stackscout/pkg/detect/javascript"
	"github.com/matzehuels/stackscout/pkg/detect/php"
	"github.com/matzehuels/stackscout/pkg/detect/python"
	"github.com/matzehuels/stackscout/pkg/detect/rust"
	"github.com/matzehuels/stackscout/pkg/report"
)

// defaultCacheTTL bounds how long a cached report is reused. The key already
// invalidates on manifest edits; the TTL guards against rule-table updates
// between tool versions.
const defaultCacheTTL = 24 * time.Hour

// adapters is the list of supported ecosystem analyzers.
func adapters() []detect.Adapter {
	return []detect.Adapter{
		javascript.New(),
		python.New(),
		rust.New(),
		golang.New(),
		java.New(),
		php.New(),
	}
}

// scanOpts holds the command-line flags for the scan command.
type scanOpts struct {
	output  string // output file path (stdout if empty)
	refresh bool   // bypass the report cache
	noCache bool   // disable the cache entirely
}

// newScanCmd creates the scan command.
func newScanCmd() *cobra.Command {
	var opts scanOpts

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Analyze a project directory and report its technology stack",
		Long: `Analyze a project directory: detect its package ecosystem, parse the
manifest, identify the application framework, and classify the dependency
list into named technologies.

The report is written as JSON to stdout or to the file given with --output.

Examples:
  stackscout scan                       # analyze the current directory
  stackscout scan ./services/billing    # analyze a specific directory
  stackscout scan -o stack.json .       # write the report to a file`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runScan(cmd.Context(), root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached report exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the report cache")

	return cmd
}

func runScan(ctx context.Context, root string, opts scanOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	registry := detect.NewRegistry(adapters()...)

	store := openCache(ctx, opts.noCache)
	defer store.Close()

	rep, err := cachedAnalyze(ctx, root, registry, store, opts.refresh)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := report.ExportJSON(rep, opts.output); err != nil {
			return err
		}
		logger.Infof("Report written to %s", opts.output)
	} else {
		if err := report.WriteJSON(rep, os.Stdout); err != nil {
			return err
		}
	}

	prog.done("Analyzed %s project", rep.Detection.Ecosystem)
	return nil
}

// cachedAnalyze returns a cached report for root when the manifest is
// unchanged, otherwise runs a fresh analysis and stores the result. The key
// is derived from the detected manifest's content, so ecosystem detection
// always runs; only parsing and classification are skipped on a hit.
func cachedAnalyze(ctx context.Context, root string, registry *detect.Registry, store cache.Cache, refresh bool) (*detect.Report, error) {
	logger := loggerFromContext(ctx)

	detection, err := detect.DetectEcosystem(root)
	if err != nil {
		return nil, err
	}

	key := ""
	if len(detection.MatchedFiles) > 0 {
		if data, err := os.ReadFile(filepath.Join(root, detection.MatchedFiles[0])); err == nil {
			key = cache.ReportKey(string(detection.Ecosystem), data)
		}
	}

	if key != "" && !refresh {
		if data, ok, err := store.Get(ctx, key); err == nil && ok {
			if rep, err := report.ReadJSON(bytes.NewReader(data)); err == nil {
				logger.Debugf("Cache hit for %s", detection.MatchedFiles[0])
				return rep, nil
			}
		}
	}

	rep, err := detect.Analyze(root, registry, nil)
	if err != nil {
		return nil, err
	}

	if key != "" {
		var buf bytes.Buffer
		if err := report.WriteJSON(rep, &buf); err == nil {
			if err := store.Set(ctx, key, buf.Bytes(), defaultCacheTTL); err != nil {
				logger.Debugf("Cache store failed: %v", err)
			}
		}
	}
	return rep, nil
}

// openCache builds the report cache. Failures degrade to the null cache so
// analysis works even when the cache directory is unavailable.
func openCache(ctx context.Context, disabled bool) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err == nil {
		if store, err := cache.NewFileCache(dir); err == nil {
			return store
		}
	}
	loggerFromContext(ctx).Debugf("Report cache disabled: %v", err)
	return cache.NewNullCache()
}

// cacheDir returns the report cache directory under the user cache root.
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "stackscout"), nil
}
