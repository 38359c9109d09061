// Package cmd implements the stattab demo command: it streams synthetic
// samples into a Collector and live-paints the growing table, which is the
// quickest way to eyeball the in-place redraw behavior on a real terminal.
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/stattab/internal/config"
	"github.com/oakwood-commons/stattab/internal/window"
	"github.com/oakwood-commons/stattab/pkg/console"
	"github.com/oakwood-commons/stattab/pkg/logger"
	"github.com/oakwood-commons/stattab/pkg/settings"
	"github.com/oakwood-commons/stattab/pkg/stattab"
)

var (
	headerList  string
	rowCount    int
	interval    time.Duration
	resetMode   string
	configPath  string
	noTitle     bool
	noPaint     bool
	finalAppend bool
	tailRows    int
	logLevel    int8
)

var rootCmd = &cobra.Command{
	Use:     settings.CliBinaryName,
	Short:   "Live-updating console statistics table demo",
	Long:    "Streams synthetic samples into a stattab Collector and repaints the table in place.",
	Version: settings.VersionInformation.BuildVersion,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		params := settings.NewCliParams()
		params.MinLogLevel = logLevel
		params.IsQuiet = noPaint

		lgr := logger.Get(params.MinLogLevel)
		lgr = logger.WithValues(lgr,
			logger.RootCommandKey, settings.CliBinaryName,
			logger.SubCommandKey, cmd.Name(),
		)
		ctx := settings.IntoContext(cmd.Context(), params)
		cmd.SetContext(logger.WithLogger(ctx, lgr))
	},
	RunE: runDemo,
}

func init() {
	rootCmd.Flags().StringVar(&headerList, "headers", "h1,h2,h3,h4,h5", "comma-separated header keys")
	rootCmd.Flags().IntVar(&rowCount, "rows", 3, "number of synthetic rows to stream")
	rootCmd.Flags().DurationVar(&interval, "interval", 300*time.Millisecond, "delay between rows")
	rootCmd.Flags().StringVar(&resetMode, "reset-mode", string(console.ResetModeLineCount), "erase strategy: line_count or terminal_change")
	rootCmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file")
	rootCmd.Flags().BoolVar(&noTitle, "no-title", false, "suppress the title block")
	rootCmd.Flags().BoolVar(&noPaint, "no-paint", false, "disable automatic painting; print the final table once")
	rootCmd.Flags().BoolVar(&finalAppend, "final", false, "append the full table once streaming ends")
	rootCmd.Flags().IntVar(&tailRows, "tail", 0, "paint only the last N rows (0 = all)")
	rootCmd.Flags().Int8Var(&logLevel, "log-level", 0, "minimum zap log level (-1 enables debug)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runDemo(cmd *cobra.Command, _ []string) error {
	log := logger.FromContext(cmd.Context())
	params, ok := settings.FromContext(cmd.Context())
	if !ok {
		params = settings.NewCliParams()
	}

	mode, err := console.ParseResetMode(resetMode)
	if err != nil {
		return err
	}

	headers := parseHeaders(headerList)
	title := stattab.DefaultTitle
	printTitle := !noTitle
	printStats := !params.IsQuiet

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if len(cfg.Headers) > 0 {
			headers = cfg.CollectorHeaders()
		}
		if cfg.Title != nil {
			title = *cfg.Title
		}
		if cfg.PrintTitle != nil {
			printTitle = *cfg.PrintTitle
		}
		if cfg.PrintStats != nil {
			printStats = *cfg.PrintStats
		}
		if cfg.ResetMode != "" {
			if mode, err = console.ParseResetMode(cfg.ResetMode); err != nil {
				return err
			}
		}
	}

	collector, err := stattab.New(headers,
		stattab.WithTitle(title),
		stattab.WithOutput(cmd.OutOrStdout()),
		stattab.WithResetMode(mode),
		stattab.WithPrintTitle(printTitle),
		stattab.WithPrintStats(printStats),
		stattab.WithRowWindow(window.Config{Tail: tailRows}),
		stattab.WithLogger(log),
	)
	if err != nil {
		return err
	}

	for r := 1; r <= rowCount; r++ {
		if err := collector.Add(syntheticSample(headers, r)); err != nil {
			return err
		}
		if interval > 0 && r < rowCount {
			time.Sleep(interval)
		}
	}

	if params.IsQuiet || finalAppend {
		collector.GetTable(true, true)
	}
	return nil
}

func parseHeaders(list string) []stattab.Header {
	parts := strings.Split(list, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return stattab.Keys(keys...)
}

// syntheticSample produces deterministic values that widen column by column,
// so the demo exercises width growth: row r yields r, r*10, r*100, ...
func syntheticSample(headers []stattab.Header, r int) stattab.Sample {
	sample := make(stattab.Sample, len(headers))
	scale := 1
	for _, h := range headers {
		sample[h.Key] = r * scale
		scale *= 10
	}
	if r%10 == 0 {
		sample[stattab.InfoKey] = fmt.Sprintf("checkpoint at row %d", r)
	}
	return sample
}
