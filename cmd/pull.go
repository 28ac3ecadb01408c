package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/config"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/export"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/fetcher"
	"github.com/USAID-OHA-SI/visiblespectrum/pkg/naomi"
)

type pullFlags struct {
	countries  string
	indicators string
	ageGroups  string
	sexes      string
	periods    string
	maxLevel   string
	wait       float64
	verbose    bool
	export     bool
	format     string
	out        string
}

var pullOpts pullFlags

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch estimates for a set of filters",
	Long: `Fetch Naomi estimates for every combination of the given filters.

Each filter takes a comma-separated list or a single keyword:
  --countries   all | dreams | Kenya,Malawi,...
  --indicators  all | "no anc" | "HIV prevalence",PLHIV,...
  --age-groups  all | standard | 15-49,50+,...
  --sex         all | female,male,both
  --periods     recent | all | "December 2023",...`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !cmd.Flags().Changed("wait") {
			pullOpts.wait = cfg.Naomi.WaitSecs
		}
		return runPull(cmd.Context(), cmd.OutOrStdout(), cfg, pullOpts)
	},
}

func init() {
	f := pullCmd.Flags()
	f.StringVar(&pullOpts.countries, "countries", "all", "countries or keyword (all, dreams)")
	f.StringVar(&pullOpts.indicators, "indicators", "all", "indicators or keyword (all, no anc)")
	f.StringVar(&pullOpts.ageGroups, "age-groups", "standard", "age groups or keyword (all, standard)")
	f.StringVar(&pullOpts.sexes, "sex", "all", "sex options or keyword (all)")
	f.StringVar(&pullOpts.periods, "periods", "recent", "periods or keyword (recent, all)")
	f.StringVar(&pullOpts.maxLevel, "max-level", "none", "deepest area level to request, or none")
	f.Float64Var(&pullOpts.wait, "wait", 0, "seconds to pause between requests (default from config)")
	f.BoolVar(&pullOpts.verbose, "verbose", false, "log a confirmation once filters validate")
	f.BoolVar(&pullOpts.export, "export", false, "write results to disk")
	f.StringVar(&pullOpts.format, "format", "", "export format: csv, xlsx or sqlite (default from config)")
	f.StringVar(&pullOpts.out, "out", "", "export path (default from config)")
	rootCmd.AddCommand(pullCmd)
}

func runPull(ctx context.Context, out io.Writer, cfg *config.Config, pf pullFlags) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if pf.wait < 0 {
		return fmt.Errorf("--wait must be >= 0, got %v", pf.wait)
	}

	vocab, err := loadVocabulary(cfg.Reference)
	if err != nil {
		return err
	}

	httpFetcher := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:  cfg.Naomi.UserAgent,
		Timeout:    cfg.Naomi.Timeout(),
		RatePerSec: cfg.Naomi.RatePerSec,
	})
	opts := []naomi.Option{
		naomi.WithFetcher(httpFetcher),
		naomi.WithBaseURL(cfg.Naomi.BaseURL),
	}
	if pf.export {
		w, err := newExportWriter(cfg.Export, pf)
		if err != nil {
			return err
		}
		opts = append(opts, naomi.WithExporter(w))
	}
	client := naomi.NewClient(vocab, opts...)

	res, err := client.Pull(ctx, naomi.Query{
		Countries:  splitList(pf.countries),
		Indicators: splitList(pf.indicators),
		AgeGroups:  splitList(pf.ageGroups),
		Sexes:      splitList(pf.sexes),
		Periods:    splitList(pf.periods),
		MaxLevel:   pf.maxLevel,
		Verbose:    pf.verbose,
		Export:     pf.export,
		Wait:       time.Duration(pf.wait * float64(time.Second)),
	})
	if res != nil {
		printSummary(out, res)
	}
	return err
}

func newExportWriter(ec config.ExportConfig, pf pullFlags) (*export.Writer, error) {
	format := ec.Format
	if pf.format != "" {
		format = pf.format
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	path := ec.Path
	if pf.out != "" {
		path = pf.out
	} else if path == export.DefaultPath && f != export.FormatCSV {
		path = strings.TrimSuffix(path, ".csv") + "." + extension(f)
	}
	return export.New(export.Options{
		Format:       f,
		Path:         path,
		FailuresPath: ec.FailuresPath,
	})
}

func extension(f export.Format) string {
	if f == export.FormatSQLite {
		return "db"
	}
	return string(f)
}

func splitList(s string) []string {
	return strings.Split(s, ",")
}

func printSummary(out io.Writer, res *naomi.Result) {
	fmt.Fprintf(out, "requests: %d  rows: %d  failures: %d\n", res.Requests, res.Data.Len(), len(res.Failures))
	for _, f := range res.Failures {
		fmt.Fprintf(out, "  failed %s / %s / %s / %s: status %d (%s)\n",
			f.IndicatorCode, f.AgeGroup, f.Sex, f.Period, f.Status, f.Reason)
	}
}
