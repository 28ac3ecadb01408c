package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/config"
	"github.com/USAID-OHA-SI/visiblespectrum/internal/reference"
)

var vocabCmd = &cobra.Command{
	Use:       "vocab [countries|dreams|indicators|ages|standard-ages|sexes|periods]",
	Short:     "List valid filter values",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"countries", "dreams", "indicators", "ages", "standard-ages", "sexes", "periods"},
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadVocabulary(cfg.Reference)
		if err != nil {
			return err
		}
		what := "countries"
		if len(args) == 1 {
			what = args[0]
		}
		return printVocab(cmd.OutOrStdout(), v, what)
	},
}

func init() {
	rootCmd.AddCommand(vocabCmd)
}

// loadVocabulary loads the reference file and applies the recent period override.
func loadVocabulary(rc config.ReferenceConfig) (*reference.Vocabulary, error) {
	v, err := reference.Load(rc.Path)
	if err != nil {
		return nil, err
	}
	return v.WithRecentPeriod(rc.RecentPeriod)
}

func printVocab(out io.Writer, v *reference.Vocabulary, what string) error {
	switch what {
	case "countries":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "COUNTRY\tISO3\tMAX LEVEL\tDREAMS")
		for _, c := range v.Countries() {
			dreams := ""
			if c.DREAMS {
				dreams = "yes"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Name, c.ISO3, strconv.Itoa(c.MaxLevel), dreams)
		}
		return tw.Flush()
	case "indicators":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "INDICATOR\tCODE\tANC")
		for _, ind := range v.Indicators() {
			anc := ""
			if ind.ANC {
				anc = "yes"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", ind.Name, ind.Code, anc)
		}
		return tw.Flush()
	case "dreams":
		return printLines(out, v.DREAMSCountries())
	case "ages":
		return printLines(out, v.AgeGroups())
	case "standard-ages":
		return printLines(out, v.StandardAgeGroups())
	case "sexes":
		return printLines(out, v.Sexes())
	case "periods":
		for _, p := range v.Periods() {
			suffix := ""
			if p == v.RecentPeriod() {
				suffix = "  (recent)"
			}
			if _, err := fmt.Fprintln(out, p+suffix); err != nil {
				return err
			}
		}
		return nil
	}
	return eris.Errorf("unknown vocabulary %q", what)
}

func printLines(out io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(out, l); err != nil {
			return err
		}
	}
	return nil
}
