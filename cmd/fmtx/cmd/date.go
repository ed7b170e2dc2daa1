package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/formatting/foundation/core/errors"
	"github.com/msto63/formatting/foundation/core/i18n"
	"github.com/msto63/formatting/foundation/template"
	"github.com/msto63/formatting/foundation/template/datetime"
	"github.com/msto63/formatting/foundation/utils/timex"
)

type dateFlags struct {
	layout string
	locale string
}

func newDateCmd(opts *options) *cobra.Command {
	flags := &dateFlags{}

	dateCmd := &cobra.Command{
		Use:   "date",
		Short: "Datumswerte nach Layout parsen und formatieren",
		Long: `Parst und formatiert Datumswerte nach einem Layout wie "{dd}.{MM}.{yyyy}".

Tags:
  ` + strings.Join(datetime.Tags(), " ") + `

"{{" und "}}" stehen für geschweifte Klammern im Text.`,
	}

	dateCmd.PersistentFlags().StringVarP(&flags.layout, "layout", "l", "", "Layout (default: date.layout der Konfiguration)")
	dateCmd.PersistentFlags().StringVar(&flags.locale, "locale", "", "Sprache der Monats- und Wochentagsnamen")

	dateCmd.AddCommand(
		&cobra.Command{
			Use:   "parse <text>...",
			Short: "Text in einen Zeitpunkt umwandeln",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := flags.template(opts)
				if err != nil {
					return err
				}
				for _, text := range args {
					dt, err := datetime.Parse(t, text)
					if err != nil {
						return err
					}
					printResult(cmd.OutOrStdout(), text, dt.String())
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "format [zeitpunkt]...",
			Short: "Zeitpunkt nach Layout ausgeben",
			Long: `Gibt Zeitpunkte nach dem Layout aus. Ein Zeitpunkt ist "now",
ein Datum (2025-12-05), RFC 3339 oder ein Unix-Zeitstempel in Millisekunden.
Ohne Argument wird die aktuelle Zeit ausgegeben.`,
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := flags.template(opts)
				if err != nil {
					return err
				}
				if len(args) == 0 {
					args = []string{"now"}
				}
				for _, arg := range args {
					dt, err := parseInstant(arg)
					if err != nil {
						return err
					}
					text, err := datetime.Format(t, dt)
					if err != nil {
						return err
					}
					printResult(cmd.OutOrStdout(), arg, text)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "describe",
			Short: "Platzhalter des Layouts beschreiben",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := flags.template(opts)
				if err != nil {
					return err
				}
				printHeader(cmd.OutOrStdout(), t.String())
				fmt.Fprintln(cmd.OutOrStdout(), t.Describe())
				return nil
			},
		},
	)
	return dateCmd
}

// template compiles the layout for the selected locale. The locale comes
// from --locale, the configuration or the environment, in that order.
func (f *dateFlags) template(opts *options) (*template.Template, error) {
	catalog, err := opts.catalog()
	if err != nil {
		return nil, err
	}

	locale := f.locale
	if locale == "" {
		locale = opts.cfg.DateLocale()
	}
	if locale == "" {
		locale = catalog.DetectLocale(i18n.EnvironmentLocale())
	}

	ctx, err := datetime.NewContext(datetime.Options{
		Provider: catalog,
		Locale:   locale,
		Logger:   opts.logger,
	})
	if err != nil {
		return nil, err
	}

	layout := f.layout
	if layout == "" {
		layout = opts.cfg.Date.Layout
	}
	return ctx.Compile(layout)
}

// parseInstant accepts "now", a date, RFC 3339 or milliseconds since epoch
func parseInstant(s string) (timex.DateTime, error) {
	if s == "now" {
		return timex.FromTime(time.Now())
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return timex.FromTime(t)
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return timex.FromTime(t)
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return timex.FromTimestamp(ms)
	}
	return timex.DateTime{}, errors.InvalidInput(errors.ModuleDatetime, "format", s,
		"now, YYYY-MM-DD, an RFC 3339 time or milliseconds since 1970-01-01")
}
