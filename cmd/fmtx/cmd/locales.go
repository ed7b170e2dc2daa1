package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/msto63/formatting/foundation/core/i18n"
	mdwlog "github.com/msto63/formatting/foundation/core/log"
)

func newLocalesCmd(opts *options) *cobra.Command {
	var watch bool

	localesCmd := &cobra.Command{
		Use:   "locales",
		Short: "Verfügbare Sprachtabellen",
		Long: `Listet die Sprachtabellen für Monats- und Wochentagsnamen.

Zusätzliche Tabellen werden als TOML- oder YAML-Dateien aus
general.locales_dir gelesen. Mit --watch werden geänderte Dateien bis
Strg+C neu geladen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), localesTable(catalog))

			if !watch {
				return nil
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			opts.logger.Info("watching locales", mdwlog.Fields{
				"dir":      opts.cfg.General.LocalesDir,
				"debounce": opts.cfg.General.WatchDebounce.String(),
			})
			if err := catalog.Watch(ctx, opts.cfg.General.WatchDebounce.Duration); err != context.Canceled {
				return err
			}
			return nil
		},
	}

	localesCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Dateien überwachen und neu laden")
	return localesCmd
}

func localesTable(catalog *i18n.Catalog) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers("Locale", "Monate", "Wochentage", "")

	for _, locale := range catalog.Locales() {
		names, ok := catalog.NameTable(locale)
		if !ok {
			continue
		}
		marker := ""
		if locale == catalog.DefaultLocale() {
			marker = "default"
		}
		t.Row(locale,
			strings.Join(names.ShortMonths[:3], " ")+" ...",
			strings.Join(names.ShortWeekdays[:3], " ")+" ...",
			marker)
	}
	return t.String()
}
