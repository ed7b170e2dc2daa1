package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/msto63/formatting/foundation/core/errors"
	mdwlog "github.com/msto63/formatting/foundation/core/log"
	"github.com/msto63/formatting/foundation/utils/mathx"
)

func newRoundCmd(opts *options) *cobra.Command {
	var (
		precision int
		modeName  string
		all       bool
	)

	roundCmd := &cobra.Command{
		Use:   "round <zahl>...",
		Short: "Dezimalzahlen runden",
		Long: `Rundet Dezimalzahlen auf eine Anzahl Nachkommastellen.

Ein negativer Wert für --precision rundet auf Zehner, Hunderter usw.
Mit --all werden alle Rundungsmodi nebeneinander gezeigt.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]decimal.Decimal, len(args))
			for i, arg := range args {
				v, err := decimal.NewFromString(arg)
				if err != nil {
					return errors.InvalidInput(errors.ModuleMathx, "round", arg, "a decimal number")
				}
				values[i] = v
			}

			if all {
				fmt.Fprintln(cmd.OutOrStdout(), roundingTable(args, values, precision))
				return nil
			}

			mode := mathx.DefaultRoundingOption.Mode
			if modeName != "" {
				var err error
				if mode, err = mathx.ParseRoundingMode(modeName); err != nil {
					return err
				}
			}
			opts.logger.Debug("rounding", mdwlog.Fields{"mode": mode.String(), "precision": precision})

			for i, v := range values {
				printResult(cmd.OutOrStdout(), args[i], mathx.RoundDecimal(v, precision, mode).String())
			}
			return nil
		},
	}

	roundCmd.Flags().IntVarP(&precision, "precision", "p", 0, "Anzahl Nachkommastellen")
	roundCmd.Flags().StringVarP(&modeName, "mode", "m", "", "Rundungsmodus (default: HalfExpand)")
	roundCmd.Flags().BoolVar(&all, "all", false, "Alle Rundungsmodi zeigen")
	return roundCmd
}

func roundingTable(args []string, values []decimal.Decimal, precision int) string {
	headers := []string{"Modus"}
	headers = append(headers, args...)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...)

	for _, mode := range mathx.RoundingModes {
		row := []string{mode.String()}
		for _, v := range values {
			row = append(row, mathx.RoundDecimal(v, precision, mode).String())
		}
		t.Row(row...)
	}
	return t.String()
}
