package cmd

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/msto63/formatting/foundation/core/errors"
	mdwlog "github.com/msto63/formatting/foundation/core/log"
	"github.com/msto63/formatting/foundation/utils/numberx"
	"github.com/msto63/formatting/pkg/core/config"
)

type numberFlags struct {
	preset       string
	formatCode   string
	roundingMode string
	label        string
}

func newNumberCmd(opts *options) *cobra.Command {
	flags := &numberFlags{}

	numberCmd := &cobra.Command{
		Use:   "number",
		Short: "Zahlen parsen und formatieren",
		Long: `Parst und formatiert Zahlen nach dem Zahlenformat der Konfiguration.

Mit --preset oder --format-code wird das Format für einen Aufruf ersetzt:
  fmtx number format --preset german 1234.5
  fmtx number parse --format-code "#,##0.00" 1,234.50`,
	}

	numberCmd.PersistentFlags().StringVar(&flags.preset, "preset", "",
		"Zahlenformat ("+strings.Join(config.Presets(), ", ")+")")
	numberCmd.PersistentFlags().StringVar(&flags.formatCode, "format-code", "", "Zahlenformat als Format-Code, z.B. \"#,##0.00\"")
	numberCmd.PersistentFlags().StringVar(&flags.roundingMode, "rounding-mode", "", "Rundungsmodus beim Formatieren")
	numberCmd.PersistentFlags().StringVar(&flags.label, "label", "#value", "Bezeichnung in Fehlermeldungen")

	numberCmd.AddCommand(
		&cobra.Command{
			Use:   "parse <text>...",
			Short: "Text in eine Zahl umwandeln",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				codec, err := flags.codec(opts)
				if err != nil {
					return err
				}
				for _, text := range args {
					v, err := codec.ParseDecimal(text)
					if err != nil {
						return err
					}
					printResult(cmd.OutOrStdout(), text, v.String())
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "format <zahl>...",
			Short: "Zahl als Text ausgeben",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				codec, err := flags.codec(opts)
				if err != nil {
					return err
				}
				for _, arg := range args {
					v, err := decimal.NewFromString(arg)
					if err != nil {
						return errors.InvalidInput(errors.ModuleNumberx, "format", arg, "a decimal number like -1234.5 or 1.5e3")
					}
					printResult(cmd.OutOrStdout(), arg, codec.FormatDecimal(v))
				}
				return nil
			},
		},
	)
	return numberCmd
}

// codec applies the flags on top of the number section of the configuration
func (f *numberFlags) codec(opts *options) (*numberx.Codec, error) {
	cfg := *opts.cfg
	if f.preset != "" {
		cfg.Number.Preset = f.preset
		cfg.Number.FormatCode = ""
	}
	if f.formatCode != "" {
		cfg.Number.FormatCode = f.formatCode
	}
	if f.roundingMode != "" {
		cfg.Number.RoundingMode = f.roundingMode
	}

	d, err := cfg.NumberDescriptor()
	if err != nil {
		return nil, err
	}
	opts.logger.Debug("number format", mdwlog.Fields{
		"preset":      cfg.Number.Preset,
		"format_code": cfg.Number.FormatCode,
	})
	return numberx.NewCodec(d, f.label)
}
