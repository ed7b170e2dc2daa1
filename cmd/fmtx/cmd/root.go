package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/formatting/foundation/core/error"
	"github.com/msto63/formatting/foundation/core/i18n"
	mdwlog "github.com/msto63/formatting/foundation/core/log"
	"github.com/msto63/formatting/pkg/core/config"
	"github.com/msto63/formatting/pkg/core/logging"
)

// options is shared by all subcommands and filled before they run
type options struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *mdwlog.Logger
}

// NewRootCmd builds the fmtx command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "fmtx",
		Short: "fmtx - Zahlen und Datumswerte parsen und formatieren",
		Long: `fmtx liest und schreibt Zahlen und Datumswerte nach Vorlagen.

Befehle:
  number    - Zahlen parsen und formatieren
  round     - Dezimalzahlen runden
  date      - Datumswerte nach Layout parsen und formatieren
  calendar  - Gregorianische und ISO-Felder eines Datums
  locales   - Verfügbare Sprachtabellen`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "Config-Datei (default: $FMTX_CONFIG oder ./fmtx.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose Output")

	rootCmd.AddCommand(
		newNumberCmd(opts),
		newRoundCmd(opts),
		newDateCmd(opts),
		newCalendarCmd(opts),
		newLocalesCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

// load reads the configuration and creates the logger. Without --config
// and FMTX_CONFIG a missing file is not an error.
func (o *options) load(cmd *cobra.Command) error {
	var err error
	switch {
	case o.cfgFile != "":
		o.cfg, err = config.Load(o.cfgFile)
	default:
		o.cfg, err = config.LoadFromEnv()
		if mdwerror.HasCode(err, mdwerror.CodeMissingConfig) && os.Getenv(config.EnvConfigPath) == "" {
			o.cfg, err = config.Default(), nil
		}
	}
	if err != nil {
		return err
	}

	lc := logging.FromConfig(o.cfg, "fmtx")
	lc.Output = cmd.ErrOrStderr()
	if o.verbose {
		lc.Level = "debug"
	}
	o.logger = logging.NewLogger(lc).WithField("command", cmd.CommandPath())
	o.logger.Debug("configuration loaded", mdwlog.Field("config", o.cfgFile))
	return nil
}

// catalog returns the built-in catalog or one reading general.locales_dir
func (o *options) catalog() (*i18n.Catalog, error) {
	if o.cfg.General.LocalesDir == "" {
		return i18n.Builtin(), nil
	}
	return i18n.NewCatalog(i18n.Options{
		LocalesDir: o.cfg.General.LocalesDir,
		Logger:     o.logger,
	})
}

func printError(w io.Writer, err error) {
	code := mdwerror.GetCode(err)
	if code == mdwerror.CodeUnknown {
		fmt.Fprintf(w, "%s %v\n", errorStyle.Render("Fehler:"), err)
		return
	}
	fmt.Fprintf(w, "%s %v %s\n", errorStyle.Render("Fehler:"), err, mutedStyle.Render("["+code.String()+"]"))
}
