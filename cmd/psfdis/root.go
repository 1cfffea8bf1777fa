package main

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ezrec/psfdis/psf"
)

const ENV_PREFIX = "PSFDIS"

// app is the state shared by the subcommands.
type app struct {
	files  afero.Fs
	config *viper.Viper
	logger hclog.Logger
}

func newRootCmd() *cobra.Command {
	return newApp(afero.NewOsFs()).rootCmd()
}

func newApp(files afero.Fs) *app {
	return &app{
		files:  files,
		config: viper.New(),
		logger: hclog.NewNullLogger(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "psfdis",
		Short: "R3000A disassembler for PSF and PS-X EXE files",
		Long: `psfdis decodes the MIPS R3000A text segment of a PlayStation
executable, either bare or packed in a PSF container, into an
assembler listing.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (yaml, toml or json)")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.BoolP("verbose", "v", false, "verbose mode")
	flags.Bool("no-crc", false, "log PSF CRC mismatches instead of failing")
	flags.Int64("max-size", 0, "largest input file in bytes (0 for the loader default)")
	a.bind(flags)

	a.config.SetEnvPrefix(ENV_PREFIX)
	a.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.config.AutomaticEnv()

	rootCmd.AddCommand(a.infoCmd())
	rootCmd.AddCommand(a.disasmCmd())
	rootCmd.AddCommand(a.decodeCmd())
	rootCmd.AddCommand(a.catalogCmd())

	return rootCmd
}

// bind makes the flags the top priority source of their config keys.
func (a *app) bind(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		_ = a.config.BindPFlag(flag.Name, flag)
	})
}

func (a *app) setup(cmd *cobra.Command, args []string) (err error) {
	if file := a.config.GetString("config"); file != "" {
		a.config.SetFs(a.files)
		a.config.SetConfigFile(file)
		err = a.config.ReadInConfig()
		if err != nil {
			return
		}
	}

	level := hclog.LevelFromString(a.config.GetString("log-level"))
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	if a.verbose() && level > hclog.Info {
		level = hclog.Info
	}

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "psfdis",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})

	return
}

func (a *app) verbose() bool {
	return a.config.GetBool("verbose")
}

func (a *app) loader() *psf.Loader {
	return &psf.Loader{
		Verbose: a.verbose(),
		Logger:  a.logger.Named("psf"),
		SkipCRC: a.config.GetBool("no-crc"),
		Limit:   a.config.GetInt64("max-size"),
	}
}
