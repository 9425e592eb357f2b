// Package commands implements the logit command tree.
package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/born-ml/logit/internal/backend/cpu"
	"github.com/born-ml/logit/internal/config"
	"github.com/born-ml/logit/internal/logging"
	"github.com/born-ml/logit/internal/operators"
)

// app holds what the subcommands share once flags and config are resolved.
type app struct {
	v        *viper.Viper
	cfgFile  string
	verbose  bool
	cfg      *config.Config
	registry *operators.Registry
	log      *logrus.Entry
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "logit",
		Short: "Compute the logit transform and its gradient",
		Long: `logit evaluates y = log(p / (1 - p)) and its backward pass
dz_dx = dz_dy / (p * (1 - p)) over float32 or float64 values.

Values are read from the arguments or, when none are given, from stdin,
separated by commas or whitespace. Inputs are not clamped: 0 and 1 map to
-Inf and +Inf, and values outside [0, 1] give NaN.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return logging.Close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("dtype", "float64", "element type: float32 or float64")
	flags.Int("workers", 0, "parallel workers (0 = one per CPU)")
	flags.Bool("forwarding", false, "reuse input buffers for outputs when possible")

	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("dtype", flags.Lookup("dtype"))
	_ = a.v.BindPFlag("parallel.workers", flags.Lookup("workers"))
	_ = a.v.BindPFlag("backend.forwarding", flags.Lookup("forwarding"))

	rootCmd.AddCommand(
		newForwardCommand(a),
		newGradCommand(a),
		newOpsCommand(a),
		newVersionCommand(),
	)
	return rootCmd
}

// init reads the config file, sets up logging and builds the registry.
func (a *app) init() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return err
		}
	}

	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = logrus.DebugLevel.String()
	}
	if err := logging.Init(cfg.Logging.Level, cfg.Logging.File, cfg.Logging.Console); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.WithComponent("cli")
	if a.cfgFile != "" {
		a.log.WithField("file", a.v.ConfigFileUsed()).Debug("using config file")
	}

	backend := cpu.New(
		cpu.WithParallel(cfg.ParallelSettings()),
		cpu.WithForwarding(cfg.Backend.Forwarding),
		cpu.WithLogger(logging.WithComponent("cpu")),
	)
	a.registry = operators.NewDefaultRegistry(backend)
	a.log.WithFields(logrus.Fields{
		"dtype":      cfg.DType,
		"workers":    cfg.ParallelSettings().NumWorkers,
		"forwarding": cfg.Backend.Forwarding,
	}).Debug("backend ready")
	return nil
}
