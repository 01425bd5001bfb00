package handlers

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"hvac_fixtures/internal/config"
	"hvac_fixtures/internal/logger"
	"hvac_fixtures/internal/service"
)

// Bootstrap builds the services for a loaded configuration. The returned func
// releases whatever the services keep open.
type Bootstrap func(cfg *config.Config) (*service.Service, *logger.Logger, func() error, error)

// Handler wires the command line to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cfg      *config.Config

	v       *viper.Viper
	boot    Bootstrap
	cfgFile string
	release func() error
}

// NewHandler constructs the command layer. Services are built by boot once
// flags and configuration are resolved.
func NewHandler(v *viper.Viper, boot Bootstrap) *Handler {
	return &Handler{v: v, boot: boot}
}

// InitCommands builds the root command with every subcommand registered.
func (h *Handler) InitCommands() *cobra.Command {
	root := &cobra.Command{
		Use:               "hvacfix",
		Short:             "Generate controller test fixtures for air-conditioning units",
		Long:              "Reads a compact description of air-conditioning units and writes the CSV fixtures (R02monUnit, R03infUnit, R15tempSet) a controller under test consumes.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: h.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&h.cfgFile, "config", "", "config file (default configs/config.yml)")
	pf.String("log-level", logger.InfoLevel, "log level: debug, info, warn, error")
	pf.String("log-format", logger.ConsoleFormat, "log format: console, json")
	pf.String("history", "", "SQLite file recording generation runs (empty disables history)")
	h.bind(pf, map[string]string{
		config.KeyLogLevel:    "log-level",
		config.KeyLogFormat:   "log-format",
		config.KeyHistoryPath: "history",
	})

	root.AddCommand(
		h.generateCmd(),
		h.validateCmd(),
		h.historyCmd(),
		h.statusCmd(),
	)
	return root
}

// Close releases what Bootstrap opened. Safe to call when setup never ran.
func (h *Handler) Close() error {
	if h.release == nil {
		return nil
	}
	err := h.release()
	h.release = nil
	return err
}

func (h *Handler) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(h.v, h.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	services, log, release, err := h.boot(cfg)
	if err != nil {
		return err
	}
	h.cfg, h.services, h.log, h.release = cfg, services, log, release
	return nil
}

func (h *Handler) bind(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := h.v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %q to %q: %v", name, key, err))
		}
	}
}

// errHistoryRequired is shown when history commands run without a database.
var errHistoryRequired = errors.New("generation history is disabled; set history.path or --history")
