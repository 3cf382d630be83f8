package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/forthic-lang/forthic/forthic"
	"github.com/forthic-lang/forthic/forthic/modules"
	"github.com/forthic-lang/forthic/forthic/rpc"
	"github.com/forthic-lang/forthic/internal/config"
)

var (
	cfgPath  string
	timezone string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "forthic",
	Short: "Forthic interpreter",
	Long: `forthic runs programs written in Forthic, a stack-based,
concatenative language built around words, modules, and memoized
definitions.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "", "IANA timezone for date/time literals (default: config or UTC)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// newInterpreter builds an Interpreter with the standard library imported
// and the configured timezone applied, ready for REPL, run, or eval use.
func newInterpreter() (*forthic.Interpreter, *zap.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.Verbose = true
	}

	logger, err := newLogger()
	if err != nil {
		return nil, nil, err
	}

	tz := timezone
	if tz == "" {
		tz = cfg.Timezone
	}
	if tz == "" {
		tz = "UTC"
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return nil, nil, err
	}

	interp := forthic.NewInterpreter(modules.Standard(logger)...)
	if err := interp.SetTimezone(tz); err != nil {
		return nil, nil, err
	}

	if cfg.RemoteAddress != "" {
		if err := registerRemoteWord(interp, cfg); err != nil {
			return nil, nil, err
		}
	}

	return interp, logger, nil
}

// registerRemoteWord dials cfg.RemoteAddress and installs a Remote word
// named cfg.RemoteWordName that delegates execution to cfg.RemoteMethod
// over that connection, per the remote word contract.
func registerRemoteWord(interp *forthic.Interpreter, cfg *config.Config) error {
	conn, err := grpc.Dial(cfg.RemoteAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dialing remote transport %s: %w", cfg.RemoteAddress, err)
	}

	transport := rpc.NewGRPCTransport(conn, cfg.RemoteMethod)
	remoteWord := forthic.NewRemoteWord(cfg.RemoteWordName, transport, nil)
	interp.CurModule().AddExportableWord(remoteWord)
	return nil
}
