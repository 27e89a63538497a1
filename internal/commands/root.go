// Package commands implements the expense-vault command line.
//
// Every command loads the configuration from flags, environment and the
// optional JSON file, builds the client runtime, refreshes the readiness gate
// and then runs one ledger operation. Outcomes are printed with the shared
// user messages; failures also make the process exit non-zero.
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-expense-vault/internal/client"
	"github.com/MKhiriev/go-expense-vault/internal/config"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/service"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/spf13/cobra"
)

const (
	clientRole = "expense-vault"
	serverRole = "expense-vault-server"
)

type appFactory func(cmd *cobra.Command) (App, error)

type options struct {
	buildInfo models.AppBuildInfo
	newApp    appFactory
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return newRootCommand(&options{
		buildInfo: buildInfo,
		newApp:    loadApp(buildInfo),
	})
}

func newRootCommand(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     clientRole,
		Short:   "Private expense tracking on an encrypted ledger",
		Version: opts.buildInfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newConnectCommand(opts),
		newDisconnectCommand(opts),
		newStatusCommand(opts),
		newListCommand(opts),
		newAddCommand(opts),
		newRemoveCommand(opts),
		newDecryptCommand(opts),
		newReportCommand(opts),
		newServeCommand(opts),
		newVersionCommand(opts),
	)

	return rootCmd
}

func loadApp(buildInfo models.AppBuildInfo) appFactory {
	return func(cmd *cobra.Command) (App, error) {
		cfg, err := config.GetClientConfig(cmd.Flags())
		if err != nil {
			return nil, fmt.Errorf("error getting configs: %w", err)
		}

		log := commandLogger(cmd, cfg.App.LogFile)
		a, err := client.NewApp(cfg, buildInfo, log)
		if err != nil {
			log.Err(err).Str("func", "commands.loadApp").Msg("init client app error")
			return nil, err
		}
		return a, nil
	}
}

// commandLogger keeps stdout free for tables and reports. Only serve, which
// prints nothing else, logs to stdout when no log file is configured.
func commandLogger(cmd *cobra.Command, path string) *logger.Logger {
	if cmd.Name() == "serve" && path == "" {
		return logger.NewLogger(serverRole)
	}
	return logger.NewClientLogger(clientRole, path)
}

// withApp builds the runtime for one command and releases it afterwards.
func (o *options) withApp(cmd *cobra.Command, fn func(ctx context.Context, a App) error) error {
	a, err := o.newApp(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, a)
}

// refresh brings the gate up to date before an operation.
func refresh(ctx context.Context, cmd *cobra.Command, a App) (models.ReadinessState, error) {
	state, err := a.Refresh(ctx)
	if err != nil {
		return state, fail(cmd, err)
	}
	return state, nil
}

// fail prints the user message of err and returns err for the exit code.
func fail(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), service.Notify(err))
	return err
}

// notReady prints the hint for a state other than Ready.
func notReady(cmd *cobra.Command, state models.ReadinessState) {
	if state == models.Ready {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), service.Notify(&service.NotReadyError{State: state}))
}

// isNonFatal reports whether the decryption result is usable despite err.
func isNonFatal(err error) bool {
	return errors.Is(err, service.ErrCacheCapacityExceeded)
}
