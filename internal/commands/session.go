package commands

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-vault/internal/app"
	"github.com/spf13/cobra"
)

func newConnectCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Connect the configured account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a App) error {
				state, err := a.Connect(ctx)
				if err != nil {
					return fail(cmd, err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), app.MsgConnected+"\n", a.Services().Gate.Status().Account)
				notReady(cmd, state)
				return nil
			})
		},
	}
}

func newDisconnectCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Disconnect the account and drop its cached snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a App) error {
				if err := a.Disconnect(ctx); err != nil {
					return fail(cmd, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), app.MsgDisconnected)
				return nil
			})
		},
	}
}

func newStatusCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the connection and network status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a App) error {
				state, err := refresh(ctx, cmd, a)
				if err != nil {
					return err
				}
				renderStatus(cmd.OutOrStdout(), a.Services().Gate.Status())
				notReady(cmd, state)
				return nil
			})
		},
	}
}
