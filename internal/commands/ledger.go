package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-expense-vault/internal/service"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the expenses on the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a App) error {
				if _, err := refresh(ctx, cmd, a); err != nil {
					return err
				}

				records, err := a.Services().Ledger.Records()
				if err != nil {
					return fail(cmd, err)
				}
				renderRecords(cmd.OutOrStdout(), records, false)
				return nil
			})
		},
	}
}

func newAddCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <amount>",
		Short: "Encrypt and append an expense",
		Long: "Encrypt and append an expense. Amounts are whole units; categories are " +
			strings.Join(models.Categories, ", ") + ".",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := canonicalCategory(args[0])
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fail(cmd, fmt.Errorf("%w: amount %q is not a number", service.ErrInvalidInput, args[1]))
			}

			return opts.withApp(cmd, func(ctx context.Context, a App) error {
				if _, err := refresh(ctx, cmd, a); err != nil {
					return err
				}
				if err := a.Services().Mutations.Append(ctx, category, amount); err != nil {
					return fail(cmd, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), service.NotifyAdded(category))
				return nil
			})
		},
	}
}

func newRemoveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <index>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete the expense at index",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fail(cmd, fmt.Errorf("%w: index %q is not a ledger position", service.ErrInvalidInput, args[0]))
			}

			return opts.withApp(cmd, func(ctx context.Context, a App) error {
				if _, err := refresh(ctx, cmd, a); err != nil {
					return err
				}
				if err := a.Services().Mutations.Remove(ctx, index); err != nil {
					return fail(cmd, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), service.NotifyDeleted())
				return nil
			})
		},
	}
}

func newDecryptCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt the total and every expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, a App) error {
				if _, err := refresh(ctx, cmd, a); err != nil {
					return err
				}

				snapshot, err := a.Services().Decryption.DecryptAll(ctx)
				if err != nil && !isNonFatal(err) {
					return fail(cmd, err)
				}

				out := cmd.OutOrStdout()
				if snapshot.Total != nil {
					fmt.Fprintln(out, service.NotifyDecrypted(*snapshot.Total))
				}
				renderRecords(out, snapshot.Records, true)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(service.Notify(err)))
				}
				return nil
			})
		},
	}
}

// canonicalCategory matches s against the category table ignoring case.
// Unknown labels are returned unchanged and rejected by validation.
func canonicalCategory(s string) string {
	s = strings.TrimSpace(s)
	for _, c := range models.Categories {
		if strings.EqualFold(c, s) {
			return c
		}
	}
	return s
}
