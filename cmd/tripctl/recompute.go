package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"trip-booking/cmd/bootstrap"
	"trip-booking/cmd/bootstrap/components"
	"trip-booking/internal/usecase/commands"
)

func recomputeCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "recompute [code]",
		Short: "Rebuild amount paid and status from the payment ledger",
		Long: `Rebuild a reservation's amount paid and status from the sum of its payments.

Examples:
  tripctl recompute TRIP-ABC234
  tripctl recompute --all`,
		Args: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return errors.New("pass either a reservation code or --all, not both")
			}
			if !all && len(args) != 1 {
				return errors.New("a reservation code is required unless --all is set")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPaymentCommands(cmd.Context(), func(ctx context.Context, payments commands.PaymentCommands) error {
				out := cmd.OutOrStdout()
				if !all {
					result, err := payments.RecomputeBalance(ctx, args[0])
					if err != nil {
						return err
					}
					printRecompute(out, *result)
					return nil
				}

				results, err := payments.RecomputeAll(ctx)
				changed := 0
				for _, r := range results {
					printRecompute(out, r)
					if r.Changed {
						changed++
					}
				}
				fmt.Fprintf(out, "%d reservation(s) checked, %d changed\n", len(results), changed)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "recompute every reservation")

	return cmd
}

func printRecompute(w io.Writer, r commands.RecomputeResult) {
	marker := " "
	if r.Changed {
		marker = "*"
	}
	fmt.Fprintf(w, "%s %-12s %12s  %s\n", marker, r.Code, r.AmountPaid, r.Status)
}

// withPaymentCommands builds the same object graph the server uses, minus HTTP.
func withPaymentCommands(ctx context.Context, fn func(context.Context, commands.PaymentCommands) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var payments commands.PaymentCommands
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.JWTModule,
		bootstrap.GatewayModule,
		bootstrap.RedisModule,
		bootstrap.EventsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		fx.Populate(&payments),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = app.Stop(context.Background()) }()

	return fn(ctx, payments)
}
