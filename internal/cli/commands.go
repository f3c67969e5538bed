package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/services"

	"github.com/spf13/cobra"
)

func newSeedRulesCmd(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-rules",
		Short: "Seed the keyword rule dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := r.services()
			if err != nil {
				return err
			}

			added, err := app.Categorizer.SeedDefaults()
			if err != nil {
				return err
			}
			r.logger.Info("rules seeded", "added", added)

			return r.render(map[string]int{"added": added}, func(w io.Writer) {
				fmt.Fprintf(w, "Seeded %d rules\n", added)
			})
		},
	}
}

func newCategorizeCmd(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "categorize <text...>",
		Short: "Categorize a transaction description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.services()
			if err != nil {
				return err
			}

			result := app.Categorizer.CategorizeDetailed(cmd.Context(), strings.Join(args, " "))

			return r.render(result, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "CATEGORY\tMETHOD\tCONFIDENCE\tKEYWORD")
				fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", result.Category, result.Method, result.Confidence, result.MatchedKeyword)
				_ = tw.Flush()
			})
		},
	}
}

func newImportCmd(r *runtime) *cobra.Command {
	var (
		owner  string
		dedupe bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a CSV or XLS statement into an owner's ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, err := r.ownerEmail(owner)
			if err != nil {
				return err
			}
			app, err := r.services()
			if err != nil {
				return err
			}

			user, err := app.Ledger.EnsureUser(email, "")
			if err != nil {
				return err
			}

			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			result, err := app.Importer.ImportFile(cmd.Context(), user.ID, filepath.Base(path), f, dto.ImportOptions{Dedupe: dedupe})
			if err != nil {
				return err
			}

			return r.render(result, func(w io.Writer) {
				fmt.Fprintf(w, "Imported %d, skipped %d, duplicates %d\n", result.Imported, result.Skipped, result.Duplicates)
				for _, rowErr := range result.Errors {
					fmt.Fprintf(w, "  row %d: %s\n", rowErr.Row, rowErr.Reason)
				}
			})
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner email")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "Skip rows that look like existing entries")
	return cmd
}

func newSyncCmd(r *runtime) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull new transactions from every linked bank connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, err := r.ownerEmail(owner)
			if err != nil {
				return err
			}
			app, err := r.services()
			if err != nil {
				return err
			}

			user, err := app.Ledger.EnsureUser(email, "")
			if err != nil {
				return err
			}

			ctx := services.WithCorrelationID(cmd.Context(), fmt.Sprintf("ledgerctl-sync-%d", time.Now().Unix()))
			result, err := app.Sync.ImportAllConnections(ctx, user.ID)
			if err != nil {
				return err
			}

			return r.render(result, func(w io.Writer) {
				if len(result.Connections) == 0 {
					fmt.Fprintln(w, "No linked connections")
					return
				}
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "CONNECTION\tIMPORTED\tERROR")
				for _, conn := range result.Connections {
					fmt.Fprintf(tw, "%s\t%d\t%s\n", conn.ConnectionID, conn.Imported, conn.Error)
				}
				_ = tw.Flush()
				fmt.Fprintf(w, "Imported %d entries\n", result.Imported)
			})
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner email")
	return cmd
}

func newBalanceCmd(r *runtime) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Recompute and print an owner's balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, err := r.ownerEmail(owner)
			if err != nil {
				return err
			}
			app, err := r.services()
			if err != nil {
				return err
			}

			user, err := app.Ledger.EnsureUser(email, "")
			if err != nil {
				return err
			}

			balance, err := app.Ledger.Balance(cmd.Context(), user.ID)
			if err != nil {
				return err
			}

			out := dto.BalanceResponse{Balance: balance.StringFixed(2), Currency: r.cfg.Ledger.DefaultCurrency}
			return r.render(out, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s\n", out.Balance, out.Currency)
			})
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner email")
	return cmd
}

func newTokenCmd(r *runtime) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token for an owner",
		Long: "Mint a development access token for an owner.\n\n" +
			"The server only accepts the token when both processes share JWT_PRIVATE_KEY and JWT_PUBLIC_KEY.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, err := r.ownerEmail(owner)
			if err != nil {
				return err
			}
			app, err := r.services()
			if err != nil {
				return err
			}

			user, err := app.Ledger.EnsureUser(email, "")
			if err != nil {
				return err
			}

			token, expiresAt, err := app.Tokens.GenerateAccessToken(user)
			if err != nil {
				return err
			}

			out := dto.TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresAt: expiresAt}
			return r.render(out, func(w io.Writer) {
				fmt.Fprintln(w, token)
			})
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner email")
	return cmd
}

func newSampleCSVCmd(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "sample-csv",
		Short: "Print the import template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			importer := services.NewImportService(nil, nil, nil, nil, nil, r.cfg.Ledger, r.logger)
			_, err := r.opts.Out.Write(importer.SampleCSV())
			return err
		},
	}
}
