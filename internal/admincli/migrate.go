package admincli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/adminpanel/internal/server/migrations"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

// goose seams.
var (
	gooseUp     = goose.UpContext
	gooseDown   = goose.DownContext
	gooseStatus = goose.StatusContext
)

func newMigrateCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	run := func(action string, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) *cobra.Command {
		return &cobra.Command{
			Use:   action,
			Short: "Run goose " + action + " with the embedded migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx := cmd.Context()
				db, err := o.open(ctx)
				if err != nil {
					return err
				}
				defer db.Close()

				goose.SetBaseFS(migrations.Migrations)
				if err := goose.SetDialect("pgx"); err != nil {
					return err
				}
				if err := fn(ctx, db, "."); err != nil {
					return fmt.Errorf("migrate %s: %w", action, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", action)
				return nil
			},
		}
	}

	cmd.AddCommand(
		run("up", func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			return gooseUp(ctx, db, dir, opts...)
		}),
		run("down", func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			return gooseDown(ctx, db, dir, opts...)
		}),
		run("status", func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
			return gooseStatus(ctx, db, dir, opts...)
		}),
	)
	return cmd
}
