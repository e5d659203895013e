// Package admincli implements the operator command line: schema migrations
// and bootstrapping the first administrator account.
package admincli

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/adminpanel/internal/server"
	"github.com/dmitrijs2005/adminpanel/internal/server/config"
	"github.com/spf13/cobra"
)

// openDB is a test seam for server.OpenDB.
var openDB = func(ctx context.Context, dsn string) (*sql.DB, error) {
	return server.OpenDB(ctx, dsn)
}

type options struct {
	cfg *config.Config
	dsn string
}

func (o *options) databaseDSN() string {
	if o.dsn != "" {
		return o.dsn
	}
	return o.cfg.DatabaseDSN
}

func (o *options) open(ctx context.Context) (*sql.DB, error) {
	return openDB(ctx, o.databaseDSN())
}

// NewRootCommand builds the admin CLI. cfg supplies defaults; --dsn
// overrides the database connection string.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	o := &options{cfg: cfg}

	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Operator tooling for the admin panel backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&o.dsn, "dsn", "", "PostgreSQL DSN (defaults to the configured one)")
	root.PersistentFlags().StringP("config", "c", "", "JSON configuration file")

	root.AddCommand(newMigrateCommand(o))
	root.AddCommand(newCreateAdminCommand(o))

	return root
}

// Execute runs the CLI against os.Args.
func Execute(ctx context.Context, cfg *config.Config) error {
	return NewRootCommand(cfg).ExecuteContext(ctx)
}
