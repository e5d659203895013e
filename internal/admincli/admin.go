package admincli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/adminpanel/internal/server/services"
	"github.com/spf13/cobra"
)

var errPasswordMismatch = errors.New("passwords don't match")

type accountCreator interface {
	CreateAccount(ctx context.Context, in services.AccountInput) (*models.UserWithRole, error)
}

// newAccountCreator is a test seam for the user service.
var newAccountCreator = func(db *sql.DB) accountCreator {
	return services.NewUserService(db, repomanager.NewPostgresRepositoryManager())
}

func newCreateAdminCommand(o *options) *cobra.Command {
	var email, fullName string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			reader := bufio.NewReader(cmd.InOrStdin())

			var err error
			if email == "" {
				if email, err = GetSimpleText(reader, "Email", out); err != nil {
					return err
				}
			}
			if fullName == "" {
				if fullName, err = GetSimpleText(reader, "Full name", out); err != nil {
					return err
				}
			}

			password, err := readConfirmedPassword(out)
			if err != nil {
				return err
			}
			defer common.WipeByteArray(password)

			ctx := cmd.Context()
			db, err := o.open(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			account, err := newAccountCreator(db).CreateAccount(ctx, services.AccountInput{
				Email:    email,
				Password: string(password),
				FullName: fullName,
				Role:     common.RoleAdmin,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Created administrator %s (%s)\n", email, account.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	return cmd
}

func readConfirmedPassword(out io.Writer) ([]byte, error) {
	pw, err := GetPassword("Password", out)
	if err != nil {
		return nil, err
	}
	confirm, err := GetPassword("Repeat password", out)
	if err != nil {
		common.WipeByteArray(pw)
		return nil, err
	}
	defer common.WipeByteArray(confirm)

	if string(pw) != string(confirm) {
		common.WipeByteArray(pw)
		return nil, errPasswordMismatch
	}
	return pw, nil
}
