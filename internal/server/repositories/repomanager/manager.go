package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/adminpanel/internal/dbx"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/employees"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/menuitems"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/records"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/roles"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can use
// the same constructors inside and outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Roles(db dbx.DBTX) roles.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Employees(db dbx.DBTX) employees.Repository
	MenuItems(db dbx.DBTX) menuitems.Repository
	Records(db dbx.DBTX) records.Repository
}
