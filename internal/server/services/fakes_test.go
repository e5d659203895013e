package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/adminpanel/internal/common"
	"github.com/dmitrijs2005/adminpanel/internal/dbx"
	"github.com/dmitrijs2005/adminpanel/internal/server/config"
	"github.com/dmitrijs2005/adminpanel/internal/server/models"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/employees"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/menuitems"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/records"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/roles"
	"github.com/dmitrijs2005/adminpanel/internal/server/repositories/users"
	"github.com/dmitrijs2005/adminpanel/internal/server/schema"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		DateLayout:                   "02.01.2006 15:04",
	}
}

// --- users ---

type fakeUsers struct {
	byID      map[string]*models.User
	seq       int
	createErr error
	getErr    error
	updateErr error
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byID: map[string]*models.User{}} }

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	f.seq++
	c := *u
	c.ID = fmt.Sprintf("u%d", f.seq)
	c.CreatedAt = time.Now()
	f.byID[c.ID] = &c
	return &c, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id string, hash []byte) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = hash
	return nil
}

// --- profiles ---

type fakeProfiles struct {
	byID      map[string]*models.Profile
	order     []string
	createErr error
	getErr    error
	listErr   error
	setErr    error
	count     int64
	countErr  error
}

func newFakeProfiles() *fakeProfiles { return &fakeProfiles{byID: map[string]*models.Profile{}} }

func (f *fakeProfiles) Create(_ context.Context, p *models.Profile) (*models.Profile, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	c := *p
	f.byID[c.ID] = &c
	f.order = append([]string{c.ID}, f.order...)
	return &c, nil
}

func (f *fakeProfiles) Get(_ context.Context, id string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeProfiles) List(context.Context) ([]*models.Profile, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.Profile, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.byID[id])
	}
	return out, nil
}

func (f *fakeProfiles) Update(_ context.Context, id string, fullName, email string) (*models.Profile, error) {
	if f.setErr != nil {
		return nil, f.setErr
	}
	p, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	p.FullName, p.Email = &fullName, &email
	return p, nil
}

func (f *fakeProfiles) SetActive(_ context.Context, id string, active bool) error {
	if f.setErr != nil {
		return f.setErr
	}
	p, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	p.IsActive = active
	return nil
}

func (f *fakeProfiles) SetAvatarURL(_ context.Context, id string, url string) error {
	if f.setErr != nil {
		return f.setErr
	}
	p, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	p.AvatarURL = &url
	return nil
}

func (f *fakeProfiles) Count(context.Context) (int64, error) { return f.count, f.countErr }

// --- roles ---

type fakeRoles struct {
	byUser    map[string][]string
	listErr   error
	upsertErr error
	insertErr error
	deleteErr error
	calls     []string
}

func newFakeRoles() *fakeRoles { return &fakeRoles{byUser: map[string][]string{}} }

func (f *fakeRoles) ListByUser(_ context.Context, userID string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byUser[userID], nil
}

func (f *fakeRoles) ListAll(context.Context) (map[string][]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byUser, nil
}

func (f *fakeRoles) Upsert(_ context.Context, userID, role string) error {
	f.calls = append(f.calls, "upsert")
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for _, r := range f.byUser[userID] {
		if r == role {
			return nil
		}
	}
	f.byUser[userID] = append(f.byUser[userID], role)
	return nil
}

func (f *fakeRoles) Insert(_ context.Context, userID, role string) error {
	f.calls = append(f.calls, "insert")
	if f.insertErr != nil {
		return f.insertErr
	}
	f.byUser[userID] = append(f.byUser[userID], role)
	return nil
}

func (f *fakeRoles) DeleteOthers(_ context.Context, userID, keep string) error {
	f.calls = append(f.calls, "delete_others")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.byUser[userID] = []string{keep}
	return nil
}

func (f *fakeRoles) DeleteAll(_ context.Context, userID string) error {
	f.calls = append(f.calls, "delete_all")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.byUser, userID)
	return nil
}

// --- refresh tokens ---

type fakeRefresh struct {
	tokens    map[string]*models.RefreshToken
	findErr   error
	createErr error
	deleteErr error
	revoked   []string
}

func newFakeRefresh() *fakeRefresh { return &fakeRefresh{tokens: map[string]*models.RefreshToken{}} }

func (f *fakeRefresh) Create(_ context.Context, userID string, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (f *fakeRefresh) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if t, ok := f.tokens[token]; ok {
		return t, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRefresh) Delete(_ context.Context, token string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefresh) DeleteByUser(_ context.Context, userID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for k, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, k)
		}
	}
	f.revoked = append(f.revoked, userID)
	return nil
}

// --- employees ---

type fakeEmployees struct {
	list      []*models.Employee
	err       error
	created   *models.Employee
	updated   *models.Employee
	deleted   []string
	deleteErr error
	count     int64
}

func (f *fakeEmployees) List(context.Context) ([]*models.Employee, error) { return f.list, f.err }

func (f *fakeEmployees) Get(_ context.Context, id string) (*models.Employee, error) {
	for _, e := range f.list {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeEmployees) Create(_ context.Context, e *models.Employee) (*models.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = e
	c := *e
	c.ID = "e1"
	return &c, nil
}

func (f *fakeEmployees) Update(_ context.Context, e *models.Employee) (*models.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = e
	return e, nil
}

func (f *fakeEmployees) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEmployees) Count(context.Context) (int64, error) { return f.count, f.err }

// --- menu items ---

type fakeMenu struct {
	list      []*models.MenuItem
	err       error
	saved     *models.MenuItem
	deleted   []string
	deleteErr error
	count     int64
}

func (f *fakeMenu) List(context.Context) ([]*models.MenuItem, error) { return f.list, f.err }

func (f *fakeMenu) ListVisible(_ context.Context, role string) ([]*models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.MenuItem
	for _, m := range f.list {
		if m.IsActive && m.VisibleTo(role) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (f *fakeMenu) Create(_ context.Context, m *models.MenuItem) (*models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = m
	return m, nil
}

func (f *fakeMenu) Update(_ context.Context, m *models.MenuItem) (*models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = m
	return m, nil
}

func (f *fakeMenu) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeMenu) Count(context.Context) (int64, error) { return f.count, f.err }

// --- records ---

type fakeRecords struct {
	rows  []models.Record
	total int64
	err   error

	limit, offset int
	fields        models.Record
	updatedID     string
	deletedID     string
	bulkColumns   []string
	bulkRows      [][]any
}

func (f *fakeRecords) List(_ context.Context, _ *schema.Entity, limit, offset int) ([]models.Record, int64, error) {
	f.limit, f.offset = limit, offset
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.rows, f.total, nil
}

func (f *fakeRecords) Create(_ context.Context, _ *schema.Entity, fields models.Record) (models.Record, error) {
	f.fields = fields
	if f.err != nil {
		return nil, f.err
	}
	out := models.Record{"id": "r1"}
	for k, v := range fields {
		out[k] = v
	}
	return out, nil
}

func (f *fakeRecords) Update(_ context.Context, _ *schema.Entity, id string, fields models.Record) (models.Record, error) {
	f.updatedID, f.fields = id, fields
	if f.err != nil {
		return nil, f.err
	}
	out := models.Record{"id": id}
	for k, v := range fields {
		out[k] = v
	}
	return out, nil
}

func (f *fakeRecords) Delete(_ context.Context, _ *schema.Entity, id string) error {
	f.deletedID = id
	return f.err
}

func (f *fakeRecords) BulkInsert(_ context.Context, _ *schema.Entity, columns []string, rows [][]any) (int64, error) {
	f.bulkColumns, f.bulkRows = columns, rows
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(rows)), nil
}

// --- manager ---

type fakeRepoManager struct {
	users     *fakeUsers
	profiles  *fakeProfiles
	roles     *fakeRoles
	refresh   *fakeRefresh
	employees *fakeEmployees
	menu      *fakeMenu
	records   *fakeRecords
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:     newFakeUsers(),
		profiles:  newFakeProfiles(),
		roles:     newFakeRoles(),
		refresh:   newFakeRefresh(),
		employees: &fakeEmployees{},
		menu:      &fakeMenu{},
		records:   &fakeRecords{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository { return m.users }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository { return m.profiles }
func (m *fakeRepoManager) Roles(dbx.DBTX) roles.Repository { return m.roles }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.refresh }
func (m *fakeRepoManager) Employees(dbx.DBTX) employees.Repository { return m.employees }
func (m *fakeRepoManager) MenuItems(dbx.DBTX) menuitems.Repository { return m.menu }
func (m *fakeRepoManager) Records(dbx.DBTX) records.Repository { return m.records }
