package navigation

import (
	"strings"

	"github.com/dmitrijs2005/adminpanel/internal/server/session"
)

// Access is the minimum standing needed to open a page.
type Access int

const (
	Public Access = iota
	Authenticated
	AdminOnly
)

// Decision is the outcome of resolving a path for a session.
type Decision string

const (
	Allow     Decision = "allow"
	Redirect  Decision = "redirect"
	Forbidden Decision = "forbidden"
	NotFound  Decision = "not_found"
)

const (
	AuthPath    = "/auth"
	DefaultPath = "/dashboard"
)

// Routes maps every page path to its access level.
var Routes = map[string]Access{
	AuthPath:       Public,
	"/dashboard":   Authenticated,
	"/profile":     Authenticated,
	"/area":        Authenticated,
	"/award":       Authenticated,
	"/employees":   AdminOnly,
	"/users":       AdminOnly,
	"/menu-config": AdminOnly,
}

// Resolution tells the front end what to do with a path. Location is set for
// redirects.
type Resolution struct {
	Decision Decision `json:"decision"`
	Location string   `json:"location,omitempty"`
}

// Resolve decides whether s may open path. "/" always redirects to the
// dashboard; guarded pages redirect anonymous callers to the sign-in page and
// refuse non-admins on admin pages.
func Resolve(path string, s *session.Session) Resolution {
	path = normalize(path)
	if path == "/" {
		return Resolution{Decision: Redirect, Location: DefaultPath}
	}

	access, ok := Routes[path]
	if !ok {
		return Resolution{Decision: NotFound}
	}

	switch access {
	case Authenticated:
		if s == nil {
			return Resolution{Decision: Redirect, Location: AuthPath}
		}
	case AdminOnly:
		if s == nil {
			return Resolution{Decision: Redirect, Location: AuthPath}
		}
		if !s.IsAdmin() {
			return Resolution{Decision: Forbidden}
		}
	}
	return Resolution{Decision: Allow}
}

func normalize(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
