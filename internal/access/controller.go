package access

import (
	"github.com/ayursutra/platform/internal/observability/metrics"
	"github.com/ayursutra/platform/pkg/logging"
)

// Session is the mutable unit of a logged-in user: a role plus the view
// currently shown. A logged-out marker is a Session with active == false.
type Session struct {
	Role        Role
	CurrentView ViewID

	active bool
}

// Active reports whether the session represents a logged-in user.
func (s *Session) Active() bool {
	return s != nil && s.active
}

// Controller decides which view a navigation request resolves to, enforcing
// that a role never observes a view outside its allow-list. Unauthorized
// requests are redirected to the role's default view rather than rejected;
// a navigation guard must always yield something renderable.
type Controller struct {
	table   *Table
	logger  *logging.Logger
	metrics *metrics.AccessMetrics
}

// NewController creates an access controller over the given table.
func NewController(table *Table, logger *logging.Logger, m *metrics.AccessMetrics) *Controller {
	if table == nil {
		panic("access: controller requires a table")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Controller{table: table, logger: logger, metrics: m}
}

// Table returns the static access table the controller enforces.
func (c *Controller) Table() *Table {
	return c.table
}

// LoggedOut returns a fresh logged-out marker. The marker carries the
// pre-login role selection; ChangeRole updates it until Login is called.
func (c *Controller) LoggedOut() *Session {
	return &Session{Role: RolePatient}
}

// Login constructs an active session landing on the role's default view.
func (c *Controller) Login(role Role) *Session {
	s := &Session{
		Role:        role,
		CurrentView: c.table.DefaultView(role),
		active:      true,
	}
	c.metrics.ObserveLogin(string(role))
	c.logger.Info("session started", "role", role, "view", s.CurrentView)
	return s
}

// Logout discards the session and returns a fresh logged-out marker. The old
// handle must not be reused; returning a new value avoids use-after-logout
// bugs.
func (c *Controller) Logout(s *Session) *Session {
	if s.Active() {
		c.logger.Info("session ended", "role", s.Role)
	}
	return c.LoggedOut()
}

// ChangeRole updates the pre-login role selection. Once a session is active
// its role is frozen: the call is ignored and the session returned unchanged.
func (c *Controller) ChangeRole(s *Session, role Role) *Session {
	if s.Active() {
		c.logger.Debug("role change ignored on active session", "role", s.Role, "requested", role)
		return s
	}
	return &Session{Role: role}
}

// Navigate resolves a requested view against the session's allow-list and
// records the result on the session. Requests outside the allow-list,
// including arbitrary untrusted strings, silently resolve to the role's
// default view. Navigate never fails.
func (c *Controller) Navigate(s *Session, requested ViewID) ViewID {
	resolved := requested
	fallback := !c.table.Allows(s.Role, requested)
	if fallback {
		resolved = c.table.DefaultView(s.Role)
		c.logger.Debug("navigation redirected",
			"role", s.Role, "requested", requested, "resolved", resolved)
	}

	s.CurrentView = resolved
	c.metrics.ObserveNavigation(string(s.Role), fallback)
	return resolved
}
