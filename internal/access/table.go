package access

import "fmt"

// Role is the capability class of a logged-in user. It is fixed at login
// time and reset on logout.
type Role string

const (
	RolePatient      Role = "patient"
	RolePractitioner Role = "practitioner"
)

// ViewID names a screen reachable within the application.
type ViewID string

// Views reachable in the AyurSutra UI.
const (
	ViewPatientDashboard      ViewID = "patient-dashboard"
	ViewPractitionerDashboard ViewID = "practitioner-dashboard"
	ViewSchedule              ViewID = "schedule"
	ViewPatients              ViewID = "patients"
	ViewAnalytics             ViewID = "analytics"
	ViewFeedback              ViewID = "feedback"
	ViewChat                  ViewID = "chat"
	ViewTasks                 ViewID = "tasks"
	ViewNotifications         ViewID = "notifications"
	ViewSettings              ViewID = "settings"
)

// Table maps each role to the ordered set of views it may reach plus its
// default landing view. Static configuration, built once at startup.
type Table struct {
	allow    map[Role][]ViewID
	defaults map[Role]ViewID
}

// NewTable validates and builds an access table. A role whose default view is
// missing from its allow-list, or whose allow-list is empty, is a
// configuration error and is rejected here rather than at call time.
func NewTable(allow map[Role][]ViewID, defaults map[Role]ViewID) (*Table, error) {
	for role, views := range allow {
		if len(views) == 0 {
			return nil, fmt.Errorf("access: role %q has an empty allow-list", role)
		}
		def, ok := defaults[role]
		if !ok {
			return nil, fmt.Errorf("access: role %q has no default view", role)
		}
		if !containsView(views, def) {
			return nil, fmt.Errorf("access: default view %q for role %q is not in its allow-list", def, role)
		}
	}
	for role := range defaults {
		if _, ok := allow[role]; !ok {
			return nil, fmt.Errorf("access: default view configured for unknown role %q", role)
		}
	}

	t := &Table{
		allow:    make(map[Role][]ViewID, len(allow)),
		defaults: make(map[Role]ViewID, len(defaults)),
	}
	for role, views := range allow {
		t.allow[role] = append([]ViewID(nil), views...)
		t.defaults[role] = defaults[role]
	}
	return t, nil
}

// DefaultTable returns the AyurSutra screen map: patients see their own
// dashboard, schedule, feedback, chat, notifications and settings;
// practitioners see their dashboard, patient records, schedule, analytics,
// tasks and settings.
func DefaultTable() *Table {
	t, err := NewTable(
		map[Role][]ViewID{
			RolePatient: {
				ViewPatientDashboard,
				ViewSchedule,
				ViewFeedback,
				ViewChat,
				ViewNotifications,
				ViewSettings,
			},
			RolePractitioner: {
				ViewPractitionerDashboard,
				ViewPatients,
				ViewSchedule,
				ViewAnalytics,
				ViewTasks,
				ViewSettings,
			},
		},
		map[Role]ViewID{
			RolePatient:      ViewPatientDashboard,
			RolePractitioner: ViewPractitionerDashboard,
		},
	)
	if err != nil {
		panic("access: default table misconfigured: " + err.Error())
	}
	return t
}

// Allows reports whether the role may reach the view.
func (t *Table) Allows(role Role, view ViewID) bool {
	return containsView(t.allow[role], view)
}

// AllowedViews returns a copy of the ordered allow-list for the role.
func (t *Table) AllowedViews(role Role) []ViewID {
	return append([]ViewID(nil), t.allow[role]...)
}

// DefaultView returns the landing view for the role. Unknown roles fall back
// to the patient default so callers always receive a renderable view.
func (t *Table) DefaultView(role Role) ViewID {
	if def, ok := t.defaults[role]; ok {
		return def
	}
	return t.defaults[RolePatient]
}

// Roles returns the roles the table is configured for.
func (t *Table) Roles() []Role {
	roles := make([]Role, 0, len(t.allow))
	for role := range t.allow {
		roles = append(roles, role)
	}
	return roles
}

func containsView(views []ViewID, v ViewID) bool {
	for _, view := range views {
		if view == v {
			return true
		}
	}
	return false
}
