// Package navigation models which screens a signed-in employee may reach.
//
// Screens form a small tree rooted at ScreenMain. Moving along an edge the
// user is not allowed to take is not an error: the caller simply stays on
// the current screen, mirroring how hidden menu entries behave.
package navigation

import "github.com/spec-kit/helpdesk/internal/domain"

// Screen identifies one view of the helpdesk.
type Screen string

const (
	ScreenMain              Screen = "main"
	ScreenTicketsMenu       Screen = "tickets-menu"
	ScreenDepartmentTasks   Screen = "department-tasks"
	ScreenEquipmentRequest  Screen = "equipment-request"
	ScreenAdmin             Screen = "admin"
	ScreenNewTicket         Screen = "new-ticket"
	ScreenListTickets       Screen = "list-tickets"
	ScreenDepartmentTickets Screen = "department-tickets"
	ScreenRespondTickets    Screen = "respond-tickets"
	ScreenReports           Screen = "reports"
)

var children = map[Screen][]Screen{
	ScreenMain: {
		ScreenTicketsMenu,
		ScreenDepartmentTasks,
		ScreenEquipmentRequest,
		ScreenAdmin,
	},
	ScreenTicketsMenu: {
		ScreenNewTicket,
		ScreenListTickets,
		ScreenDepartmentTickets,
		ScreenRespondTickets,
		ScreenReports,
	},
}

var parents = func() map[Screen]Screen {
	out := make(map[Screen]Screen)
	for parent, kids := range children {
		for _, kid := range kids {
			out[kid] = parent
		}
	}
	return out
}()

// restricted screens need an IT administrator.
var restricted = map[Screen]bool{
	ScreenAdmin:   true,
	ScreenReports: true,
}

// ParseScreen validates a screen name.
func ParseScreen(raw string) (Screen, bool) {
	s := Screen(raw)
	if s == ScreenMain {
		return s, true
	}
	_, ok := parents[s]
	return s, ok
}

// CanAccess is the single authorization predicate for screens.
func CanAccess(user *domain.User, screen Screen) bool {
	if user == nil {
		return false
	}
	if _, ok := ParseScreen(string(screen)); !ok {
		return false
	}
	if restricted[screen] {
		return user.Role == domain.RoleAdmin && user.Department == domain.DepartmentIT
	}
	return true
}

// Parent returns the screen "back" leads to. Main is its own parent.
func Parent(screen Screen) Screen {
	if parent, ok := parents[screen]; ok {
		return parent
	}
	return ScreenMain
}

// Visible lists the forward targets from the given screen that the user may open.
func Visible(user *domain.User, from Screen) []Screen {
	out := make([]Screen, 0, len(children[from]))
	for _, target := range children[from] {
		if CanAccess(user, target) {
			out = append(out, target)
		}
	}
	return out
}

// Navigate returns the screen reached by moving from one screen to another.
// Missing edges and denied screens leave the user where they were.
func Navigate(user *domain.User, from, to Screen) Screen {
	if !CanAccess(user, from) {
		from = ScreenMain
	}
	if to == Parent(from) {
		return to
	}
	for _, target := range children[from] {
		if target == to && CanAccess(user, to) {
			return to
		}
	}
	return from
}
