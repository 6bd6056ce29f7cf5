package permission

import (
	"fmt"

	"github.com/eventora/eventora/internal/shared/authorization"
)

const (
	ResourceEvent    = "event"
	ResourceTicket   = "ticket"
	ResourceOrder    = "order"
	ResourceWaitlist = "waitlist"
	ResourceUser     = "user"

	ActionCreate  = "create"
	ActionManage  = "manage"
	ActionReview  = "review"
	ActionCheckIn = "check_in"
	ActionVoid    = "void"
	ActionJoin    = "join"
)

var defaultPolicies = [][]string{
	{authorization.RoleAdmin.String(), ResourceEvent, ActionReview},
	{authorization.RoleAdmin.String(), ResourceUser, ActionManage},

	{authorization.RoleOrganizer.String(), ResourceEvent, ActionCreate},
	{authorization.RoleOrganizer.String(), ResourceEvent, ActionManage},
	{authorization.RoleOrganizer.String(), ResourceTicket, ActionCheckIn},
	{authorization.RoleOrganizer.String(), ResourceTicket, ActionVoid},

	{authorization.RoleAttendee.String(), ResourceOrder, ActionCreate},
	{authorization.RoleAttendee.String(), ResourceWaitlist, ActionJoin},
}

var roleInheritance = [][]string{
	{authorization.RoleAdmin.String(), authorization.RoleOrganizer.String()},
	{authorization.RoleOrganizer.String(), authorization.RoleAttendee.String()},
}

// SeedDefaultPolicies inserts the built-in role policies. Existing rows are
// left alone, so it is safe on every startup.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, p := range defaultPolicies {
		ok, err := e.enforcer.AddPolicy(p[0], p[1], p[2])
		if err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
		if ok {
			added++
		}
	}
	for _, g := range roleInheritance {
		ok, err := e.enforcer.AddGroupingPolicy(g[0], g[1])
		if err != nil {
			return fmt.Errorf("failed to add role inheritance %s > %s: %w", g[0], g[1], err)
		}
		if ok {
			added++
		}
	}

	e.logger.Infow("role policies seeded", "added", added)
	return nil
}
