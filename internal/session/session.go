package session

import (
	"strings"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
)

// Elevated roles hold every capability. The endpoint's adminLogin only
// authenticates admin accounts, so a login without a role is elevated.
func (r Role) Elevated() bool {
	switch Role(strings.ToLower(string(r))) {
	case RoleAdmin, RoleOwner, "":
		return true
	}
	return false
}

type Actor struct {
	Name string
	Role Role
}

// Session is the current admin actor. The zero value is a logged-out viewer.
type Session struct {
	authenticated bool
	token         string
	actor         *Actor
	perms         [capabilityCount]bool
}

// Login replaces the session. An empty token leaves it logged out.
func (s *Session) Login(token string, actor Actor) bool {
	s.Reset()
	if token == "" {
		return false
	}
	s.authenticated = true
	s.token = token
	s.actor = &actor
	for _, c := range capabilitiesFor(actor.Role) {
		s.perms[c] = true
	}
	return true
}

func (s *Session) Reset() { *s = Session{} }

func (s *Session) Authenticated() bool { return s.authenticated && s.token != "" }

func (s *Session) Token() string { return s.token }

func (s *Session) Actor() (Actor, bool) {
	if s.actor == nil {
		return Actor{}, false
	}
	return *s.actor, true
}

// Can is the capability predicate. A logged-out session holds nothing.
func (s *Session) Can(c Capability) bool {
	if !s.Authenticated() || c <= capNone || c >= capabilityCount {
		return false
	}
	return s.perms[c]
}

func (s *Session) Permissions() []Capability {
	var out []Capability
	for c := capNone + 1; c < capabilityCount; c++ {
		if s.Can(c) {
			out = append(out, c)
		}
	}
	return out
}

// Authorize is the single guard every gated admin action goes through.
func (s *Session) Authorize(a Action) error {
	if !s.Can(a.Capability()) {
		return &DeniedError{Action: a}
	}
	return nil
}

func capabilitiesFor(r Role) []Capability {
	if r.Elevated() {
		return []Capability{ManageOrders, ManageProducts, ManageStock, ViewHistory}
	}
	return []Capability{ManageOrders, ViewHistory}
}
