package contest

import "fmt"

// Role is derived once at the request boundary and passed into every
// operation that is role-gated.
type Role int

const (
	RolePublic Role = iota
	RoleTeam
	RoleJury
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleTeam:
		return "team"
	case RoleJury:
		return "jury"
	case RoleAdmin:
		return "admin"
	default:
		return "public"
	}
}

// Caller identifies who invokes an operation. ID is the team id for RoleTeam
// and the jury id for RoleJury; it is empty otherwise.
type Caller struct {
	Role Role
	ID   string
}

func Admin() Caller               { return Caller{Role: RoleAdmin} }
func Jury(id string) Caller       { return Caller{Role: RoleJury, ID: id} }
func TeamCaller(id string) Caller { return Caller{Role: RoleTeam, ID: id} }

func (c Caller) require(allowed ...Role) error {
	for _, r := range allowed {
		if c.Role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: role %s may not perform this operation", ErrUnauthorized, c.Role)
}

// actsForTeam checks that a team caller only acts on its own team.
func (c Caller) actsForTeam(teamID string) error {
	if c.Role == RoleTeam && c.ID != teamID {
		return fmt.Errorf("%w: team %s cannot act for team %s", ErrUnauthorized, c.ID, teamID)
	}
	return nil
}
