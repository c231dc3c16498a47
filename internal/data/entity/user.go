package entity

// Role is an ordered authority tier: user < moderator < admin.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Level returns the numeric tier of the role, 0 for unknown roles.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleModerator:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

func (r Role) Valid() bool {
	return r.Level() > 0
}

// AtLeast reports whether r carries the authority of other or higher.
func (r Role) AtLeast(other Role) bool {
	return r.Level() >= other.Level()
}

type User struct {
	Base
	Username  string  `db:"username"`
	Email     string  `db:"email"`
	FirstName *string `db:"first_name"`
	LastName  *string `db:"last_name"`
	Bio       *string `db:"bio"`
	Role      Role    `db:"role"`
	Confirmed bool    `db:"confirmed"`
}
