package domain

const (
	ActorRoleUser  = "user"
	ActorRoleAdmin = "admin"
)

// Identity is a resolved reference to an external user.
type Identity struct {
	ID     string `json:"id" yaml:"id"`
	Handle string `json:"handle" yaml:"handle"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Actor is the authenticated requester of an operation.
type Actor struct {
	ID   string `json:"id" yaml:"id"`
	Role string `json:"role" yaml:"role"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == ActorRoleAdmin
}
