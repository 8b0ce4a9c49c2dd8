package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile is a participant's display profile. Fields left empty in an
// upsert keep their stored value; on first creation Role defaults to "user".
type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
	Role    string `json:"role"`
}
