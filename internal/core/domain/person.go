package domain

// Person is owned by the people-management subsystem; the identity core only
// reads it for ownership checks. UserID is an optional back-reference that
// links a person record to an account.
type Person struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UserID    string `json:"user_id,omitempty"`
}
