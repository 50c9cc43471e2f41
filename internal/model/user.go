// Package model defines domain entities for the application.
package model

// User is one entry of the fixed demo listing served at /api/users.
type User struct {
	ID    uint32 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DemoUsers returns the fixed user listing in id order.
// A new slice is returned on every call.
func DemoUsers() []User {
	return []User{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
		{ID: 3, Name: "Charlie", Email: "charlie@example.com"},
	}
}
