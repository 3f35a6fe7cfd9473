package user

// User represents a registered user.
type User struct {
	ID           int64  // ID is assigned on creation and never changes
	Name         string // Name is the display name
	Email        string // Email is unique, compared exactly
	PasswordHash string // PasswordHash is the bcrypt hash of the password
}
