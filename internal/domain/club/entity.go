package club

// Club represents a club and its two membership sequences.
type Club struct {
	ID          int64
	Name        string
	Description string
	Membership  Membership
}
