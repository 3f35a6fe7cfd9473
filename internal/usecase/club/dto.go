package club

// CreateClubRequest represents the request payload for creating a club.
type CreateClubRequest struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"max=1000"`
}

// CreateClubResponse represents the response payload after creating a club.
type CreateClubResponse struct {
	ID int64
}

// Club is a club as listed, with membership in its stored encoding.
type Club struct {
	ID          int64
	Name        string
	Description string
	Members     string
	Pending     string
}

// ListClubsResponse represents the response payload for club listing.
type ListClubsResponse struct {
	Clubs []Club
}

// GetMembersRequest represents the request payload for reading membership.
type GetMembersRequest struct {
	ClubID int64
}

// GetMembersResponse lists confirmed and pending user ids in insertion order.
type GetMembersResponse struct {
	Members []string
	Pending []string
}

// RequestJoinRequest represents a user asking to join a club.
type RequestJoinRequest struct {
	ClubID int64
	UserID int64
}

// RequestJoinResponse reports the outcome of a join request.
type RequestJoinResponse struct {
	Status  string
	Message string
}
