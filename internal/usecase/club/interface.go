package club

import "context"

// Usecase defines the interface for club business logic operations.
type Usecase interface {
	CreateClub(ctx context.Context, in CreateClubRequest) (*CreateClubResponse, error)
	ListClubs(ctx context.Context) (*ListClubsResponse, error)
	GetMembers(ctx context.Context, in GetMembersRequest) (*GetMembersResponse, error)
	RequestJoin(ctx context.Context, in RequestJoinRequest) (*RequestJoinResponse, error)
}
