package club

import (
	"slices"
	"strconv"
	"strings"
)

// Delimiter separates user ids in a stored membership field. Ids are decimal,
// so no escaping is needed.
const Delimiter = ","

// State is the relation between a user and a club.
type State int

const (
	Stranger State = iota
	Pending
	Member
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Member:
		return "member"
	default:
		return "stranger"
	}
}

// JoinStatus is the outcome of a join request.
type JoinStatus int

const (
	RequestSent JoinStatus = iota
	AlreadyPending
	AlreadyMember
)

// Message returns the user-facing text for the outcome.
func (s JoinStatus) Message() string {
	switch s {
	case AlreadyPending:
		return "Request already pending"
	case AlreadyMember:
		return "Already a member"
	default:
		return "Join request sent"
	}
}

func (s JoinStatus) String() string {
	switch s {
	case AlreadyPending:
		return "already_pending"
	case AlreadyMember:
		return "already_member"
	default:
		return "request_sent"
	}
}

// Membership holds the confirmed and pending user ids of a club, in
// insertion order.
type Membership struct {
	Members []string
	Pending []string
}

// Decode splits a stored membership field. The empty string is the empty
// sequence.
func Decode(field string) []string {
	if field == "" {
		return []string{}
	}
	return strings.Split(field, Delimiter)
}

// Encode joins ids into a stored membership field.
func Encode(ids []string) string {
	return strings.Join(ids, Delimiter)
}

// DecodeMembership builds a Membership from the two stored fields.
func DecodeMembership(members, pending string) Membership {
	return Membership{
		Members: Decode(members),
		Pending: Decode(pending),
	}
}

// FormatUserID renders a user id the way it is stored.
func FormatUserID(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// StateOf reports where userID stands in the club.
func (m *Membership) StateOf(userID int64) State {
	id := FormatUserID(userID)
	switch {
	case slices.Contains(m.Members, id):
		return Member
	case slices.Contains(m.Pending, id):
		return Pending
	default:
		return Stranger
	}
}

// RequestJoin applies a join request for userID. Only a stranger changes the
// membership: the id is appended to the end of Pending.
func (m *Membership) RequestJoin(userID int64) JoinStatus {
	switch m.StateOf(userID) {
	case Member:
		return AlreadyMember
	case Pending:
		return AlreadyPending
	}
	m.Pending = append(m.Pending, FormatUserID(userID))
	return RequestSent
}
