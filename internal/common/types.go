package common

// UserLevel is the role stored on every user row.
type UserLevel string

const (
	LevelAdmin UserLevel = "Admin"
	LevelUser  UserLevel = "User"
	LevelGuest UserLevel = "Guest"
)

func (l UserLevel) String() string {
	return string(l)
}

func (l UserLevel) IsValid() bool {
	return l == LevelAdmin || l == LevelUser || l == LevelGuest
}

// FriendStatus values; a friendship is created pending and may only move to accepted.
type FriendStatus string

const (
	FriendPending  FriendStatus = "pending"
	FriendAccepted FriendStatus = "accepted"
)

// Outcome is the result of an insert behind a duplicate guard.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeAlreadyExists
)

func (o Outcome) String() string {
	if o == OutcomeAlreadyExists {
		return "already exists"
	}
	return "created"
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uint64
	Level  UserLevel
	Token  string // raw bearer token, forwarded to the file store
}

func (a Actor) IsAdmin() bool {
	return a.Level == LevelAdmin
}

type MessageResponse struct {
	Message string `json:"message"`
}
