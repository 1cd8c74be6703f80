package user

// AuthContext is the resolved identity of a request. The zero value is the
// anonymous caller.
type AuthContext struct {
	UserID    uint
	Username  string
	SessionID string
}

func Anonymous() AuthContext {
	return AuthContext{}
}

func (a AuthContext) IsAuthenticated() bool {
	return a.UserID != 0
}
