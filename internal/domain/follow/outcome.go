package follow

import "net/http"

// Outcome is the non-fatal result of a follow request.
type Outcome string

const (
	OutcomeOK               Outcome = "ok"
	OutcomeUserNotFound     Outcome = "user_not_found"
	OutcomeSelfFollow       Outcome = "self_follow"
	OutcomeAlreadyFollowing Outcome = "already_following"
)

// Message is the text shown to the user after the request.
func (o Outcome) Message(username string) string {
	switch o {
	case OutcomeOK:
		return "You are now following " + username + "."
	case OutcomeUserNotFound:
		return "No user named " + username + " exists."
	case OutcomeSelfFollow:
		return "You cannot follow yourself."
	case OutcomeAlreadyFollowing:
		return "You are already following " + username + "."
	}
	return ""
}

// HTTPStatus is the status used for JSON clients.
func (o Outcome) HTTPStatus() int {
	switch o {
	case OutcomeUserNotFound:
		return http.StatusNotFound
	case OutcomeSelfFollow:
		return http.StatusBadRequest
	case OutcomeAlreadyFollowing:
		return http.StatusConflict
	}
	return http.StatusOK
}
