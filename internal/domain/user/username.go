package user

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/litrevu/litrevu/internal/shared/constants"
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}@.+\-_]+$`)

// NormalizeUsername applies NFKC normalization and checks the allowed
// alphabet: letters, digits and @ . + - _.
func NormalizeUsername(username string) (string, error) {
	username = norm.NFKC.String(strings.TrimSpace(username))
	if username == "" {
		return "", fmt.Errorf("username is required")
	}
	if utf8.RuneCountInString(username) > constants.MaxUsernameLength {
		return "", fmt.Errorf("username exceeds maximum length of %d characters", constants.MaxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return "", fmt.Errorf("username may contain only letters, digits and @/./+/-/_ characters")
	}
	return username, nil
}
