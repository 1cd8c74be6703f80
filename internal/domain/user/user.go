package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/litrevu/litrevu/internal/shared/biztime"
)

// User is a flat account record; birth date and gender are optional.
type User struct {
	id           uint
	username     string
	email        string
	birthDate    *time.Time
	gender       *Gender
	passwordHash string
	createdAt    time.Time
}

func NewUser(username, email, passwordHash string, birthDate *time.Time, gender *Gender) (*User, error) {
	normalized, err := NormalizeUsername(username)
	if err != nil {
		return nil, err
	}
	email, err = NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if gender != nil && !gender.IsValid() {
		return nil, fmt.Errorf("invalid gender %q", *gender)
	}
	if birthDate != nil {
		d := birthDate.UTC().Truncate(24 * time.Hour)
		if d.After(biztime.NowUTC()) {
			return nil, fmt.Errorf("birth date cannot be in the future")
		}
		birthDate = &d
	}

	return &User{
		username:     normalized,
		email:        email,
		birthDate:    birthDate,
		gender:       gender,
		passwordHash: passwordHash,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructUser(id uint, username, email, passwordHash string, birthDate *time.Time, gender *Gender, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:           id,
		username:     username,
		email:        email,
		birthDate:    birthDate,
		gender:       gender,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}, nil
}

// NormalizeEmail lower-cases the domain part and validates the address.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("enter a valid email address")
	}
	local, domain, _ := strings.Cut(email, "@")
	return local + "@" + strings.ToLower(domain), nil
}

func (u *User) ID() uint              { return u.id }
func (u *User) Username() string      { return u.username }
func (u *User) Email() string         { return u.email }
func (u *User) BirthDate() *time.Time { return u.birthDate }
func (u *User) Gender() *Gender       { return u.gender }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) CreatedAt() time.Time  { return u.createdAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
