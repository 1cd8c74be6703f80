package user

import "fmt"

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	}
	return ""
}

// ParseGender accepts "" (unset) or one of M, F, O.
func ParseGender(s string) (*Gender, error) {
	if s == "" {
		return nil, nil
	}
	g := Gender(s)
	if !g.IsValid() {
		return nil, fmt.Errorf("invalid gender %q", s)
	}
	return &g, nil
}
