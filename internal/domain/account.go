package domain

import "fmt"

type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func ParseGender(raw string) (Gender, error) {
	gender := Gender(raw)
	switch gender {
	case GenderUnset, GenderMale, GenderFemale, GenderOther:
		return gender, nil
	default:
		return "", fmt.Errorf("unsupported gender %q (male|female|other)", raw)
	}
}

// Account is the stored record. PasswordHash never leaves the account
// service; everything outside the store works with Profile values.
type Account struct {
	Username     string
	PasswordHash string
	Name         string
	Age          int
	Gender       Gender
	Email        string
}

func (a Account) Public() Profile {
	return Profile{
		Username: a.Username,
		Name:     a.Name,
		Age:      a.Age,
		Gender:   a.Gender,
		Email:    a.Email,
	}
}

// Profile is the password-stripped view of an account.
type Profile struct {
	Username string
	Name     string
	Age      int
	Gender   Gender
	Email    string
}

// ProfilePatch lists exactly the fields a profile update may touch.
// Username and the password hash are immutable after registration.
type ProfilePatch struct {
	Name   *string
	Age    *int
	Gender *Gender
	Email  *string
}

func (p ProfilePatch) IsZero() bool {
	return p.Name == nil && p.Age == nil && p.Gender == nil && p.Email == nil
}

// Apply merges the patch onto the stored account, keeping the username
// and password hash intact.
func (p ProfilePatch) Apply(account Account) Account {
	if p.Name != nil {
		account.Name = *p.Name
	}
	if p.Age != nil {
		account.Age = *p.Age
	}
	if p.Gender != nil {
		account.Gender = *p.Gender
	}
	if p.Email != nil {
		account.Email = *p.Email
	}

	return account
}
