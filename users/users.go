package users

import (
	"golang.org/x/crypto/bcrypt"

	werrors "github.com/eiasy/wolf/internal/errors"
)

// ManagerAdmin is the role tag that marks a user as a delegated administrator
// scoped to its AppIDs. Any other value (including empty) means a regular
// user with no administrative rights.
const ManagerAdmin = "admin"

type User struct {
	ID           string   `json:"id,omitempty"`
	Username     string   `json:"username"` // Unique key
	Nickname     string   `json:"nickname,omitempty"`
	Email        string   `json:"email,omitempty"`
	Tel          string   `json:"tel,omitempty"`
	PasswordHash string   `json:"-"` // Never serialize
	AppIDs       []string `json:"appIDs,omitempty"` // Application ids the role is scoped to
	Manager      string   `json:"manager,omitempty"`
}

// IsAdmin returns true if the user is a delegated administrator.
func (u *User) IsAdmin() bool {
	return u.Manager == ManagerAdmin
}

// HasApp checks whether an application id is within the user's scope.
func (u *User) HasApp(appID string) bool {
	for _, id := range u.AppIDs {
		if id == appID {
			return true
		}
	}
	return false
}

// Validate checks the client-supplied fields of a user.
func (u *User) Validate() error {
	if u.Username == "" {
		return werrors.New(werrors.KindInvalidParam, "username is required")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
