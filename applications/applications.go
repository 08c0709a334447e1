package applications

import (
	werrors "github.com/eiasy/wolf/internal/errors"
)

// Application is a registered OAuth2-style client. The id is immutable after
// creation; createTime and updateTime are owned by the registry and never
// client-supplied.
type Application struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Secret               string   `json:"secret,omitempty"`
	RedirectURIs         []string `json:"redirectUris"`
	Grants               []string `json:"grants"`
	AccessTokenLifetime  int64    `json:"accessTokenLifetime"`
	RefreshTokenLifetime int64    `json:"refreshTokenLifetime"`
	CreateTime           int64    `json:"createTime"`
	UpdateTime           int64    `json:"updateTime"`
}

// Summary is the projection returned by list operations. It never carries
// the secret or the full redirect/grant configuration.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreateTime  int64  `json:"createTime"`
	UpdateTime  int64  `json:"updateTime"`
}

// Validate checks the client-supplied fields of an application.
func (a *Application) Validate() error {
	if a.ID == "" {
		return werrors.New(werrors.KindInvalidParam, "application id is required")
	}
	if a.Name == "" {
		return werrors.New(werrors.KindInvalidParam, "application name is required")
	}
	if a.Secret == "" {
		return werrors.New(werrors.KindInvalidParam, "application secret is required")
	}
	if a.AccessTokenLifetime <= 0 {
		return werrors.New(werrors.KindInvalidParam, "accessTokenLifetime must be positive")
	}
	if a.RefreshTokenLifetime <= 0 {
		return werrors.New(werrors.KindInvalidParam, "refreshTokenLifetime must be positive")
	}
	return nil
}

// Redacted returns a copy with the secret stripped. All externally visible
// application payloads outside the dedicated secret reveal go through this.
func (a *Application) Redacted() *Application {
	out := *a
	out.Secret = ""
	out.RedirectURIs = append([]string(nil), a.RedirectURIs...)
	out.Grants = append([]string(nil), a.Grants...)
	return &out
}

// Summarize projects the application to its list representation.
func (a *Application) Summarize() Summary {
	return Summary{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		CreateTime:  a.CreateTime,
		UpdateTime:  a.UpdateTime,
	}
}

// HasGrant checks if the application is allowed a specific grant type.
func (a *Application) HasGrant(grant string) bool {
	for _, g := range a.Grants {
		if g == grant {
			return true
		}
	}
	return false
}
