package server

import (
	"net/http"

	"github.com/eiasy/wolf/users"
)

// userAddRequest is the user creation payload; the password travels only in
// this request and is stored as a verifier.
type userAddRequest struct {
	Username string   `json:"username"`
	Nickname string   `json:"nickname"`
	Email    string   `json:"email"`
	Tel      string   `json:"tel"`
	AppIDs   []string `json:"appIDs"`
	Manager  string   `json:"manager"`
	Password string   `json:"password"`
}

func (s *Server) UserAddHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userAddRequest
		if err := decodeBody(r, &req); err != nil {
			s.writeError(w, err)
			return
		}

		user := users.User{
			Username: req.Username,
			Nickname: req.Nickname,
			Email:    req.Email,
			Tel:      req.Tel,
			AppIDs:   req.AppIDs,
			Manager:  req.Manager,
		}
		if err := s.accounts.Add(callerIdentity(r), &user, req.Password); err != nil {
			s.writeError(w, err)
			return
		}
		s.writeOK(w, nil)
	}
}

func (s *Server) UserDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
		}
		if err := decodeBody(r, &body); err != nil {
			s.writeError(w, err)
			return
		}

		if err := s.accounts.Delete(callerIdentity(r), body.Username); err != nil {
			s.writeError(w, err)
			return
		}
		s.writeOK(w, nil)
	}
}

func (s *Server) UserLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := decodeBody(r, &body); err != nil {
			s.writeError(w, err)
			return
		}

		token, err := s.accounts.Login(body.Username, body.Password)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeOK(w, map[string]string{
			"token":    token,
			"username": body.Username,
		})
	}
}
