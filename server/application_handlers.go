package server

import (
	"encoding/json"
	"net/http"

	"github.com/eiasy/wolf/applications"
	werrors "github.com/eiasy/wolf/internal/errors"
)

// applicationPayload is the envelope for single-application responses.
type applicationPayload struct {
	Application *applications.Application `json:"application"`
}

type listPayload struct {
	Applications []applications.Summary `json:"applications"`
	Total        int                    `json:"total"`
}

func (s *Server) ApplicationAddHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var app applications.Application
		if err := decodeBody(r, &app); err != nil {
			s.writeError(w, err)
			return
		}

		added, err := s.registry.Add(callerIdentity(r), &app)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeOK(w, applicationPayload{Application: added})
	}
}

func (s *Server) ApplicationUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var app applications.Application
		if err := decodeBody(r, &app); err != nil {
			s.writeError(w, err)
			return
		}

		updated, err := s.registry.Update(callerIdentity(r), &app)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeOK(w, applicationPayload{Application: updated})
	}
}

func (s *Server) ApplicationDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ID string `json:"id"`
		}
		if err := decodeBody(r, &body); err != nil {
			s.writeError(w, err)
			return
		}

		if err := s.registry.Delete(callerIdentity(r), body.ID); err != nil {
			s.writeError(w, err)
			return
		}
		s.writeOK(w, nil)
	}
}

func (s *Server) ApplicationGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app, err := s.registry.Get(callerIdentity(r), r.URL.Query().Get("id"))
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeOK(w, applicationPayload{Application: app})
	}
}

func (s *Server) ApplicationSecretHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		secret, err := s.registry.GetSecret(callerIdentity(r), r.URL.Query().Get("id"))
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeOK(w, map[string]string{"secret": secret})
	}
}

func (s *Server) ApplicationListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := s.registry.List(callerIdentity(r), r.URL.Query().Get("key"))
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeOK(w, listPayload{Applications: summaries, Total: len(summaries)})
	}
}

func (s *Server) ApplicationListAllHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := s.registry.ListAll(callerIdentity(r))
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeOK(w, listPayload{Applications: summaries, Total: len(summaries)})
	}
}

func (s *Server) ApplicationDiagramHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		diagram, err := s.registry.Diagram(callerIdentity(r), r.URL.Query().Get("id"))
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeOK(w, map[string]string{"diagram": diagram})
	}
}

func decodeBody(r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return werrors.Newf(werrors.KindInvalidParam, "malformed request body: %v", err)
	}
	return nil
}
