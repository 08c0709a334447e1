package server

import (
	"encoding/json"
	"errors"
	"net/http"

	werrors "github.com/eiasy/wolf/internal/errors"
)

const contentTypeJSON = "application/json; charset=utf-8"

type okResponse struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data"`
}

type failResponse struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeOK(w http.ResponseWriter, data interface{}) {
	if data == nil {
		data = struct{}{}
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	if err := json.NewEncoder(w).Encode(okResponse{OK: true, Data: data}); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

// writeError renders the failure envelope. Access denial is the only kind
// carried at 401; internal failures surface as 500 with an opaque message,
// every other domain failure stays at 200.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	kind := werrors.KindOf(err)

	message := err.Error()
	var domainErr *werrors.Error
	if errors.As(err, &domainErr) {
		message = domainErr.Message
	}

	status := http.StatusOK
	switch kind {
	case werrors.KindAccessDenied:
		status = http.StatusUnauthorized
	case werrors.KindInternal:
		status = http.StatusInternalServerError
		message = "internal error"
		s.log.Error().Err(err).Msg("internal failure")
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(failResponse{OK: false, Code: string(kind), Message: message}); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}
