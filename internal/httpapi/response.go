package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/huangsam/scorecard/core"
	"github.com/huangsam/scorecard/internal/validation"
	"go.uber.org/zap"
)

// errBadRequest marks request bodies and query parameters that cannot be decoded.
var errBadRequest = errors.New("bad request")

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Envelope provides a consistent JSON response structure.
type Envelope struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Success bool   `json:"success"`
}

// writeJSON writes data wrapped in an envelope with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	envelope := Envelope{Success: status < 400, Data: data}
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps err to a status code and writes it as an error envelope.
func writeError(w http.ResponseWriter, err error, logger *zap.Logger) {
	status := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		message = "internal error"
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Envelope{Error: message}); err != nil {
		logger.Error("failed to encode error response", zap.Error(err))
	}
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, validation.ErrValidation),
		errors.Is(err, core.ErrInvalidScore),
		errors.Is(err, core.ErrUnknownMetric),
		errors.Is(err, core.ErrUnknownPhase),
		errors.Is(err, core.ErrInvalidDateRange),
		errors.Is(err, core.ErrInvalidCampaignType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes a JSON request body into target and validates it.
// An empty body leaves target untouched.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, target any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}
	return s.validate.Validate(target)
}
