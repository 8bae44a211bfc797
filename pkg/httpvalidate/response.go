package httpvalidate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/proptypes"
)

// ErrorResponse is the JSON body written by WriteError.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// WriteError is the default ErrorHandler. Validation failures become 422
// responses with per-property messages; decoding failures map to 400, 413
// and 415.
func WriteError(w http.ResponseWriter, _ *http.Request, err error) {
	status, detail := errorToDetail(err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: detail})
}

func errorToDetail(err error) (int, *ErrorDetail) {
	if verrs := proptypes.ExtractValidationErrors(err); verrs != nil {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_error",
			Message: verrs.Error(),
			Details: verrs.Details(),
		}
	}

	switch {
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: "unsupported_media_type", Message: err.Error()}
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, &ErrorDetail{Code: "body_too_large", Message: err.Error()}
	case errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest, &ErrorDetail{Code: "invalid_json", Message: err.Error()}
	}

	return http.StatusInternalServerError, &ErrorDetail{
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
