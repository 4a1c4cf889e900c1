package apiutil

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

// HandlerError carries the status and user-facing message for a failed
// request. Err, when set, is logged but never shown.
type HandlerError struct {
	Status  int
	Message string
	Err     error
}

func (e HandlerError) Error() string {
	return e.Message
}

func (e HandlerError) Unwrap() error {
	return e.Err
}

func BadRequest(message string, err error) HandlerError {
	return HandlerError{Status: http.StatusBadRequest, Message: message, Err: err}
}

// WriteError responds with err's status and message. Errors that are not a
// HandlerError become a logged 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.Ctx(r.Context())

	var handlerErr HandlerError
	if !errors.As(err, &handlerErr) {
		logger.Error().Err(err).Msg("Unhandled request error")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if handlerErr.Status >= http.StatusInternalServerError {
		logger.Error().Err(handlerErr.Err).Int("status", handlerErr.Status).Msg(handlerErr.Message)
	} else if handlerErr.Err != nil {
		logger.Debug().Err(handlerErr.Err).Int("status", handlerErr.Status).Msg(handlerErr.Message)
	}
	http.Error(w, handlerErr.Message, handlerErr.Status)
}
