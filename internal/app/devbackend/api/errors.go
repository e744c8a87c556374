package api

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// errorBody - тело ошибки в формате, который ожидает консоль: {"error": "..."}
type errorBody struct {
	status  int
	Message string `json:"error" doc:"Текст ошибки"`
}

func (e *errorBody) Error() string {
	return e.Message
}

func (e *errorBody) GetStatus() int {
	return e.status
}

func newError(status int, msg string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 {
		msg = msg + ": " + strings.Join(details, "; ")
	}
	return &errorBody{status: status, Message: msg}
}

func useErrorBodies() {
	huma.NewError = newError
}
