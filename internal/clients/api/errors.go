package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// TransportError means no response came back: refused connection, DNS,
// reset, cancelled context.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is a non-2xx response. Detail is empty when the body carried no
// usable "detail" field.
type StatusError struct {
	Op     string
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.Status, e.Detail)
}

func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// UserMessage turns an error from this package into the text shown in an
// error notification.
func UserMessage(err error) string {
	var (
		se *StatusError
		te *TransportError
	)
	switch {
	case errors.As(err, &se):
		if se.Detail != "" {
			return "Erro: " + se.Detail
		}
		return fmt.Sprintf("Erro: falha na requisição (HTTP %d)", se.Status)
	case errors.As(err, &te):
		return "Erro na conexão: " + te.Err.Error()
	default:
		return "Erro: " + err.Error()
	}
}

type validationIssue struct {
	Msg string `json:"msg"`
}

// parseDetail extracts "detail" from an error body. FastAPI sends a string for
// HTTPException and a list of issues for request validation failures.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var issues []validationIssue
	if err := json.Unmarshal(envelope.Detail, &issues); err == nil {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			if issue.Msg != "" {
				msgs = append(msgs, issue.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
