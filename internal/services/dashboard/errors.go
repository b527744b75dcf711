package dashboard

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// NoDataMessage is shown when the provider returns no days for a query.
const NoDataMessage = "No data available for the selected inputs."

var (
	ErrNoResult        = errors.New("no result installed")
	ErrStaleResult     = errors.New("result superseded by a newer submission")
	ErrInvalidPageSize = errors.New("page size must be one of 10, 20, 50")
	ErrUnknownAction   = errors.New("unknown page action")
	ErrDateNotFound    = errors.New("date not in result set")
)

// TransportError reports a failed provider call. Message is the
// collaborator's own error text and is shown to users verbatim.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string { return e.Message }

func (e *TransportError) Unwrap() error { return e.Err }

// NoDataError reports a well-formed response that covers zero days.
type NoDataError struct{}

func (*NoDataError) Error() string { return NoDataMessage }

// MisalignedDataError reports a metric array whose length disagrees with
// the date axis.
type MisalignedDataError struct {
	Metric string
	Want   int
	Got    int
}

func (e *MisalignedDataError) Error() string {
	return fmt.Sprintf("provider returned %d values for %s but %d dates", e.Got, e.Metric, e.Want)
}

// FieldError is a single rejected query field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports a malformed query.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "invalid query: " + strings.Join(parts, "; ")
}
