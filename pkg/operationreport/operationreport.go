// Package operationreport collects the errors of parsing a document and renders them as GraphQL errors.
package operationreport

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type Report struct {
	InternalErrors []error
	ExternalErrors []ExternalError
}

func (r Report) Error() string {
	var lines []string
	for i := range r.InternalErrors {
		lines = append(lines, fmt.Sprintf("internal: %s", r.InternalErrors[i].Error()))
	}
	for i := range r.ExternalErrors {
		lines = append(lines, fmt.Sprintf("external: %s, locations: %+v", r.ExternalErrors[i].Message, r.ExternalErrors[i].Locations))
	}
	return strings.Join(lines, "\n")
}

func (r *Report) HasErrors() bool {
	return len(r.InternalErrors) > 0 || len(r.ExternalErrors) > 0
}

func (r *Report) Reset() {
	r.InternalErrors = r.InternalErrors[:0]
	r.ExternalErrors = r.ExternalErrors[:0]
}

func (r *Report) AddInternalError(err error) {
	r.InternalErrors = append(r.InternalErrors, err)
}

func (r *Report) AddExternalError(gqlError ExternalError) {
	r.ExternalErrors = append(r.ExternalErrors, gqlError)
}

// AddError records err as external error if it describes a problem with the document, otherwise as internal error
func (r *Report) AddError(err error) {
	if err == nil {
		return
	}
	if externalError, ok := ErrParse(err); ok {
		r.AddExternalError(externalError)
		return
	}
	r.AddInternalError(err)
}

// ErrorsJSON renders the external errors as the errors object of a GraphQL response
func (r *Report) ErrorsJSON() ([]byte, error) {
	out := struct {
		Errors []ExternalError `json:"errors"`
	}{
		Errors: r.ExternalErrors,
	}
	if out.Errors == nil {
		out.Errors = []ExternalError{}
	}
	return json.Marshal(out)
}

// FromError returns a report holding err, a nil error gives an empty report
func FromError(err error) Report {
	var report Report
	if errors.As(err, &report) {
		return report
	}
	report.AddError(err)
	return report
}
