package rules

import (
	"github.com/npillmayer/llkit/ll"
)

// Analyze parses rule strings and runs an LL(1) analysis on the resulting
// grammar.
func Analyze(lines []string, opts ...ll.Option) (*ll.Analysis, error) {
	g, err := Parse(lines)
	if err != nil {
		return nil, err
	}
	return ll.Analyze(g, opts...)
}

// Status values of a Response.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the outcome of an analysis, as handed to clients: either a
// complete report or an error message.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Respond analyses rule strings and packages the result.
func Respond(lines []string, opts ...ll.Option) Response {
	a, err := Analyze(lines, opts...)
	if err != nil {
		return Response{Status: StatusError, Message: err.Error()}
	}
	return Response{Status: StatusSuccess, Message: a.Report().String()}
}
