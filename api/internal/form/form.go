// Package form implements the feedback form: collect an objective, ask a checker for its
// SMART evaluation, and lay the answer out as table rows or an error message.
package form

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"smart-checker/api/internal/smart"
)

// Messages shown in place of the results table.
const (
	UnreachableMessage = "Could not reach the checker. Please try again."
	FallbackMessage    = "Something went wrong."
)

var (
	// ErrUnreachable means the checker could not be contacted or answered with garbage.
	ErrUnreachable = errors.New("checker unreachable")
	// ErrNotReady is returned by Submit when the submit action is disabled.
	ErrNotReady = errors.New("form not ready to submit")
)

// ServerError is a non-2xx answer from the checker endpoint.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return "checker returned status " + strconv.Itoa(e.Status)
	}
	return e.Message
}

// Checker evaluates one objective.
type Checker interface {
	Check(ctx context.Context, objective string) (smart.Result, error)
}

// CheckerFunc adapts a function, e.g. evaluator.Evaluator.Evaluate, to Checker.
type CheckerFunc func(ctx context.Context, objective string) (smart.Result, error)

func (f CheckerFunc) Check(ctx context.Context, objective string) (smart.Result, error) {
	return f(ctx, objective)
}

// Form is the state of one form instance. It is not safe for concurrent use;
// Loading keeps a single instance from submitting twice.
type Form struct {
	Objective string
	Result    *smart.Result
	Error     string
	Loading   bool
}

// CanSubmit reports whether the submit action is enabled: not loading and at least
// smart.MinObjectiveLen characters after trimming.
func (f *Form) CanSubmit() bool {
	return !f.Loading && smart.ObjectiveLen(strings.TrimSpace(f.Objective)) >= smart.MinObjectiveLen
}

// Submit runs one round trip. On return exactly one of Result or Error is set and
// Loading is false. The returned error is the checker's, for callers that log it.
func (f *Form) Submit(ctx context.Context, c Checker) error {
	if !f.CanSubmit() {
		return ErrNotReady
	}
	f.Loading = true
	f.Result = nil
	f.Error = ""
	defer func() { f.Loading = false }()

	res, err := c.Check(ctx, f.Objective)
	if err != nil {
		f.Error = ErrorMessage(err)
		return err
	}
	f.Result = &res
	return nil
}

// Rows returns the table rows of the current result, or nil.
func (f *Form) Rows() []Row {
	if f.Result == nil {
		return nil
	}
	return Rows(*f.Result)
}

// ErrorMessage turns a checker error into the text shown to the user.
func ErrorMessage(err error) string {
	var se *ServerError
	switch {
	case errors.As(err, &se):
		if se.Message != "" {
			return se.Message
		}
		return FallbackMessage
	case errors.Is(err, ErrUnreachable):
		return UnreachableMessage
	case errors.Is(err, smart.ErrValidation), errors.Is(err, smart.ErrEvaluation):
		return smart.Message(err)
	default:
		return FallbackMessage
	}
}

// Run submits objective on a fresh form, for front ends without a disabled button.
// A submission CanSubmit would block reports the validation message.
func Run(ctx context.Context, objective string, c Checker) (*Form, error) {
	f := &Form{Objective: objective}
	err := f.Submit(ctx, c)
	if errors.Is(err, ErrNotReady) {
		f.Error = smart.ValidationMessage
		return f, fmt.Errorf("%w: %w", smart.ErrValidation, err)
	}
	return f, err
}
