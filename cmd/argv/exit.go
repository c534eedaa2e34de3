package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dzonerzy/go-argv/argv"
)

// exitError requests a specific exit code from inside a command.
type exitError struct {
	Code int
	Err  error
}

func (e *exitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *exitError) Unwrap() error { return e.Err }

// exitDefaults holds the tool's exit codes.
type exitDefaults struct {
	Success      int // default: 0
	GeneralError int // default: 1
	Misuse       int // default: 2
	VerifyFailed int // default: 3
}

func defaultExitDefaults() exitDefaults {
	return exitDefaults{Success: 0, GeneralError: 1, Misuse: 2, VerifyFailed: 3}
}

// exitCodes maps errors to process exit codes.
type exitCodes struct {
	byType   map[argv.ErrorType]int
	defaults exitDefaults
}

func newExitCodes() *exitCodes {
	m := &exitCodes{
		byType:   make(map[argv.ErrorType]int),
		defaults: defaultExitDefaults(),
	}
	m.byType[argv.ErrorTypeUnknownOption] = m.defaults.Misuse
	m.byType[argv.ErrorTypeMissingValue] = m.defaults.Misuse
	m.byType[argv.ErrorTypeInvalidValue] = m.defaults.Misuse
	m.byType[argv.ErrorTypeInvalidArgument] = m.defaults.Misuse
	return m
}

// resolve converts an error to an exit code.
// Precedence:
//  1. exitError (requested code)
//  2. argv.Error category mapping
//  3. GeneralError
func (e *exitCodes) resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var ae *argv.Error
	if errors.As(err, &ae) {
		if code, ok := e.byType[ae.Type]; ok {
			return code
		}
	}
	return e.defaults.GeneralError
}

func misuse(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{Code: defaultExitDefaults().Misuse, Err: err}
}

// misuseArgs reports positional argument errors as misuse.
func misuseArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return misuse(check(cmd, args))
	}
}
