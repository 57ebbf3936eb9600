package cmd

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/alexandermeade/jason-rs/internal/errors"
	"github.com/alexandermeade/jason-rs/internal/token"
)

func TestNewLoggerDefaultsToWarnLevel(t *testing.T) {
	verbose = false
	defer func() { verbose = false }()

	logger := newLogger()
	if logger.GetLevel() != zerolog.WarnLevel {
		t.Errorf("got %v, want WarnLevel", logger.GetLevel())
	}
}

func TestNewLoggerVerboseUsesInfoLevel(t *testing.T) {
	verbose = true
	defer func() { verbose = false }()

	logger := newLogger()
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Errorf("got %v, want InfoLevel", logger.GetLevel())
	}
}

func TestPrintCompileErrorHandlesBundleAndSingle(t *testing.T) {
	bundle := errors.NewBundle([]*errors.Error{
		errors.New(errors.TypeError, "<test>", token.Position{}, "mismatch"),
	})
	printCompileError(bundle)
	printCompileError(errors.New(errors.ValueError, "<test>", token.Position{}, "bad value"))
	printCompileError(errorString("plain error"))
}

type errorString string

func (e errorString) Error() string { return string(e) }
