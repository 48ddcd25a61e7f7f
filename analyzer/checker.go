// Package analyzer implements the Program/Declaration/Policy Checker
// (spec §4.9, C9): the top-level entry points that drive a whole program
// through the Composer, the Primitive Checker, and the Expression
// Checker, threading one mutable Scope across declarations and rules in
// source order (spec §5).
package analyzer

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/expression"
	"github.com/thingpedia/tt-semcheck/resolver"
)

// Checker drives TypeCheckProgram and its siblings. It carries an Oracle
// and the ambient concerns (logging, a per-run correlation ID) that
// spec.md's original design leaves to the embedding application.
type Checker struct {
	Oracle          resolver.Oracle
	UseMeta         bool
	StrictConflicts bool

	Logger *logrus.Logger
}

// New returns a Checker over oracle. logger may be nil, in which case a
// discarding logger is used — logging is strictly observational and
// never affects control flow (SPEC_FULL §3.2).
func New(oracle resolver.Oracle, useMeta, strictConflicts bool, logger *logrus.Logger) *Checker {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Checker{Oracle: oracle, UseMeta: useMeta, StrictConflicts: strictConflicts, Logger: logger}
}

// env builds the Expression/Composer Env for a single typeCheckProgram
// run. runID is not stored in the Env; the run ID is attached only to
// the caller's own log lines.
func (c *Checker) env(runID string, classes map[string]ast.ClassDef) expression.Env {
	return expression.Env{
		Oracle:          c.Oracle,
		UseMeta:         c.UseMeta,
		Classes:         classes,
		StrictConflicts: c.StrictConflicts,
	}
}

// newRunID returns a fresh correlation id for one TypeCheckProgram
// invocation's log lines.
func newRunID() string {
	return uuid.New().String()
}

// withRun returns an entry over l carrying the run id as a field, or a
// discarding entry if l is nil (defensive; New always installs a
// non-nil logger).
func withRun(l *logrus.Logger, runID string) *logrus.Entry {
	if l == nil {
		l = logrus.New()
		l.SetOutput(io.Discard)
	}
	return l.WithField("run_id", runID)
}
