package analyzer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/thingpedia/tt-semcheck/ast"
	"github.com/thingpedia/tt-semcheck/expression"
	"github.com/thingpedia/tt-semcheck/scope"
	"github.com/thingpedia/tt-semcheck/ttkind"
)

// TypeCheckProgram is the top-level entry point (spec §4.9, §6
// "typeCheckProgram"). It validates the program's principal, then
// threads a single Scope through every Declaration and Rule in source
// order: declarations are cleaned (globals kept, locals/pending-inputs
// reset) between siblings, so a later declaration sees every earlier
// one's published name but none of its transient locals.
func (c *Checker) TypeCheckProgram(ctx context.Context, program *ast.Program) error {
	runID := newRunID()
	logger := withRun(c.Logger, runID)
	env := c.env(runID, program.Classes)
	env.Ctx = ctx

	sc := scope.New()

	if program.Principal != nil {
		pt, err := expression.TypeForValue(program.Principal, sc)
		if err != nil {
			return err
		}
		if !isPrincipalType(pt) {
			return ttkind.ErrInvalidPrincipal.New(pt.String())
		}
	}

	for _, decl := range program.Declarations {
		sc.Clean()
		if err := c.TypeCheckDeclaration(env, decl, sc); err != nil {
			logger.WithFields(logrus.Fields{"name": decl.Name, "err": err}).Warn("declaration failed")
			return err
		}
	}

	for i, rule := range program.Rules {
		sc.Clean()
		if err := c.TypeCheckRule(env, rule, sc); err != nil {
			logger.WithFields(logrus.Fields{"index": i, "err": err}).Warn("rule failed")
			return err
		}
	}

	logger.WithFields(logrus.Fields{"declarations": len(program.Declarations), "rules": len(program.Rules)}).Info("program: checked")
	return nil
}
