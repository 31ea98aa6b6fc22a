// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/numlab/convergence"
	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/roots"
)

// FindRoot validates req, compiles its formula and runs the chosen method.
//
// On a precondition failure (no sign change over [a, b]) both the response,
// with status precondition_failed, and a *Failure are returned. Every other
// failure returns a nil response.
func (e *Engine) FindRoot(ctx context.Context, req RootRequest) (*RootResponse, error) {
	runID := e.newID()
	log := e.log.With(
		zap.String("family", FamilyRoot),
		zap.String("method", req.Method),
		zap.String("run_id", runID),
	)
	if err := ctx.Err(); err != nil {
		return nil, e.fail(log, FamilyRoot, req.Method, runID, err)
	}

	req = e.rootDefaults(req)
	if errs := append(validateStruct(req), req.checkPoints()...); len(errs) > 0 {
		return nil, e.fail(log, FamilyRoot, req.Method, runID, errs)
	}

	f, err := expr.Parse(req.Expression)
	if err != nil {
		return nil, e.fail(log, FamilyRoot, req.Method, runID, err)
	}
	if !f.DependsOnX() {
		log.Warn("expression does not depend on x", zap.String("expression", f.String()))
	}

	resp := &RootResponse{RunID: runID, Method: req.Method, Expression: f.String()}
	c := convergence.Criteria{Tol: req.Tol, MaxIter: req.MaxIter}

	start := e.now()
	var res *roots.Result
	switch roots.Method(req.Method) {
	case roots.MethodBisection:
		res, err = roots.Bisection(f.Func(), *req.A, *req.B, c)
	case roots.MethodRegulaFalsi:
		res, err = roots.RegulaFalsi(f.Func(), *req.A, *req.B, c)
	case roots.MethodNewton:
		df := f.Derivative()
		resp.Derivative = df.String()
		res, err = roots.Newton(f.Func(), df.Func(), *req.X0, c)
	case roots.MethodSecant:
		res, err = roots.Secant(f.Func(), *req.X0, *req.X1, c)
	default:
		err = errors.New("engine: unhandled root method " + req.Method)
	}
	d := e.now().Sub(start)

	if res != nil {
		if expr.IsFinite(res.Root) {
			resp.Root = &res.Root
		}
		resp.Iterations = res.Iterations
		resp.Status = string(res.Status)
		resp.Trace = res.Trace
	}
	if err != nil {
		fail := e.fail(log, FamilyRoot, req.Method, runID, err)
		if res != nil && res.Status == roots.StatusPreconditionFailed {
			return resp, fail
		}
		return nil, fail
	}
	e.done(log, FamilyRoot, req.Method, resp.Status, resp.Iterations, d)

	return resp, nil
}

func (e *Engine) rootDefaults(req RootRequest) RootRequest {
	if req.Tol == 0 {
		req.Tol = e.defaults.Tol
	}
	if req.MaxIter == 0 {
		req.MaxIter = e.defaults.MaxIter
	}

	return req
}
