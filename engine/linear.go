// SPDX-License-Identifier: MIT

package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/numlab/convergence"
	"github.com/katalvlaran/numlab/linsys"
	"github.com/katalvlaran/numlab/matrix"
)

// SolveLinear validates req and solves A·x = b with the chosen method.
func (e *Engine) SolveLinear(ctx context.Context, req LinearRequest) (*LinearResponse, error) {
	runID := e.newID()
	log := e.log.With(
		zap.String("family", FamilyLinear),
		zap.String("method", req.Method),
		zap.String("run_id", runID),
	)
	if err := ctx.Err(); err != nil {
		return nil, e.fail(log, FamilyLinear, req.Method, runID, err)
	}

	req = e.linearDefaults(req)
	if errs := validateStruct(req); len(errs) > 0 {
		return nil, e.fail(log, FamilyLinear, req.Method, runID, errs)
	}
	method := linearMethods[req.Method]

	a, err := matrix.NewFromRows(req.A)
	if err != nil {
		return nil, e.fail(log, FamilyLinear, string(method), runID, err)
	}

	resp := &LinearResponse{RunID: runID, Method: string(method)}
	start := e.now()
	if method == linsys.MethodJordan {
		err = e.jordan(a, req, resp)
	} else {
		err = e.iterative(method, a, req, resp)
	}
	d := e.now().Sub(start)
	if err != nil {
		return nil, e.fail(log, FamilyLinear, string(method), runID, err)
	}

	for _, w := range resp.Warnings {
		log.Warn(w)
	}
	e.done(log, FamilyLinear, string(method), resp.Status, resp.Iterations, d)

	return resp, nil
}

func (e *Engine) iterative(m linsys.Method, a matrix.Matrix, req LinearRequest, resp *LinearResponse) error {
	c := convergence.Criteria{Tol: req.Tol, MaxIter: req.MaxIter}
	var opts []linsys.Option
	if req.X0 != nil {
		opts = append(opts, linsys.WithInitialGuess(req.X0))
	}

	var res *linsys.Result
	var err error
	if m == linsys.MethodJacobi {
		res, err = linsys.Jacobi(a, req.B, c, opts...)
	} else {
		res, err = linsys.Seidel(a, req.B, c, opts...)
	}
	if err != nil {
		return err
	}
	resp.Solution = res.Solution
	resp.Iterations = res.Iterations
	resp.Status = string(res.Status)
	resp.Trace = res.Trace
	resp.DiagonallyDominant = res.DiagonallyDominant
	resp.Warnings = res.Warnings

	return nil
}

func (e *Engine) jordan(a matrix.Matrix, req LinearRequest, resp *LinearResponse) error {
	res, err := linsys.Jordan(a, req.B)
	if err != nil {
		return err
	}
	resp.Solution = res.Solution
	resp.Iterations = len(res.Trace)
	resp.Status = string(res.Status)
	resp.Eliminations = res.Trace
	resp.DiagonallyDominant = linsys.IsDiagonallyDominant(a)
	if res.Reduced != nil {
		resp.Reduced = res.Reduced.RowsCopy()
	}

	return nil
}

func (e *Engine) linearDefaults(req LinearRequest) LinearRequest {
	if req.Tol == 0 {
		req.Tol = e.defaults.Tol
	}
	if req.MaxIter == 0 {
		req.MaxIter = e.defaults.MaxIter
	}

	return req
}
