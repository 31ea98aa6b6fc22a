// SPDX-License-Identifier: MIT

// Package engine is the request boundary in front of the solver packages.
//
// A transport (the numlab CLI, or any server embedding this package) builds
// a RootRequest or LinearRequest, and the Engine:
//
//  1. assigns a run ID and fills zero tol/max_iter with configured defaults;
//  2. validates the request (go-playground/validator plus per-method rules);
//  3. for root finding, parses the formula, and for Newton derives it
//     symbolically, so malformed or unsafe text is rejected before any
//     iteration runs;
//  4. runs the solver, logs one line per run and records metrics;
//  5. returns either a response or a *Failure carrying a stable Kind, a
//     human-readable message and the iteration at which it happened.
//
// Running out of budget is a response status, never a Failure.
//
// An Engine is safe for concurrent use: it holds only immutable
// configuration, and every run owns its buffers.
package engine
