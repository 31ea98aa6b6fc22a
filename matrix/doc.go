// SPDX-License-Identifier: MIT

// Package matrix offers the dense storage and kernels used by the linear
// system solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     reject NaN/±Inf on ingestion.
//   - NewFromRows to ingest the [][]float64 shape carried by requests.
//   - Augment to build [A | b], MatVec, Residual and Column helpers.
//   - Validators (ValidateSquare, ValidateVecLen, ValidateSystem) that every
//     solver calls before touching data.
//
// Matrices are meant for small dense systems where O(n²) memory and O(n³)
// elimination are acceptable.
package matrix
