// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/katalvlaran/numlab/engine"
)

// failureOutput is printed when a run fails. Response is kept for a failed
// bracket precondition, which still reports its status.
type failureOutput struct {
	Failure  *engine.Failure `json:"failure"`
	Response any             `json:"response,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// report prints resp, or the failure and any partial response, and returns
// err so the process exits non-zero on failure.
func report[T any](w io.Writer, resp *T, err error) error {
	if err == nil {
		return writeJSON(w, resp)
	}
	var f *engine.Failure
	if !errors.As(err, &f) {
		return err
	}
	out := failureOutput{Failure: f}
	if resp != nil {
		out.Response = resp
	}
	if werr := writeJSON(w, out); werr != nil {
		return werr
	}

	return err
}
