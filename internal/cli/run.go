// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numlab/engine"
)

// Request kinds accepted by the run command.
const (
	KindRoot   = "root"
	KindLinear = "linear"
)

// ErrBadRequest marks an unreadable or inconsistent request file.
var ErrBadRequest = errors.New("cli: bad request file")

// requestFile is the document the run command reads.
type requestFile struct {
	Kind   string                `yaml:"kind"`
	Root   *engine.RootRequest   `yaml:"root"`
	Linear *engine.LinearRequest `yaml:"linear"`
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <request.yaml>",
		Short: "Run a request file",
		Long: `Run a root or linear request described in YAML or JSON:

  kind: root
  root:
    method: newton
    expression: x^2 - 2
    x0: 1

  kind: linear
  linear:
    method: jordan
    a: [[4, 1], [2, 3]]
    b: [1, 2]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rf requestFile
			if err := decodeFile(args[0], &rf); err != nil {
				return err
			}
			switch {
			case rf.Kind == KindRoot && rf.Root != nil:
				resp, err := a.eng.FindRoot(cmd.Context(), *rf.Root)
				return a.finish(cmd, report(cmd.OutOrStdout(), resp, err))
			case rf.Kind == KindLinear && rf.Linear != nil:
				resp, err := a.eng.SolveLinear(cmd.Context(), *rf.Linear)
				return a.finish(cmd, report(cmd.OutOrStdout(), resp, err))
			default:
				return fmt.Errorf("%w: kind %q needs a matching %q section", ErrBadRequest, rf.Kind, rf.Kind)
			}
		},
	}
}

// decodeFile strictly decodes a YAML (or JSON) document at path into v.
func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %v", ErrBadRequest, path, err)
	}

	return nil
}
