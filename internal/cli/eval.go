package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/quarterwave"
)

// Evaluation is the full result of evaluating one angle.
type Evaluation struct {
	Repr      string  `json:"repr"`
	Rotations float64 `json:"rotations"`
	Radians   float64 `json:"radians"`
	Degrees   float64 `json:"degrees"`
	Sin       float64 `json:"sin"`
	Cos       float64 `json:"cos"`
	Tan       float64 `json:"tan"`
}

func evaluate(a quarterwave.Angle) Evaluation {
	return Evaluation{
		Repr:      fmt.Sprintf("0x%016X", a.Repr()),
		Rotations: a.Rotations(),
		Radians:   a.Radians(),
		Degrees:   a.Degrees(),
		Sin:       a.Sin(),
		Cos:       a.Cos(),
		Tan:       a.Tan(),
	}
}

// String renders the evaluation as aligned text.
func (e Evaluation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "angle:     %s\n", e.Repr)
	fmt.Fprintf(&b, "rotations: %v\n", e.Rotations)
	fmt.Fprintf(&b, "radians:   %v\n", e.Radians)
	fmt.Fprintf(&b, "degrees:   %v\n", e.Degrees)
	fmt.Fprintf(&b, "sin:       %v\n", e.Sin)
	fmt.Fprintf(&b, "cos:       %v\n", e.Cos)
	fmt.Fprintf(&b, "tan:       %v", e.Tan)
	return b.String()
}

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Stdin bool
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval [<value> <unit>]",
		Short: "Evaluate sin/cos/tan of one angle",
		Long: `Evaluate the trigonometric functions of an angle given as a value and a
unit (deg, rad, or rot), printing the raw 64-bit pattern, the unit
conversions, and sin/cos/tan.

With --stdin, reads "value unit" lines interactively until EOF or an
empty line.

Example:
  qwave eval 30 deg
  qwave eval 0.25 rot --format json
  qwave eval --stdin`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   opts.Verbose,
			}

			if opts.Stdin {
				return runEvalStdin(formatter, cmd.InOrStdin())
			}
			if len(args) != 2 {
				return NewExitError(ExitCommandError, "need <value> <unit>, or --stdin")
			}

			angle, err := ParseAngle(args[0] + " " + args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to parse angle", err)
			}
			return formatter.Success(evaluate(angle))
		},
	}

	cmd.Flags().BoolVar(&opts.Stdin, "stdin", false, "read \"value unit\" lines from standard input")

	return cmd
}

// runEvalStdin is the interactive loop: one "value unit" line in, sin and
// cos out. Malformed lines report and continue; the session keeps going.
func runEvalStdin(formatter *OutputFormatter, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(formatter.Writer, "> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || line == "quit" || line == "exit" {
			break
		}

		angle, err := ParseAngle(line)
		if err != nil {
			formatter.Error("E_PARSE", err.Error())
			continue
		}
		fmt.Fprintf(formatter.Writer, "sin: %v\ncos: %v\n", angle.Sin(), angle.Cos())
	}
	fmt.Fprintln(formatter.Writer)
	return sc.Err()
}
