package cli

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/roach88/quarterwave"
)

// SweepOptions holds flags for the sweep command.
type SweepOptions struct {
	*RootOptions
	Steps int
}

// SweepReport summarizes an accuracy sweep against the float64 reference.
type SweepReport struct {
	Steps       int     `json:"steps"`
	MaxAbsError float64 `json:"max_abs_error"`
	WorstRepr   string  `json:"worst_repr"`
}

// String renders the report as one line.
func (r SweepReport) String() string {
	return fmt.Sprintf("sweep: %s samples, max abs error %v at %s",
		humanize.Comma(int64(r.Steps)), r.MaxAbsError, r.WorstRepr)
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SweepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Measure evaluator accuracy against the float64 reference",
		Long: `Evaluate evenly spaced angle patterns across the full rotation and
compare each sine against math.Sin, reporting the largest absolute
error and where it occurred. The bound is set by the table resolution
and the first-order correction, not by the sample count.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   opts.Verbose,
			}

			if opts.Steps <= 0 {
				return NewExitError(ExitCommandError, "--steps must be positive")
			}

			report := runSweep(opts.Steps)
			return formatter.Success(report)
		},
	}

	cmd.Flags().IntVar(&opts.Steps, "steps", 1<<16, "number of evenly spaced samples")

	return cmd
}

func runSweep(steps int) SweepReport {
	stride := math.MaxUint64/uint64(steps) + 1

	report := SweepReport{Steps: steps, WorstRepr: "0x0000000000000000"}
	for i := 0; i < steps; i++ {
		repr := uint64(i) * stride
		rotations := float64(repr) / (1 << 63) / 2
		want := math.Sin(2 * math.Pi * rotations)
		got := quarterwave.FromRepr(repr).Sin()

		if e := math.Abs(got - want); e > report.MaxAbsError {
			report.MaxAbsError = e
			report.WorstRepr = fmt.Sprintf("0x%016X", repr)
		}
	}
	return report
}
