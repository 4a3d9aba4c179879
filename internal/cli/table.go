package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/quarterwave/internal/trig"
)

// TableEntry is one row of the curve table dump.
type TableEntry struct {
	Index int     `json:"index"`
	Bits  string  `json:"bits"`
	Value float64 `json:"value"`
}

// TableReport is the full curve table dump.
type TableReport struct {
	Entries []TableEntry `json:"entries"`
}

// String renders the table one entry per line.
func (r TableReport) String() string {
	var b strings.Builder
	for i, e := range r.Entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%3d %s %v", e.Index, e.Bits, e.Value)
	}
	return b.String()
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Dump the sine curve table",
		Long: `Print every entry of the quarter-turn sine table: index, raw fixed-point
bits, and the reconstructed float value. Useful for eyeballing the
monotonicity invariant and for diffing table revisions.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}

			report := TableReport{}
			for i, w := range trig.Samples() {
				report.Entries = append(report.Entries, TableEntry{
					Index: i,
					Bits:  fmt.Sprintf("0x%016X", uint64(w)),
					Value: w.Float(0),
				})
			}
			return formatter.Success(report)
		},
	}

	return cmd
}
