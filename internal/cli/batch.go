package cli

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed batch_schema.cue
var batchSchema string

// BatchFile is the decoded form of a batch job file.
type BatchFile struct {
	Jobs []BatchJob `yaml:"jobs"`
}

// BatchJob is one angle to evaluate.
type BatchJob struct {
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`
}

// BatchResult is the evaluation of one job.
type BatchResult struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Repr  string  `json:"repr"`
	Sin   float64 `json:"sin"`
	Cos   float64 `json:"cos"`
}

// BatchReport aggregates the results of a batch run.
type BatchReport struct {
	Jobs    int           `json:"jobs"`
	Results []BatchResult `json:"results"`
}

// String renders the report as one line per job.
func (r BatchReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "jobs: %d", r.Jobs)
	for _, res := range r.Results {
		fmt.Fprintf(&b, "\n%v %s: sin=%v cos=%v", res.Value, res.Unit, res.Sin, res.Cos)
	}
	return b.String()
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Evaluate a YAML file of angle jobs",
		Long: `Evaluate every job in a YAML batch file. The file holds a non-empty
"jobs" list of value/unit pairs and is validated against an embedded
schema before anything runs.

Example file:
  jobs:
    - {value: 30, unit: deg}
    - {value: 0.25, unit: rot}`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runBatch(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read batch file", err)
	}

	// Decode generically first so schema validation sees the document
	// as written, then strictly into the typed form.
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return WrapExitError(ExitCommandError, "failed to parse batch file", err)
	}
	if err := validateBatch(doc); err != nil {
		return WrapExitError(ExitCommandError, "invalid batch file", err)
	}

	var file BatchFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return WrapExitError(ExitCommandError, "failed to parse batch file", err)
	}

	formatter.VerboseLog("batch: %d job(s) from %s", len(file.Jobs), path)

	report := BatchReport{Jobs: len(file.Jobs)}
	for i, job := range file.Jobs {
		unit, err := ParseUnit(job.Unit)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("job %d", i), err)
		}
		angle, err := unit.Angle(job.Value)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("job %d", i), err)
		}
		report.Results = append(report.Results, BatchResult{
			Value: job.Value,
			Unit:  unit.String(),
			Repr:  fmt.Sprintf("0x%016X", angle.Repr()),
			Sin:   angle.Sin(),
			Cos:   angle.Cos(),
		})
	}

	return formatter.Success(report)
}

// validateBatch checks a decoded batch document against the embedded CUE
// schema. Unify-and-validate: the schema constrains, the document must be
// concrete underneath it.
func validateBatch(doc any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(batchSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}

	data := ctx.Encode(doc)
	if err := data.Err(); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	unified := schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
