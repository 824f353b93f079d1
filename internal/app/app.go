// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"primaldimer/internal/config"
	"primaldimer/internal/output"
	"primaldimer/internal/version"
	"primaldimer/internal/writers"
)

// Exit codes.
const (
	exitOK       = 0
	exitUsage    = 2
	exitIO       = 3
	exitCanceled = 130
)

// codeError carries the exit code for err up through cobra.
type codeError struct {
	code int
	err  error
}

func (e *codeError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *codeError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &codeError{code: code, err: err}
}

func usageError(err error) error { return withCode(exitUsage, err) }

func ioError(err error) error { return withCode(exitIO, err) }

// noMatch exits with code without printing anything.
func noMatch(code int) error { return &codeError{code: code} }

// usageArgs marks positional-argument errors as usage errors.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// state is shared by the commands of one invocation.
type state struct {
	ctx    context.Context
	out    *bufio.Writer
	stderr io.Writer

	cfgPath string
	cfg     config.Config
}

func newRootCmd(st *state) *cobra.Command {
	root := &cobra.Command{
		Use:   "primaldimer",
		Short: "Score primer-dimer interactions and pair primer candidates",
		Long: `primaldimer scores how strongly two DNA primers can anneal and extend off
each other (nearest-neighbour thermodynamics with 3' extension, run and
bubble terms), checks whole primer pools for dimers, and pairs forward and
reverse candidates into dimer-free amplicons.

Settings come from flags, then PRIMALDIMER_* environment variables, then
--config (or ./primaldimer.yaml), then built-in defaults.`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v := config.New()
			if err := config.ReadFile(v, st.cfgPath); err != nil {
				return usageError(err)
			}
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return usageError(err)
			}
			c, err := config.Load(v)
			if err != nil {
				return usageError(err)
			}
			st.cfg = c
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.cfgPath, "config", "", "settings file (yaml, toml or json)")
	pf.Float64P("threshold", "t", config.Defaults["threshold"].(float64), "dimer score threshold; scores at or below it interact")
	pf.Int("threads", 0, "number of worker goroutines (0 = all CPUs)")
	pf.StringP("output", "o", output.FormatText, "output format: text | json | jsonl | bed")
	pf.Bool("no-header", false, "suppress header line in text/TSV")
	pf.BoolP("quiet", "q", false, "suppress warnings")
	pf.BoolP("verbose", "v", false, "print progress to stderr")
	pf.Int("no-match-exit-code", 1, "exit code when nothing is found")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError(err) })

	root.AddCommand(
		newScoreCmd(st),
		newInteractCmd(st),
		newPoolsCmd(st),
		newPairsCmd(st),
		newVersionCmd(st),
	)
	return root
}

func newVersionCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(st.out, "primaldimer version %s\n", version.Version)
			return ioError(err)
		},
	}
}

// writeValue encodes v as pretty JSON or a single JSON line.
func writeValue(w io.Writer, format string, v any) error {
	switch format {
	case output.FormatJSON:
		return ioError(output.EncodePretty(w, v))
	case output.FormatJSONL:
		return ioError(json.NewEncoder(w).Encode(v))
	}
	return usageError(fmt.Errorf("output %q is not supported by this command", format))
}

// exitCode maps an error returned by a command onto a process exit code.
// Errors without an explicit code come from cobra itself (unknown command,
// bad flags) and count as usage errors.
func exitCode(err error, stderr io.Writer, usage func() string) int {
	if err == nil {
		return exitOK
	}
	var ce *codeError
	if errors.As(err, &ce) && ce.err == nil {
		return ce.code
	}
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return exitCanceled
	case writers.IsBrokenPipe(err):
		return exitOK
	}
	_, _ = fmt.Fprintln(stderr, "Error:", err)
	code := exitUsage
	if ce != nil {
		code = ce.code
	}
	if code == exitUsage {
		_, _ = io.WriteString(stderr, usage())
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	st := &state{ctx: parent, out: outw, stderr: stderr}

	root := newRootCmd(st)
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(parent)
	if ferr := outw.Flush(); err == nil && ferr != nil {
		err = ioError(ferr)
	}
	if cmd == nil {
		cmd = root
	}
	return exitCode(err, stderr, cmd.UsageString)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
