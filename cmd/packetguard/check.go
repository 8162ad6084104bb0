package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/packetguard/internal/color"
	"github.com/smykla-skalski/packetguard/internal/hookresponse"
	"github.com/smykla-skalski/packetguard/internal/validators/opencode"
	"github.com/smykla-skalski/packetguard/pkg/hook"
	"github.com/smykla-skalski/packetguard/pkg/logger"
	bashparser "github.com/smykla-skalski/packetguard/pkg/parser"
	"github.com/smykla-skalski/packetguard/pkg/stringutil"
)

// ErrEmptyCheckCommand is returned when check receives no command text.
var ErrEmptyCheckCommand = errors.New("command is empty")

// stdinArg makes check read the command from stdin.
const stdinArg = "-"

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check [--json] <command...> | -",
	Short: "Explain the verdict for a command",
	Long: `Evaluate a command as if Claude Code requested it through the Bash tool.

Prints the activation gate, every signal, the verdict and a shell view of
inline input found by parsing the command. The shell view is informational
and never changes the verdict. Pass "-" to read the command from stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(
		&checkJSON,
		"json",
		false,
		"Print the hook response instead of a report",
	)
	// Flags after the first argument belong to the checked command.
	checkCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	command, err := checkCommandText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	hookCtx := &hook.Context{
		EventType: hook.EventTypePreToolUse,
		ToolName:  hook.ToolTypeBash,
		ToolInput: hook.ToolInput{Command: command},
	}

	response := respond(hookCtx, logger.NewNoOpLogger())
	out := cmd.OutOrStdout()

	if checkJSON {
		if response == nil {
			return nil
		}

		return hookresponse.Write(out, response)
	}

	theme := color.NewTheme(colorEnabled(out))

	writeReport(out, theme, command, response)

	return nil
}

// checkCommandText joins args into the command, or reads stdin for "-".
func checkCommandText(stdin io.Reader, args []string) (string, error) {
	var command string

	if len(args) == 1 && args[0] == stdinArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "read command from stdin")
		}

		command = string(data)
	} else {
		command = strings.Join(args, " ")
	}

	command = stringutil.Trim(command)
	if command == "" {
		return "", ErrEmptyCheckCommand
	}

	return command, nil
}

func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return color.Enabled(f, noColorFlag)
}

//nolint:errcheck // report output is best effort
func writeReport(
	w io.Writer,
	theme color.Theme,
	command string,
	response *hookresponse.HookResponse,
) {
	signals := opencode.DefaultSignals()
	eval := opencode.Evaluate(command, signals)

	fmt.Fprintf(w, "%s %s\n", theme.Label.Render("command:"), command)
	fmt.Fprintf(w, "%s %s\n", theme.Label.Render("gate:   "), theme.Mark(eval.Activated))

	fmt.Fprintln(w, theme.Header.Render("signals"))

	for _, s := range signals {
		fmt.Fprintf(w, "  %-16s %s\n", s.Label, theme.Mark(eval.Activated && s.Matches(command)))
	}

	fmt.Fprintf(w, "%s %s\n", theme.Label.Render("verdict:"), theme.Verdict(response != nil))

	if response != nil {
		fmt.Fprintf(w, "%s %s\n",
			theme.Label.Render("reason: "),
			response.HookSpecificOutput.PermissionDecisionReason,
		)
	}

	writeShellView(w, theme, command, eval)
}

//nolint:errcheck // report output is best effort
func writeShellView(w io.Writer, theme color.Theme, command string, eval opencode.Evaluation) {
	fmt.Fprintln(w, theme.Header.Render("shell view"))

	view, err := bashparser.NewBashParser().View(command)
	if err != nil {
		fmt.Fprintf(w, "  %s\n", theme.Muted.Render("unavailable: "+err.Error()))

		return
	}

	if !view.HasInlineInput() {
		fmt.Fprintf(w, "  %s\n", theme.Muted.Render("no inline input"))
	}

	for _, in := range view.Inputs {
		fmt.Fprintf(w, "  %s\n", describeInput(in))
	}

	for _, note := range detectionGaps(view, eval) {
		fmt.Fprintf(w, "%s %s\n", theme.Warning.Render("note:"), note)
	}
}

func describeInput(in bashparser.InlineInput) string {
	var b strings.Builder

	b.WriteString(in.Kind.String())

	if in.Marker != "" {
		fmt.Fprintf(&b, " %s", in.Marker)
	}

	if in.Quoted {
		b.WriteString(" (quoted)")
	}

	if in.Command != "" {
		fmt.Fprintf(&b, " -> %s", in.Command)
	}

	fmt.Fprintf(&b, " at %s", in.Location)

	if in.Lines > 0 {
		fmt.Fprintf(&b, ", lines=%d", in.Lines)
	}

	return b.String()
}

// detectionGaps lists places where the parsed shell disagrees with the text
// signals. They never change the verdict.
func detectionGaps(view *bashparser.ShellView, eval opencode.Evaluation) []string {
	var notes []string

	if !eval.Activated && view.HasCommand("opencode") {
		notes = append(notes, "opencode runs here but the activation gate did not match")
	}

	if eval.Activated && !eval.Denied() {
		switch {
		case view.HasHeredoc():
			notes = append(notes, "heredoc present that no signal matched")
		case view.HasInlineInput():
			notes = append(notes, "inline input present that no signal matched")
		}
	}

	return notes
}
