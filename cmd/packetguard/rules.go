package main

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/packetguard/internal/color"
	"github.com/smykla-skalski/packetguard/internal/validators/opencode"
)

const gateLabel = "activation"

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the activation gate and detection signals",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	table, err := renderRules(color.NewTheme(colorEnabled(out)))
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, table)

	return errors.Wrap(err, "write rules table")
}

// renderRules builds the rule table: the gate first, then every signal in
// evaluation order.
func renderRules(theme color.Theme) (string, error) {
	var buf bytes.Buffer

	t := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
	)

	t.Header([]string{"Kind", "Label", "Pattern"})

	rows := [][]string{
		{"gate", theme.Label.Render(gateLabel), opencode.ActivationPattern()},
	}

	for _, s := range opencode.DefaultSignals() {
		rows = append(rows, []string{"signal", theme.Label.Render(s.Label), s.Matcher.String()})
	}

	for _, row := range rows {
		if err := t.Append(row); err != nil {
			return "", errors.Wrapf(err, "append rule %s", row[1])
		}
	}

	if err := t.Render(); err != nil {
		return "", errors.Wrap(err, "render rules table")
	}

	buf.WriteString("signals apply only when the gate matches; any signal denies\n")

	return buf.String(), nil
}
