// Package main provides the CLI entry point for packetguard.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/packetguard/internal/config"
	"github.com/smykla-skalski/packetguard/internal/dispatcher"
	"github.com/smykla-skalski/packetguard/internal/hookresponse"
	"github.com/smykla-skalski/packetguard/internal/parser"
	"github.com/smykla-skalski/packetguard/internal/validator"
	"github.com/smykla-skalski/packetguard/internal/validators/opencode"
	"github.com/smykla-skalski/packetguard/pkg/hook"
	"github.com/smykla-skalski/packetguard/pkg/logger"
)

const (
	// ExitCodeAllow is the only exit code of hook mode. A deny decision is
	// communicated via JSON stdout.
	ExitCodeAllow = 0

	// ExitCodeError is returned when a subcommand fails.
	ExitCodeError = 1
)

var noColorFlag bool

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() (exitCode int) {
	defer func() {
		// Fail open: a crash must never block the host.
		if r := recover(); r != nil {
			exitCode = ExitCodeAllow
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return ExitCodeError
	}

	return ExitCodeAllow
}

var rootCmd = &cobra.Command{
	Use:   "packetguard",
	Short: "Claude Code hook blocking inline opencode packets",
	Long: `packetguard is a PreToolUse hook for Claude Code. It reads the hook payload
from stdin and denies Bash commands that run opencode with packet content
passed inline through a heredoc. Everything else passes through silently.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	RunE:              runHook,
	SilenceErrors:     true,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(
		&noColorFlag,
		"no-color",
		false,
		"Disable colored output",
	)
}

// runHook is the hook entry point. It never returns an error.
func runHook(cmd *cobra.Command, _ []string) error {
	log, closeLog := setupLogger()
	defer closeLog()

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic recovered, allowing", "panic", fmt.Sprint(r))
		}
	}()

	if err := handleHook(cmd.InOrStdin(), cmd.OutOrStdout(), log); err != nil {
		log.Error("failed to write hook response", "error", err)
	}

	return nil
}

// handleHook parses one payload from in and writes a deny document to out
// when the command must be blocked. Unusable input is allowed silently.
func handleHook(in io.Reader, out io.Writer, log logger.Logger) error {
	hookCtx, err := parser.NewJSONParser(in).Parse(hook.EventTypePreToolUse)
	if err != nil {
		log.Debug("input not applicable, allowing", "reason", err.Error())

		return nil
	}

	attrs := []any{"tool", hookCtx.ToolName, "command", hookCtx.GetCommand()}
	if hookCtx.HasSessionID() {
		attrs = append(attrs, "session", hookCtx.SessionID)
	}

	log.Info("context parsed", attrs...)

	response := respond(hookCtx, log)
	if response == nil {
		log.Info("validation passed")

		return nil
	}

	log.Error("validation blocked",
		"reason", response.HookSpecificOutput.PermissionDecisionReason,
	)

	return errors.Wrap(hookresponse.Write(out, response), "write hook response")
}

// respond runs the validator pipeline for hookCtx and returns the deny
// document, or nil when the command is allowed.
func respond(hookCtx *hook.Context, log logger.Logger) *hookresponse.HookResponse {
	registry := validator.NewRegistry()
	opencode.Register(registry, log)

	disp := dispatcher.NewDispatcher(registry, log)
	errs := disp.Dispatch(context.Background(), hookCtx)

	if !dispatcher.ShouldBlock(errs) {
		return nil
	}

	return hookresponse.Build(hookCtx.EventType.String(), errs)
}

// setupLogger builds the diagnostics logger from configuration. Any failure
// yields a no-op logger so the verdict is never affected.
func setupLogger() (logger.Logger, func()) {
	noop := func() {}

	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return logger.NewNoOpLogger(), noop
	}

	cfg, err := loader.Load()
	if err != nil || !cfg.GetLog().IsEnabled() {
		return logger.NewNoOpLogger(), noop
	}

	level, err := logger.ParseLevel(string(cfg.GetLog().Level))
	if err != nil {
		return logger.NewNoOpLogger(), noop
	}

	fileLog, err := logger.NewFileLogger(cfg.GetLog().File, level)
	if err != nil {
		return logger.NewNoOpLogger(), noop
	}

	return fileLog, func() { _ = fileLog.Close() }
}
