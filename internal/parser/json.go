// Package parser reads and validates the hook request document from stdin.
package parser

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/packetguard/pkg/hook"
)

// Each error below is a reason to pass the request through untouched.
var (
	// ErrReadFailed is returned when the input stream cannot be read.
	ErrReadFailed = errors.New("failed to read input")

	// ErrEmptyInput is returned when the input is empty after trimming.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidJSON is returned when the input is not a JSON object.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotBash is returned when tool_name is anything but the text "Bash".
	ErrNotBash = errors.New("tool is not Bash")

	// ErrMissingCommand is returned when tool_input.command is absent.
	ErrMissingCommand = errors.New("missing tool_input.command")

	// ErrCommandNotText is returned when tool_input.command is not a string.
	ErrCommandNotText = errors.New("tool_input.command is not text")

	// ErrEmptyCommand is returned when the command is empty after trimming.
	ErrEmptyCommand = errors.New("empty command")
)

// jsonInput is the subset of the hook payload the guard reads. Fields stay
// raw so a wrong type is reported as a pass-through reason instead of
// failing the whole document.
type jsonInput struct {
	ToolName  json.RawMessage `json:"tool_name,omitempty"`
	ToolInput json.RawMessage `json:"tool_input,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Cwd       string          `json:"cwd,omitempty"`
}

// JSONParser parses the hook request from a reader.
type JSONParser struct {
	reader io.Reader
}

// NewJSONParser creates a new JSONParser that reads from the given reader.
func NewJSONParser(reader io.Reader) *JSONParser {
	return &JSONParser{
		reader: reader,
	}
}

// Parse reads the whole input once and returns a Bash hook context with a
// trimmed, non-empty command. Any other input yields one of the package
// sentinel errors.
func (p *JSONParser) Parse(eventType hook.EventType) (*hook.Context, error) {
	raw, err := io.ReadAll(p.reader)
	if err != nil {
		return nil, errors.CombineErrors(ErrReadFailed, err)
	}

	text := trimText(string(raw))
	if text == "" {
		return nil, ErrEmptyInput
	}

	var input jsonInput

	if unmarshalErr := json.Unmarshal([]byte(text), &input); unmarshalErr != nil {
		return nil, errors.CombineErrors(ErrInvalidJSON, unmarshalErr)
	}

	var toolName string

	if len(input.ToolName) == 0 || json.Unmarshal(input.ToolName, &toolName) != nil {
		return nil, ErrNotBash
	}

	toolType := hook.ToolTypeFromName(toolName)
	if toolType != hook.ToolTypeBash {
		return nil, errors.Wrapf(ErrNotBash, "tool_name=%q", toolName)
	}

	command, err := extractCommand(input.ToolInput)
	if err != nil {
		return nil, err
	}

	return &hook.Context{
		EventType:  eventType,
		ToolName:   toolType,
		ToolInput:  hook.ToolInput{Command: command},
		SessionID:  input.SessionID,
		ToolUseID:  input.ToolUseID,
		WorkingDir: input.Cwd,
	}, nil
}

// extractCommand pulls tool_input.command out of the raw tool_input value.
func extractCommand(rawToolInput json.RawMessage) (string, error) {
	var fields map[string]json.RawMessage

	// A non-object tool_input (string, array, number) has no command field.
	if len(rawToolInput) == 0 || json.Unmarshal(rawToolInput, &fields) != nil {
		return "", ErrMissingCommand
	}

	rawCommand, ok := fields["command"]
	if !ok {
		return "", ErrMissingCommand
	}

	var command *string

	if err := json.Unmarshal(rawCommand, &command); err != nil || command == nil {
		return "", ErrCommandNotText
	}

	trimmed := trimText(*command)
	if trimmed == "" {
		return "", ErrEmptyCommand
	}

	return trimmed, nil
}
