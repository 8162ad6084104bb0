// Package hook provides core types for Claude Code hook context.
package hook

// EventType represents the type of hook event.
type EventType int

const (
	// EventTypeUnknown represents an unknown event type.
	EventTypeUnknown EventType = iota

	// EventTypePreToolUse is triggered before a tool is executed.
	EventTypePreToolUse
)

// String returns the event name as the host spells it.
func (e EventType) String() string {
	switch e {
	case EventTypePreToolUse:
		return "PreToolUse"
	default:
		return "Unknown"
	}
}

// ToolType represents the type of tool being used.
type ToolType int

const (
	// ToolTypeUnknown represents any tool the guard does not inspect.
	ToolTypeUnknown ToolType = iota

	// ToolTypeBash represents the Bash tool for executing shell commands.
	ToolTypeBash
)

// String returns the tool name as the host spells it.
func (t ToolType) String() string {
	switch t {
	case ToolTypeBash:
		return "Bash"
	default:
		return "Unknown"
	}
}

// ToolTypeFromName maps a tool_name value to a ToolType. The match is exact:
// "bash" or "BASH" are not the Bash tool.
func ToolTypeFromName(name string) ToolType {
	if name == ToolTypeBash.String() {
		return ToolTypeBash
	}

	return ToolTypeUnknown
}

// ToolInput contains the tool input fields the guard reads.
type ToolInput struct {
	// Command is the shell command for Bash tool, trimmed.
	Command string
}

// Context represents one hook invocation.
type Context struct {
	// EventType is the type of hook event.
	EventType EventType

	// ToolName is the tool being invoked.
	ToolName ToolType

	// ToolInput contains the tool-specific input parameters.
	ToolInput ToolInput

	// SessionID is the Claude Code session identifier, if sent.
	SessionID string

	// ToolUseID is the identifier of this tool invocation, if sent.
	ToolUseID string

	// WorkingDir is the host's working directory (cwd), if sent.
	WorkingDir string
}

// GetCommand returns the command from ToolInput.
func (c *Context) GetCommand() string {
	return c.ToolInput.Command
}

// IsBashTool returns true if the tool is Bash.
func (c *Context) IsBashTool() bool {
	return c.ToolName == ToolTypeBash
}

// HasSessionID returns true if a session ID is present.
func (c *Context) HasSessionID() bool {
	return c.SessionID != ""
}
