package validator

// ErrorCode represents a unique identifier for validation errors.
type ErrorCode string

// Packet-handling error codes (PKT001-PKT099).
const (
	// ErrInlinePacket indicates packet content piped inline into opencode.
	ErrInlinePacket ErrorCode = "PKT001"
)

// String returns the code text.
func (c ErrorCode) String() string {
	return string(c)
}
