package opencode_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/packetguard/internal/validator"
	"github.com/smykla-skalski/packetguard/internal/validators/opencode"
	"github.com/smykla-skalski/packetguard/pkg/hook"
	"github.com/smykla-skalski/packetguard/pkg/logger"
)

func bashContext(command string) *hook.Context {
	return &hook.Context{
		EventType: hook.EventTypePreToolUse,
		ToolName:  hook.ToolTypeBash,
		ToolInput: hook.ToolInput{Command: command},
	}
}

var _ = Describe("HeredocValidator", func() {
	var (
		v   *opencode.HeredocValidator
		ctx context.Context
		buf *bytes.Buffer
	)

	BeforeEach(func() {
		ctx = context.Background()
		buf = &bytes.Buffer{}
		v = opencode.NewHeredocValidator(logger.NewWriterLogger(buf, logger.LevelDebug))
	})

	It("is named for the registry", func() {
		Expect(v.Name()).To(Equal(opencode.ValidatorName))
		Expect(v.Signals()).To(HaveLen(2))
	})

	It("blocks a heredoc packet with the remediation message", func() {
		result := v.Validate(ctx, bashContext("opencode run <<'PKT'"))

		Expect(result.Passed).To(BeFalse())
		Expect(result.ShouldBlock).To(BeTrue())
		Expect(result.Message).To(Equal(opencode.RemediationMessage))
		Expect(result.Code).To(Equal(validator.ErrInlinePacket))
		Expect(result.Details).To(HaveKeyWithValue("signals", opencode.LabelHeredocInline))
		Expect(buf.String()).To(ContainSubstring("validation BLOCK"))
		Expect(buf.String()).To(ContainSubstring("signals=heredoc-inline"))
	})

	It("records every matched signal", func() {
		result := v.Validate(ctx, bashContext("opencode run <<PACKET_EOF"))

		Expect(result.Details).To(HaveKeyWithValue("signals", "heredoc-inline,packet-marker"))
	})

	DescribeTable("passes",
		func(command string) {
			result := v.Validate(ctx, bashContext(command))

			Expect(result.Passed).To(BeTrue())
			Expect(result.ShouldBlock).To(BeFalse())
		},
		Entry("empty command", ""),
		Entry("no opencode", "ls -la"),
		Entry("substring", "myopencodeclone --help"),
		Entry("single redirect", "opencode run --model m < packet.md"),
	)

	It("passes requests for other tools without evaluating them", func() {
		other := bashContext("opencode run <<'PKT'")
		other.ToolName = hook.ToolTypeUnknown

		result := v.Validate(ctx, other)

		Expect(result.Passed).To(BeTrue())
		Expect(buf.String()).To(ContainSubstring("not a Bash request"))
	})

	Describe("Register", func() {
		It("selects the validator only for Bash PreToolUse contexts", func() {
			registry := validator.NewRegistry()
			registered := opencode.Register(registry, logger.NewNoOpLogger())

			Expect(registry.FindValidators(bashContext("ls"))).To(ConsistOf(registered))

			other := bashContext("opencode <<EOF")
			other.ToolName = hook.ToolTypeUnknown
			Expect(registry.FindValidators(other)).To(BeEmpty())

			other = bashContext("opencode <<EOF")
			other.EventType = hook.EventTypeUnknown
			Expect(registry.FindValidators(other)).To(BeEmpty())
		})
	})
})
