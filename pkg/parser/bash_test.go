package parser_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/packetguard/pkg/parser"
)

var _ = Describe("BashParser", func() {
	var p *parser.BashParser

	BeforeEach(func() {
		p = parser.NewBashParser()
	})

	Describe("View", func() {
		Context("with empty command", func() {
			It("returns error", func() {
				_, err := p.View("")
				Expect(err).To(MatchError(parser.ErrEmptyCommand))
			})

			It("returns error for whitespace-only", func() {
				_, err := p.View("   \t\n")
				Expect(err).To(MatchError(parser.ErrEmptyCommand))
			})
		})

		Context("with invalid syntax", func() {
			It("returns ErrParseFailed", func() {
				_, err := p.View("opencode run 'unterminated")
				Expect(err).To(MatchError(parser.ErrParseFailed))
			})
		})

		Context("with plain commands", func() {
			It("lists command names without inline input", func() {
				view, err := p.View(`opencode run --model m < "thoughts/p.md"`)
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Commands).To(Equal([]string{"opencode"}))
				Expect(view.HasInlineInput()).To(BeFalse())
				Expect(view.HasHeredoc()).To(BeFalse())
			})

			It("lists every command in a pipeline", func() {
				view, err := p.View("cat notes.md | opencode run")
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Commands).To(Equal([]string{"cat", "opencode"}))
				Expect(view.HasCommand("opencode")).To(BeTrue())
				Expect(view.HasCommand("git")).To(BeFalse())
			})
		})

		Context("with heredocs", func() {
			It("records an unquoted heredoc", func() {
				view, err := p.View("opencode run <<EOF\nline one\nline two\nEOF")
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Inputs).To(HaveLen(1))

				in := view.Inputs[0]
				Expect(in.Kind).To(Equal(parser.KindHeredoc))
				Expect(in.Command).To(Equal("opencode"))
				Expect(in.Marker).To(Equal("EOF"))
				Expect(in.Quoted).To(BeFalse())
				Expect(in.Lines).To(Equal(2))
				Expect(in.Location.Line).To(Equal(uint(1)))
				Expect(view.HasHeredoc()).To(BeTrue())
			})

			It("records a quoted marker", func() {
				view, err := p.View("opencode run <<'PACKET_EOF'\nbody\nPACKET_EOF")
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Inputs).To(HaveLen(1))
				Expect(view.Inputs[0].Marker).To(Equal("PACKET_EOF"))
				Expect(view.Inputs[0].Quoted).To(BeTrue())
			})

			It("records a double-quoted marker", func() {
				view, err := p.View("opencode run <<\"END\"\nbody\nEND")
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Inputs).To(HaveLen(1))
				Expect(view.Inputs[0].Marker).To(Equal("END"))
				Expect(view.Inputs[0].Quoted).To(BeTrue())
			})

			It("records a dash heredoc", func() {
				view, err := p.View("opencode run <<-EOF\n\tbody\n\tEOF")
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Inputs).To(HaveLen(1))
				Expect(view.Inputs[0].Kind).To(Equal(parser.KindDashHeredoc))
			})

			It("finds a heredoc inside command substitution", func() {
				view, err := p.View("opencode run \"$(cat <<'EOF'\nbody\nEOF\n)\"")
				Expect(err).NotTo(HaveOccurred())
				Expect(view.HasHeredoc()).To(BeTrue())
				Expect(view.Inputs[0].Command).To(Equal("cat"))
				Expect(view.Commands).To(ContainElements("opencode", "cat"))
			})
		})

		Context("with here-strings", func() {
			It("records the here-string word", func() {
				view, err := p.View("opencode run <<<'do the thing'")
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Inputs).To(HaveLen(1))
				Expect(view.Inputs[0].Kind).To(Equal(parser.KindHereString))
				Expect(view.Inputs[0].Marker).To(Equal("do the thing"))
				Expect(view.HasHeredoc()).To(BeFalse())
				Expect(view.HasInlineInput()).To(BeTrue())
			})
		})

		Context("with process substitution", func() {
			It("records the substituted command", func() {
				view, err := p.View("opencode run < <(printf 'packet')")
				Expect(err).NotTo(HaveOccurred())
				Expect(view.Inputs).To(HaveLen(1))
				Expect(view.Inputs[0].Kind).To(Equal(parser.KindProcSubst))
				Expect(view.Inputs[0].Command).To(Equal("printf"))
			})
		})
	})
})

var _ = Describe("InputKind", func() {
	DescribeTable("String",
		func(kind parser.InputKind, expected string) {
			Expect(kind.String()).To(Equal(expected))
		},
		Entry("heredoc", parser.KindHeredoc, "<<"),
		Entry("dash heredoc", parser.KindDashHeredoc, "<<-"),
		Entry("here-string", parser.KindHereString, "<<<"),
		Entry("process substitution", parser.KindProcSubst, "<(...)"),
		Entry("unknown", parser.InputKind(42), "unknown"),
	)
})

var _ = Describe("Location", func() {
	It("formats as line:column", func() {
		Expect(parser.Location{Line: 3, Column: 7}.String()).To(Equal("3:7"))
	})
})
