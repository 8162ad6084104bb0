package validator_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/smykla-skalski/packetguard/internal/validator"
	"github.com/smykla-skalski/packetguard/pkg/hook"
)

var _ = Describe("Registry", func() {
	var (
		ctrl     *gomock.Controller
		registry *validator.Registry
		bashCtx  *hook.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		registry = validator.NewRegistry()
		bashCtx = &hook.Context{
			EventType: hook.EventTypePreToolUse,
			ToolName:  hook.ToolTypeBash,
			ToolInput: hook.ToolInput{Command: "opencode run"},
		}
	})

	It("starts empty", func() {
		Expect(registry.Count()).To(Equal(0))
		Expect(registry.FindValidators(bashCtx)).To(BeEmpty())
	})

	It("returns validators whose predicates match, in registration order", func() {
		first := validator.NewMockValidator(ctrl)
		second := validator.NewMockValidator(ctrl)
		skipped := validator.NewMockValidator(ctrl)

		registry.Register(first, validator.ToolTypeIs(hook.ToolTypeBash))
		registry.Register(skipped, validator.ToolTypeIs(hook.ToolTypeUnknown))
		registry.Register(second, validator.EventTypeIs(hook.EventTypePreToolUse))

		found := registry.FindValidators(bashCtx)

		Expect(registry.Count()).To(Equal(3))
		Expect(found).To(HaveLen(2))
		Expect(found[0]).To(BeIdenticalTo(first))
		Expect(found[1]).To(BeIdenticalTo(second))
	})

	It("never calls validators while selecting them", func() {
		mock := validator.NewMockValidator(ctrl)
		mock.EXPECT().Validate(gomock.Any(), gomock.Any()).Times(0)

		registry.Register(mock, validator.ToolTypeIs(hook.ToolTypeBash))
		Expect(registry.FindValidators(bashCtx)).To(HaveLen(1))
	})
})

var _ = Describe("Predicates", func() {
	bashCtx := &hook.Context{
		EventType: hook.EventTypePreToolUse,
		ToolName:  hook.ToolTypeBash,
		ToolInput: hook.ToolInput{Command: "opencode run <<EOF"},
	}

	It("matches tool types", func() {
		Expect(validator.ToolTypeIs(hook.ToolTypeBash)(bashCtx)).To(BeTrue())
		Expect(validator.ToolTypeIs(hook.ToolTypeUnknown)(bashCtx)).To(BeFalse())
	})

	It("matches event types", func() {
		Expect(validator.EventTypeIs(hook.EventTypePreToolUse)(bashCtx)).To(BeTrue())
		Expect(validator.EventTypeIs(hook.EventTypeUnknown)(bashCtx)).To(BeFalse())
	})

	It("combines predicates with and", func() {
		yes := validator.ToolTypeIs(hook.ToolTypeBash)
		no := validator.ToolTypeIs(hook.ToolTypeUnknown)

		Expect(validator.And(yes, yes)(bashCtx)).To(BeTrue())
		Expect(validator.And(yes, no)(bashCtx)).To(BeFalse())
	})
})

var _ = Describe("Result", func() {
	It("describes pass, block and warn states", func() {
		Expect(validator.Pass().String()).To(Equal("PASS"))
		Expect(validator.Fail("x").String()).To(Equal("BLOCK"))
		Expect((&validator.Result{Passed: false}).String()).To(Equal("WARN"))
	})

	It("tags coded failures and collects details", func() {
		result := validator.FailWithCode(validator.ErrInlinePacket, "blocked").
			AddDetail("signals", "packet-marker")

		Expect(result.Passed).To(BeFalse())
		Expect(result.ShouldBlock).To(BeTrue())
		Expect(result.Code.String()).To(Equal("PKT001"))
		Expect(result.Details).To(HaveKeyWithValue("signals", "packet-marker"))
	})
})
