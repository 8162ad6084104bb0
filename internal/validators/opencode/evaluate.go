package opencode

// Evaluation is the outcome of checking one command.
type Evaluation struct {
	// Activated is true when the command invokes opencode as a whole word.
	Activated bool

	// Matched lists the labels of the signals that fired, in table order.
	Matched []string

	// Reason is the deny reason; empty when the command is allowed.
	Reason string
}

// Denied reports whether the command must be blocked.
func (e Evaluation) Denied() bool {
	return e.Reason != ""
}

// Evaluate checks command against the activation gate and, when activated,
// every signal in signals. It has no side effects.
func Evaluate(command string, signals []Signal) Evaluation {
	if !activationGate.MatchString(command) {
		return Evaluation{}
	}

	eval := Evaluation{Activated: true}

	for _, s := range signals {
		if !s.Matches(command) {
			continue
		}

		eval.Matched = append(eval.Matched, s.Label)

		if eval.Reason == "" {
			eval.Reason = s.Message
		}
	}

	return eval
}
