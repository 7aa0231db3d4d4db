package services

type FailureMode int

const (
	// Propagate returns upstream errors to the caller unchanged.
	Propagate FailureMode = iota
	// Fallback swallows upstream errors and substitutes a fixed response.
	Fallback
)

func (m FailureMode) String() string {
	switch m {
	case Propagate:
		return "propagate"
	case Fallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// FailurePolicy decides what a client hands back when its upstream call fails.
type FailurePolicy struct {
	Mode     FailureMode
	Fallback string
}

func PropagatePolicy() FailurePolicy {
	return FailurePolicy{Mode: Propagate}
}

func FallbackPolicy(defaultValue string) FailurePolicy {
	return FailurePolicy{Mode: Fallback, Fallback: defaultValue}
}

// Apply resolves an upstream result under the policy. The returned bool is
// true when the fallback value was substituted.
func (p FailurePolicy) Apply(text string, err error) (string, bool, error) {
	if err == nil {
		return text, false, nil
	}
	if p.Mode == Fallback {
		return p.Fallback, true, nil
	}
	return "", false, err
}
