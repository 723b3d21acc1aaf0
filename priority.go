package perftrack

type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

var priorityNames = [...]string{"low", "medium", "high", "critical"}

func (p Priority) String() string {
	if p < PriorityLow || p > PriorityCritical {
		return "medium"
	}
	return priorityNames[p]
}

// ParsePriority maps a persisted priority name back to its value. Unknown
// names fall back to medium rather than failing.
func ParsePriority(s string) Priority {
	for i, name := range priorityNames {
		if s == name {
			return Priority(i)
		}
	}
	return PriorityMedium
}

func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(text []byte) error {
	*p = ParsePriority(string(text))
	return nil
}
