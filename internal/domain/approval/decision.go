package approval

import "strings"

// Decision is an administrator's verdict on a pending item.
type Decision string

const (
	DecisionApprove Decision = "APPROVED"
	DecisionReject  Decision = "REJECTED"
)

// ParseDecision accepts both the verb and the resulting status.
func ParseDecision(s string) (Decision, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "APPROVE", "APPROVED":
		return DecisionApprove, nil
	case "REJECT", "REJECTED":
		return DecisionReject, nil
	default:
		return "", ErrInvalidDecision
	}
}

func (d Decision) Target() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}

func (d Decision) String() string {
	return string(d)
}
