package domain

// Decision is the outcome of the transcript acceptance policy
type Decision int

const (
	DecisionAccept Decision = iota
	DecisionReplace
	DecisionReject
)

func (d Decision) String() string {
	switch d {
	case DecisionAccept:
		return "accept"
	case DecisionReplace:
		return "replace"
	case DecisionReject:
		return "reject"
	}
	return "unknown"
}

// Decide applies the acceptance policy for a candidate transcript against
// the stored one, if any.
//
// Timestamped content is never downgraded to plain text; among transcripts
// of equal timestamp status the latest write wins. Reject is a no-op
// outcome, not an error.
func Decide(existing, candidate *Transcript) Decision {
	if existing == nil {
		return DecisionAccept
	}
	if existing.HasTimestamps && !candidate.HasTimestamps {
		return DecisionReject
	}
	return DecisionReplace
}
