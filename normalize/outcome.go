package normalize

//go:generate go tool stringer -type=Outcome -linecomment -output=outcome_string.go

// Outcome describes how a column value was rendered into its node.
type Outcome int

const (
	// OutcomeValue is a value rendered as-is.
	OutcomeValue Outcome = iota // value
	// OutcomeNull is SQL NULL rendered as null.
	OutcomeNull // null
	// OutcomeEmptyText is SQL NULL of a textual kind rendered as "".
	OutcomeEmptyText // empty-text
	// OutcomeTextFallback is a non-finite float rendered as a string.
	OutcomeTextFallback // text-fallback
	// OutcomeDegraded is a malformed temporal value rendered as null.
	OutcomeDegraded // degraded
)
