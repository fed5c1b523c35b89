package mode

// Mode is the ranking strategy. It is never supplied by callers: the
// criteria's search text decides it.
type Mode string

// Ranking mode constants.
const (
	// Relevance orders by weighted field-match score.
	Relevance Mode = "relevance"
	// Recency orders newest first; it applies when no search text is given.
	Recency Mode = "recency"
)

// ForQuery returns the mode the search text selects. The text is expected
// to be trimmed already (criteria construction does this).
func ForQuery(text string) Mode {
	if text == "" {
		return Recency
	}
	return Relevance
}
