package domain

// FetchOutcome classifies a fetch attempt.
type FetchOutcome int

const (
	// FetchFailed means no usable response: network error, timeout, non-2xx
	// status, or an undecodable body.
	FetchFailed FetchOutcome = iota
	// FetchEmpty means the API answered but no event matched the query.
	FetchEmpty
	// FetchOK means at least one feature was returned.
	FetchOK
)

func (o FetchOutcome) String() string {
	switch o {
	case FetchOK:
		return "ok"
	case FetchEmpty:
		return "empty"
	default:
		return "failed"
	}
}

// FetchResult is the outcome of a single query. Collection is set for
// FetchOK and FetchEmpty; Err is set for FetchFailed.
type FetchResult struct {
	Outcome    FetchOutcome
	Collection FeatureCollection
	Err        error
}
