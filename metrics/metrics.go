package metrics

import "time"

type Tags map[string]string

// Client records dispatcher measurements. Implementations must be cheap,
// methods are called on the dispatch hot path.
type Client interface {
	Counter(name string, tags Tags, value float64)

	Distribution(name string, tags Tags, value float64)

	Timing(name string, tags Tags, duration time.Duration)

	// WithTags returns a client that adds the given tags to every measurement
	WithTags(tags Tags) Client
}
