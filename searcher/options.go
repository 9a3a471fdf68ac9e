package searcher

import "math"

type Option func(s *search)

// search holds the configuration and bookkeeping shared by the minimax searches
type search struct {
	discount float64
	metrics  MetricsCollector
	last     SearchMetrics
}

func newSearch(options []Option) search {
	s := search{ // Default values
		discount: 1,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// WithDiscount scales a terminal utility reached k plies below the decision by
// discount^k, for both players, so quicker wins and slower losses score higher.
// Values outside (0, 1] are ignored.
func WithDiscount(discount float64) Option {
	return func(s *search) {
		if discount > 0 && discount <= 1 {
			s.discount = discount
		}
	}
}

func WithMetrics() Option {
	return func(s *search) {
		s.metrics = NewMetricsCollector()
	}
}

func (s *search) LastMetrics() SearchMetrics {
	return s.last
}

func (s *search) terminalValue(u float64, depth int) float64 {
	if s.discount == 1 || u == Tie {
		return u
	}
	return u * math.Pow(s.discount, float64(depth))
}
