package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidWindowBound = errors.New("invalid window bound")

// SummaryWindowRequest carries the optional time window for a financial
// summary query. Bounds accept RFC3339 instants or bare dates (2006-01-02);
// an empty bound leaves that side open.
type SummaryWindowRequest struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// Resolve parses both bounds. A bare-date upper bound is inclusive of that
// day: it resolves to the start of the following day.
func (r SummaryWindowRequest) Resolve() (from, to time.Time, err error) {
	from, err = parseBound(r.From, false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err = parseBound(r.To, true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func parseBound(s string, upper bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		if upper {
			return t.AddDate(0, 0, 1), nil
		}
		return t, nil
	}
	return time.Time{}, ErrInvalidWindowBound
}
