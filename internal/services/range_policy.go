package services

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrRangeFromDateInvalid = errors.New("invalid from date")
	ErrRangeToDateInvalid   = errors.New("invalid to date")
	ErrRangeInvalid         = errors.New("invalid date range")
)

// ParseDateRange parses optional inclusive calendar bounds. Blank values
// leave that side open.
func ParseDateRange(rawFrom string, rawTo string) (*time.Time, *time.Time, error) {
	fromRaw := strings.TrimSpace(rawFrom)
	toRaw := strings.TrimSpace(rawTo)

	var from *time.Time
	if fromRaw != "" {
		parsedFrom, err := ParseDay(fromRaw)
		if err != nil {
			return nil, nil, ErrRangeFromDateInvalid
		}
		from = &parsedFrom
	}

	var to *time.Time
	if toRaw != "" {
		parsedTo, err := ParseDay(toRaw)
		if err != nil {
			return nil, nil, ErrRangeToDateInvalid
		}
		to = &parsedTo
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, ErrRangeInvalid
	}

	return from, to, nil
}
