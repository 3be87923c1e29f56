package domain

import (
	"strconv"
	"strings"
)

// DefaultJobs is the worker count used when no -j/--jobs value is given.
const DefaultJobs = 1

// ParseJobs interprets a -j/--jobs flag value.
// Unparsable, zero, and negative values all resolve to one worker;
// a build never runs with zero workers and never fails over a bad flag.
func ParseJobs(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return DefaultJobs
	}
	return n
}
