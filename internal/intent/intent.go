// Package intent recognizes the one chat shortcut the assistant answers
// without the model: "invest X per month for Y years". It is a fixed pattern
// matcher, not a natural-language parser; anything ambiguous falls through
// to the model path.
package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// SIPIntent is the typed extraction of a matched SIP phrase.
type SIPIntent struct {
	Monthly int
	Years   int
}

// sipPattern: optional rupee marker, an integer amount, anything, the token
// "per month"/"per monthly", anything, an integer count of years. "year" is
// matched as a prefix so both "year" and "years" pass, but negative numbers,
// decimals and other currency phrasings are deliberately not recognized.
var sipPattern = regexp.MustCompile(`₹?(\d+)\D+per\s+(month|monthly)\D+(\d+)\s+year`)

// Matcher detects SIP calculation requests in free-form chat input.
type Matcher struct {
	pattern *regexp.Regexp
}

// NewMatcher returns a Matcher with the fixed SIP phrase pattern compiled.
func NewMatcher() *Matcher {
	return &Matcher{pattern: sipPattern}
}

// Match reports whether input asks for a SIP projection and, if so, the
// extracted monthly amount and duration. Matching is case-insensitive.
func (m *Matcher) Match(input string) (SIPIntent, bool) {
	groups := m.pattern.FindStringSubmatch(strings.ToLower(input))
	if groups == nil {
		return SIPIntent{}, false
	}

	monthly, err := strconv.Atoi(groups[1])
	if err != nil {
		return SIPIntent{}, false
	}
	years, err := strconv.Atoi(groups[3])
	if err != nil {
		return SIPIntent{}, false
	}

	if monthly <= 0 || years <= 0 {
		return SIPIntent{}, false
	}
	return SIPIntent{Monthly: monthly, Years: years}, true
}
