// Package normalizer turns raw model output into typed values. Models
// wrap JSON in markdown fences and append stray prose despite being
// told not to, so every ingestion boundary runs through here. Decoding
// never fails: the caller always gets either a parsed value or its own
// fallback, plus a report saying which.
package normalizer

import (
	"encoding/json"
	"regexp"
	"strings"
)

type Outcome string

const (
	// OutcomeParsed: the cleaned text unmarshaled strictly.
	OutcomeParsed Outcome = "parsed"
	// OutcomeRecovered: strict parse failed but a known recovery path
	// (single object wrapped into a one-element slice) produced a value.
	OutcomeRecovered Outcome = "recovered"
	// OutcomeFallback: nothing worked, the caller's default was returned.
	OutcomeFallback Outcome = "fallback"
)

// Report describes how a decode went, for the diagnostics log. It is
// never surfaced to the end user.
type Report struct {
	Outcome  Outcome
	Repaired bool
	Detail   string
}

var fenceRegex = regexp.MustCompile("(?s)```[a-zA-Z]*[ \t]*\n?(.*?)\n?[ \t]*```")

// repairRule is one heuristic text fix. Rules run in order; new
// malformation patterns get appended, existing rules stay untouched.
type repairRule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
}

var repairRules = []repairRule{
	{
		// A valid quoted string value followed by stray words before the
		// next structural delimiter: `"name": "Home" oops,` -> `"name": "Home",`
		name:        "trailing-garbage-after-string",
		pattern:     regexp.MustCompile(`(:[ \t]*"(?:[^"\\]|\\.)*")[ \t]*[^,}\[\]\s][^,}\[\]]*([,}\]])`),
		replacement: "$1$2",
	},
}

// Clean prepares raw model text for parsing: trims it, extracts the
// first fenced block if one is present, then applies the repair rules.
// Valid JSON passes through byte-identical.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)

	if m := fenceRegex.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
	}

	for _, rule := range repairRules {
		s = rule.pattern.ReplaceAllString(s, rule.replacement)
	}

	return s
}

// recoverySignatures are the field pairs that identify a lone object as
// one of the known record shapes, making it safe to wrap in a slice.
var recoverySignatures = [][]string{
	{"pageName", "pageDescription"},
	{"sectionName", "sectionPurpose"},
	{"title", "description", "url"},
	{"title", "explanation"},
}

func matchesKnownRecord(obj map[string]json.RawMessage) bool {
	for _, sig := range recoverySignatures {
		found := true
		for _, key := range sig {
			if _, ok := obj[key]; !ok {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}
	return false
}

// DecodeSlice parses raw text into a slice of T. If the model returned
// a single object of a known record shape instead of an array, it is
// wrapped into a one-element slice. On any other failure the fallback
// is returned.
func DecodeSlice[T any](raw string, fallback []T) ([]T, Report) {
	cleaned := Clean(raw)
	repaired := cleaned != strings.TrimSpace(raw)

	if cleaned == "" {
		return fallback, Report{Outcome: OutcomeFallback, Repaired: repaired, Detail: "empty response text"}
	}

	var out []T
	if err := json.Unmarshal([]byte(cleaned), &out); err == nil {
		return out, Report{Outcome: OutcomeParsed, Repaired: repaired}
	} else if strings.HasPrefix(cleaned, "{") && strings.HasSuffix(cleaned, "}") {
		var obj map[string]json.RawMessage
		if recErr := json.Unmarshal([]byte(cleaned), &obj); recErr == nil && matchesKnownRecord(obj) {
			var wrapped []T
			if wrapErr := json.Unmarshal([]byte("["+cleaned+"]"), &wrapped); wrapErr == nil {
				return wrapped, Report{
					Outcome:  OutcomeRecovered,
					Repaired: repaired,
					Detail:   "wrapped single object in a slice: " + err.Error(),
				}
			}
		}
		return fallback, Report{Outcome: OutcomeFallback, Repaired: repaired, Detail: err.Error()}
	} else {
		return fallback, Report{Outcome: OutcomeFallback, Repaired: repaired, Detail: err.Error()}
	}
}

// DecodeObject parses raw text into a single value of T, falling back
// to the supplied default on failure.
func DecodeObject[T any](raw string, fallback T) (T, Report) {
	cleaned := Clean(raw)
	repaired := cleaned != strings.TrimSpace(raw)

	if cleaned == "" {
		return fallback, Report{Outcome: OutcomeFallback, Repaired: repaired, Detail: "empty response text"}
	}

	var out T
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return fallback, Report{Outcome: OutcomeFallback, Repaired: repaired, Detail: err.Error()}
	}
	return out, Report{Outcome: OutcomeParsed, Repaired: repaired}
}
