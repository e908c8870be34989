package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/propscan/propscan/constants"
)

// Normalization erases line breaks, so a captured value runs until the next
// field label (or end of text) rather than until end of line. stop is shared
// by every free-text rule as its right boundary.
const stop = `(?:[\s,.]+(?:buyer|seller|purchaser|vendor|grantor|grantee|owner|property|premises|address|closing|completion|signing|date|dates|dated|offer|purchase|sale|price|amount|name)\b|\s*$)`

// amount captures a dollar figure without the dollar sign; a leading "$" is
// consumed by the rule body so it never ends up in the value.
const amount = `(\d[\d,]*(?:\.\d{1,2})?)`

// defaultPatterns lists, per field, the label phrasings seen across document
// templates. Order is priority: the most specific phrasing first, so a generic
// rule cannot steal a match meant for a compound label. First match wins.
var defaultPatterns = map[string][]string{
	constants.FieldBuyerName: {
		`buyer\s*name\s*:\s*(.+?)` + stop,
		`name\s*of\s*buyer\s*:\s*(.+?)` + stop,
		`purchaser\s*:\s*(.+?)` + stop,
		`grantee\s*:\s*(.+?)` + stop,
		`buyer\s*:\s*(.+?)` + stop,
	},
	constants.FieldSellerName: {
		`seller\s*name\s*:\s*(.+?)` + stop,
		`name\s*of\s*seller\s*:\s*(.+?)` + stop,
		`grantor\s*:\s*(.+?)` + stop,
		`seller\s*:\s*(.+?)` + stop,
	},
	constants.FieldPropertyAddress: {
		`property\s*address\s*:\s*(.+?)` + stop,
		`address\s*of\s*property\s*:\s*(.+?)` + stop,
		`premises\s*:\s*(.+?)` + stop,
		`property\s*:\s*(.+?)` + stop,
		`address\s*:\s*(.+?)` + stop,
	},
	constants.FieldKeyDates: {
		`closing\s*date\s*:\s*(.+?)` + stop,
		`completion\s*date\s*:\s*(.+?)` + stop,
		`date\s*of\s*closing\s*:\s*(.+?)` + stop,
		`dated?\s*:\s*(.+?)` + stop,
	},
	constants.FieldOfferPrice: {
		`offer\s*price\s*:\s*\$?\s*` + amount,
		`purchase\s*price\s*:\s*\$?\s*` + amount,
		`sale\s*price\s*:\s*\$?\s*` + amount,
		`price\s*:\s*\$?\s*` + amount,
		// any dollar amount anywhere, last resort for price only
		`\$\s*` + amount,
	},
}

// defaultKeywords drives the fallback line scanner. Keywords are broader than
// the label text the patterns match: any line merely mentioning one of these
// is a candidate for that field.
var defaultKeywords = map[string][]string{
	constants.FieldBuyerName:       {"buyer", "purchaser", "grantee", "buying party"},
	constants.FieldSellerName:      {"seller", "vendor", "grantor", "selling party"},
	constants.FieldPropertyAddress: {"address", "property", "premises", "location"},
	constants.FieldKeyDates:        {"date", "closing", "completion", "signed"},
	constants.FieldOfferPrice:      {"price", "amount", "offer", "consideration"},
}

// RuleSet is the static extraction configuration: per-field ordered pattern
// rules plus the keyword sets for the fallback scanner. Immutable once built.
type RuleSet struct {
	patterns map[string][]*regexp.Regexp
	keywords map[string][]string
}

// NewRuleSet compiles pattern sources into a RuleSet. Every field must be one
// of the five record fields, and every rule must carry at least one capture
// group (group 1 is the value).
func NewRuleSet(patterns map[string][]string, keywords map[string][]string) (*RuleSet, error) {
	rs := &RuleSet{
		patterns: make(map[string][]*regexp.Regexp, len(patterns)),
		keywords: make(map[string][]string, len(keywords)),
	}
	for field, srcs := range patterns {
		if !validField(field) {
			return nil, fmt.Errorf("unknown field %q in patterns", field)
		}
		rules := make([]*regexp.Regexp, 0, len(srcs))
		for _, src := range srcs {
			// case-insensitive matching is a property of the engine, not of
			// individual rule sources
			re, err := regexp.Compile(`(?i)` + src)
			if err != nil {
				return nil, fmt.Errorf("compile pattern for %s: %w", field, err)
			}
			if re.NumSubexp() < 1 {
				return nil, fmt.Errorf("pattern for %s has no capture group: %q", field, src)
			}
			rules = append(rules, re)
		}
		rs.patterns[field] = rules
	}
	for field, kws := range keywords {
		if !validField(field) {
			return nil, fmt.Errorf("unknown field %q in keywords", field)
		}
		lowered := make([]string, 0, len(kws))
		for _, kw := range kws {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				lowered = append(lowered, kw)
			}
		}
		rs.keywords[field] = lowered
	}
	return rs, nil
}

// DefaultRuleSet returns the built-in rules for real-estate documents.
func DefaultRuleSet() *RuleSet {
	rs, err := NewRuleSet(defaultPatterns, defaultKeywords)
	if err != nil {
		panic(fmt.Sprintf("extract: bad default rules: %v", err))
	}
	return rs
}

// find applies the field's rules in order against cleaned text and returns
// the first trimmed capture. Linear scan with early exit: first match wins,
// never longest or best.
func (rs *RuleSet) find(field, text string) (string, bool) {
	for _, re := range rs.patterns[field] {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			return v, true
		}
	}
	return "", false
}

func validField(name string) bool {
	for _, f := range constants.FieldNames {
		if f == name {
			return true
		}
	}
	return false
}
