package extract

import "strings"

// relevantLines splits raw text on newlines and returns, in original order,
// every line whose lowercase form contains any of the keywords as a
// substring. Raw text, not normalized: line structure and casing survive.
func relevantLines(rawText string, keywords []string) []string {
	if rawText == "" || len(keywords) == 0 {
		return nil
	}
	var out []string
	for _, line := range strings.Split(rawText, "\n") {
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				out = append(out, line)
				break
			}
		}
	}
	return out
}

// scanValue is the fallback for a field no pattern resolved: the first
// relevant line that yields a non-empty value after its first colon wins.
// Everything after that colon is the candidate, so "Closing: 12:30" yields
// "12:30".
func scanValue(rawText string, keywords []string) (string, bool) {
	for _, line := range relevantLines(rawText, keywords) {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) < 2 {
			continue
		}
		if v := strings.TrimSpace(parts[1]); v != "" {
			return v, true
		}
	}
	return "", false
}
