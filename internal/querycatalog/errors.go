package querycatalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrFailedPrecondition marks a backend refusal caused by a missing index.
var ErrFailedPrecondition = errors.New("failed precondition")

// IndexMissingError reports that a query spec has no backing index, with the
// remediation an operator can act on.
type IndexMissingError struct {
	Spec       QuerySpec
	URLs       []string
	Statements []string
}

func (e *IndexMissingError) Error() string {
	return fmt.Sprintf("index missing for %s", e.Spec.Name)
}

func (e *IndexMissingError) Unwrap() error {
	return ErrFailedPrecondition
}

var urlPattern = regexp.MustCompile(`https?://[^\s"'<>]+`)

// ExtractURLs returns the URLs found in msg, in order, without duplicates.
func ExtractURLs(msg string) []string {
	found := urlPattern.FindAllString(msg, -1)
	out := make([]string, 0, len(found))
	seen := make(map[string]bool, len(found))
	for _, u := range found {
		u = strings.TrimRight(u, ".,;)")
		if seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

// asIndexMissing turns err into an IndexMissingError when it signals a
// missing index. Backends that only report a message get their URLs parsed
// out of it.
func asIndexMissing(spec QuerySpec, err error) (*IndexMissingError, bool) {
	var typed *IndexMissingError
	if errors.As(err, &typed) {
		return typed, true
	}
	if errors.Is(err, ErrFailedPrecondition) || isPreconditionMessage(err.Error()) {
		return &IndexMissingError{Spec: spec, URLs: ExtractURLs(err.Error())}, true
	}
	return nil, false
}

func isPreconditionMessage(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "failed_precondition") ||
		strings.Contains(m, "failed-precondition") ||
		strings.Contains(m, "requires an index")
}
