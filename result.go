// Package parity validation outcomes and aggregation
package parity

import "strings"

// PassedMessage is the message carried by every successful ValidationResult.
const PassedMessage = "validation passed"

// ValidationResult is the outcome of one equivalence check. Passed implies
// Message is PassedMessage; a failed result carries a diagnostic naming the
// first (or combined) disagreement.
type ValidationResult struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// Success returns a passing result.
func Success() ValidationResult {
	return ValidationResult{Passed: true, Message: PassedMessage}
}

// Failure returns a failing result with the given diagnostic.
func Failure(message string) ValidationResult {
	return ValidationResult{Passed: false, Message: message}
}

// Combine merges many results into one. Every result is always inspected so
// that batch validation reports every disagreement, not just the first;
// failing messages are joined with "; " in input order. No results is a
// success.
func Combine(results ...ValidationResult) ValidationResult {
	var failed []string
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r.Message)
		}
	}
	if len(failed) == 0 {
		return Success()
	}
	return Failure(strings.Join(failed, "; "))
}
