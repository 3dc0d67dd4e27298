package service

import "fmt"

// BatchOutcome aggregates a bulk operation. Success is deliberately lenient:
// importing 9 of 10 rows is still a success, and the caller surfaces the
// failed count and error lines alongside it.
type BatchOutcome struct {
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}

func (o *BatchOutcome) Success() bool {
	return o.Succeeded > 0
}

// runBatch drives N independent unit operations in input order. A failing
// item is recorded with its label and never terminates the loop; the error
// list order matches the input order. No transaction spans the batch, so
// partial application is an accepted outcome.
func runBatch[T any](items []T, label func(index int, item T) string, op func(item T) error) BatchOutcome {
	outcome := BatchOutcome{
		Errors: make([]string, 0),
	}

	for i, item := range items {
		if err := op(item); err != nil {
			outcome.Failed++
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("%s: %s", label(i, item), err))
			continue
		}
		outcome.Succeeded++
	}

	return outcome
}
