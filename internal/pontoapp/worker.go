package pontoapp

import "context"

// Status is one update from a background run. The last value sent has Done
// set and carries the outcome.
type Status struct {
	Text   string
	Done   bool
	Result Result
	Err    error
}

// Start runs job on its own goroutine so a front end can keep drawing. The
// channel is closed after the final Status. A started run cannot be
// cancelled; ctx only bounds the launcher call.
func (r *Runner) Start(ctx context.Context, job Job) <-chan Status {
	statuses := make(chan Status, 8)
	go func() {
		defer close(statuses)
		result, err := r.Run(ctx, job, func(text string) {
			statuses <- Status{Text: text}
		})
		statuses <- Status{Done: true, Result: result, Err: err}
	}()
	return statuses
}

// Wait drains statuses and returns the final one.
func Wait(statuses <-chan Status) Status {
	var last Status
	for status := range statuses {
		last = status
	}
	return last
}
