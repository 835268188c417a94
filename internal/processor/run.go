// Package processor discovers optimizable images under a root, plans and
// applies one transform per file, and aggregates the results.
package processor

import (
	"fmt"
	"os"
)

// Run is the batch entry point: discover, prepare the output root, then
// process every file sequentially. Discovery and output-root failures
// abort the run; per-file failures are recorded on their outcome and the
// loop continues. Progress deltas are sent to updates (which may be nil)
// after discovery and after each file.
func Run(root string, opts Options, updates chan<- ProgressUpdate) ([]FileOutcome, RunTotals, error) {
	var totals RunTotals

	refs, err := Discover(root, opts.OutputRoot)
	if err != nil {
		return nil, totals, err
	}
	if updates != nil {
		updates <- ProgressUpdate{TotalDelta: len(refs)}
	}

	if err := os.MkdirAll(opts.OutputRoot, 0o755); err != nil {
		return nil, totals, fmt.Errorf("create output root: %w", err)
	}

	outcomes := make([]FileOutcome, 0, len(refs))
	for i, ref := range refs {
		outcome := processFile(ref, i+1, opts)
		outcomes = append(outcomes, outcome)

		totals.Attempted++
		update := ProgressUpdate{ProcessedDelta: 1}
		if outcome.Err != nil {
			update.ErrorDelta = 1
		} else {
			totals.Succeeded++
			totals.OriginalBytes += outcome.OriginalBytes
			totals.OutputBytes += outcome.OutputBytes
			totals.MetaRemoved += outcome.MetaRemoved
			update.MetaDelta = outcome.MetaRemoved
			update.BytesInDelta = outcome.OriginalBytes
			update.BytesOutDelta = outcome.OutputBytes
		}
		if updates != nil {
			updates <- update
		}
	}

	return outcomes, totals, nil
}
