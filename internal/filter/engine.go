package filter

import (
	"runtime"
	"sync"

	"logsift/internal/log"
	"logsift/pkg/types"
)

// Engine runs check and filter passes with a fixed keyword set, fanning
// directory batches out over a worker pool. Each file's
// read/classify/write cycle is self-contained, so workers share no state.
type Engine struct {
	keywords []string
	keep     bool
	workers  int
}

// New creates an engine for the given keyword set. A nil or empty set
// means "no filter": checks count zero matches and the default remove
// policy keeps every line.
func New(keywords []string) *Engine {
	return &Engine{
		keywords: keywords,
		workers:  runtime.NumCPU(),
	}
}

// SetKeep selects the filter policy: true keeps only matching lines,
// false (the default) removes them.
func (e *Engine) SetKeep(keep bool) {
	e.keep = keep
}

// SetWorkers overrides the worker pool size, used by tests.
func (e *Engine) SetWorkers(n int) {
	if n > 0 {
		e.workers = n
	}
}

// Keywords returns the engine's keyword set.
func (e *Engine) Keywords() []string {
	return e.keywords
}

// CheckFile counts keyword-matching lines in a single file.
func (e *Engine) CheckFile(path string) (types.CheckResult, error) {
	return CheckFile(path, e.keywords)
}

// FilterFile filters a single file according to the engine's policy.
func (e *Engine) FilterFile(path string) (types.FilterResult, error) {
	return FilterFile(path, e.keywords, e.keep)
}

// CheckAll runs CheckFile over every path in parallel. A failure on one
// file is logged, recorded on its result, and does not affect any other
// file. Result order follows completion, not input, order.
func (e *Engine) CheckAll(paths []string) []types.CheckResult {
	results := make([]types.CheckResult, 0, len(paths))
	out := make(chan types.CheckResult)

	fanOut(e.workers, paths, out, func(path string) types.CheckResult {
		res, err := CheckFile(path, e.keywords)
		if err != nil {
			log.Error("check failed, path: %s, reason: %v", path, err)
			return types.CheckResult{Path: path, Error: err}
		}
		return res
	})

	for r := range out {
		results = append(results, r)
	}
	return results
}

// FilterAll runs FilterFile over every path in parallel with the same
// per-file isolation as CheckAll.
func (e *Engine) FilterAll(paths []string) []types.FilterResult {
	results := make([]types.FilterResult, 0, len(paths))
	out := make(chan types.FilterResult)

	fanOut(e.workers, paths, out, func(path string) types.FilterResult {
		res, err := FilterFile(path, e.keywords, e.keep)
		if err != nil {
			log.Error("filter failed, path: %s, reason: %v", path, err)
			return types.FilterResult{Path: path, Error: err}
		}
		return res
	})

	for r := range out {
		results = append(results, r)
	}
	return results
}

// fanOut feeds paths to a fixed pool of workers and closes out once all
// results have been sent.
func fanOut[R any](workers int, paths []string, out chan<- R, work func(string) R) {
	jobs := make(chan string)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				out <- work(path)
			}
		}()
	}

	go func() {
		for _, p := range paths {
			jobs <- p
		}
		close(jobs)
		wg.Wait()
		close(out)
	}()
}
