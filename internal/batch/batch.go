// Package batch drives per-file processing over a set of documents. Files
// are independent, so the set is fanned out to workers with no coordination
// beyond "exactly one worker touches a path". Failures never abort the
// batch: every file is attempted, all failures are collected, and the
// caller turns a non-empty failure list into a non-zero exit. Nothing is
// retried; every failure here is a deterministic input problem.
package batch

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Failure records one file that could not be processed.
type Failure struct {
	Path string
	Err  error
}

// Runner fans paths out to workers.
type Runner struct {
	Workers int
	Log     *zap.SugaredLogger
}

// Run applies fn to every path and returns the failures, ordered by path.
// fn must treat its file as a single read-transform-write unit.
func (r *Runner) Run(paths []string, fn func(path string) error) []Failure {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan string)
	var mu sync.Mutex
	var failures []Failure

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := fn(path); err != nil {
					r.Log.Errorw("file failed", "path", path, "error", err)
					mu.Lock()
					failures = append(failures, Failure{Path: path, Err: err})
					mu.Unlock()
				}
			}
		}()
	}
	for _, p := range paths {
		jobs <- p
	}
	close(jobs)
	wg.Wait()

	sort.Slice(failures, func(i, j int) bool { return failures[i].Path < failures[j].Path })
	return failures
}
