package translate

import (
	"sync"

	"github.com/npillmayer/featural"
)

// TranslateAll translates a batch of constraints. The result has the same
// length and order as the input.
//
// Translation stops at the first constraint which cannot be translated. The
// error returned reports the 1-based number of this constraint in its Line
// field. If the translator uses more than one worker, constraints following
// the failing one may or may not have been translated, but the error
// returned is always the one of the first failing constraint, as it would
// be in sequential mode.
func (tr *Translator) TranslateAll(constraints []string) ([]string, error) {
	var out []string
	var err error
	if tr.workers <= 1 || len(constraints) < 2 {
		out, err = tr.translateSequential(constraints)
	} else {
		out, err = tr.translateParallel(constraints)
	}
	if err != nil {
		return nil, err
	}
	tracer().Infof("translated %d constraints", len(out))
	return out, nil
}

func (tr *Translator) translateSequential(constraints []string) ([]string, error) {
	out := make([]string, len(constraints))
	for i, c := range constraints {
		t, err := tr.Translate(c)
		if err != nil {
			return nil, featural.InConstraint(err, c, i+1)
		}
		out[i] = t
	}
	return out, nil
}

func (tr *Translator) translateParallel(constraints []string) ([]string, error) {
	n := tr.workers
	if n > len(constraints) {
		n = len(constraints)
	}
	out := make([]string, len(constraints))
	errs := make([]error, len(constraints))
	jobs := make(chan int)
	failed := make(chan struct{})
	var once sync.Once
	var wg sync.WaitGroup
	for w := 0; w < n; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs { // every job taken is processed
				t, err := tr.Translate(constraints[i])
				if err != nil {
					errs[i] = featural.InConstraint(err, constraints[i], i+1)
					once.Do(func() { close(failed) })
					continue
				}
				out[i] = t
			}
		}()
	}
	tracer().Debugf("translating %d constraints with %d workers", len(constraints), n)
dispatch:
	for i := range constraints {
		select {
		case jobs <- i:
		case <-failed:
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()
	// all constraints before a failing one have been dispatched, thus the
	// first error in input order is the one sequential mode would report
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
