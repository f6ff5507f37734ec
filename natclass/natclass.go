/*
Package natclass resolves feature specifications to natural classes.

A natural class is the set of segments of a feature table which carry all
the values of a list of feature specifications. For a table

   seg   voice  cont
   a     +      +
   b     +      -
   c     -      +

the specifications [+voice] denote the class {a, b}, [+voice,+cont] denote
{a}, and the empty list of specifications denotes all of {a, b, c}.

Classes list their segments in table order. Resolving starts with all
segments of a table and prunes segments not matching a specification, one
specification at a time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package natclass

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/featural"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Resolve returns the natural class for a list of feature specifications.
// The segments of the class are in table order. An empty list of
// specifications yields all segments of the table.
//
// A specification naming a feature not present in the table results in an
// error of kind featural.MalformedSpecification, even if no segment is
// left to check at that point.
func Resolve(specs []featural.Spec, table *featural.FeatureTable) ([]featural.Segment, error) {
	for _, spec := range specs {
		if !table.HasFeature(spec.Feature) {
			return nil, &featural.Error{
				Kind:    featural.MalformedSpecification,
				Feature: spec.Feature,
				Spec:    spec.String(),
			}
		}
	}
	segs := table.Segments()
	list := arraylist.New()
	for _, seg := range segs {
		list.Add(seg)
	}
	for _, spec := range specs {
		i := 0
		for i < list.Size() {
			v, _ := list.Get(i)
			seg := v.(featural.Segment)
			ok, err := table.Matches(seg, spec)
			if err != nil {
				return nil, err
			}
			if ok {
				i++
				continue
			}
			list.Remove(i) // preserves order of the remaining segments
		}
		tracer().Debugf("after %s: %d segments left", spec, list.Size())
	}
	class := make([]featural.Segment, 0, list.Size())
	it := list.Iterator()
	for it.Next() {
		class = append(class, it.Value().(featural.Segment))
	}
	return class, nil
}

// Alternation joins the segments of a class with '|'.
// An empty class yields the empty string.
func Alternation(class []featural.Segment) string {
	return strings.Join(class, "|")
}

// --- Resolver --------------------------------------------------------------

// Resolver resolves natural classes against a fixed feature table.
// If created with memoization, classes are cached per distinct list of
// specifications. Resolvers are safe for concurrent use.
type Resolver struct {
	table   *featural.FeatureTable
	memoize bool
	mx      sync.RWMutex
	cache   map[string][]featural.Segment
	hits    int64
}

// NewResolver creates a resolver for a feature table.
func NewResolver(table *featural.FeatureTable, memoize bool) *Resolver {
	r := &Resolver{
		table:   table,
		memoize: memoize,
	}
	if memoize {
		r.cache = make(map[string][]featural.Segment)
	}
	return r
}

// Table returns the feature table of r.
func (r *Resolver) Table() *featural.FeatureTable {
	return r.table
}

// Resolve returns the natural class for specs. Callers must not modify the
// returned slice.
func (r *Resolver) Resolve(specs []featural.Spec) ([]featural.Segment, error) {
	if !r.memoize {
		return Resolve(specs, r.table)
	}
	key := featural.SpecListKey(specs)
	r.mx.RLock()
	class, found := r.cache[key]
	r.mx.RUnlock()
	if found {
		atomic.AddInt64(&r.hits, 1)
		tracer().Debugf("natural class cache hit for %v", specs)
		return class, nil
	}
	class, err := Resolve(specs, r.table)
	if err != nil {
		return nil, err
	}
	r.mx.Lock()
	r.cache[key] = class
	r.mx.Unlock()
	return class, nil
}

// Alternation resolves specs and returns the '|'-joined class.
func (r *Resolver) Alternation(specs []featural.Spec) (string, error) {
	class, err := r.Resolve(specs)
	if err != nil {
		return "", err
	}
	return Alternation(class), nil
}

// CacheHits returns the number of cache hits since creation of r.
func (r *Resolver) CacheHits() int {
	return int(atomic.LoadInt64(&r.hits))
}
