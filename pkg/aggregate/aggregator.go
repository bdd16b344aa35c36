package aggregate

import (
	"fmt"
	"sort"

	"github.com/iotools/iotstat/pkg/data"
)

const errMixedUnitsFmt = "mixed units in group %s: expected %s, found %s"

// ValidationError reports a group whose readings do not all share one unit.
// Mixing units would corrupt every statistic for the group, so this aborts
// the whole run rather than skipping the row.
type ValidationError struct {
	Key      data.GroupKey
	Expected data.Unit
	Found    data.Unit
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(errMixedUnitsFmt, e.Key, e.Expected, e.Found)
}

// Aggregator owns the GroupKey to GroupAggregate mapping for pass one.
// Consumers may only read groups after Finalize; the mixed-unit check must
// have seen every row before derived statistics are trusted.
type Aggregator struct {
	groups    map[data.GroupKey]*GroupAggregate
	finalized bool
}

func NewAggregator() *Aggregator {
	return &Aggregator{groups: make(map[data.GroupKey]*GroupAggregate)}
}

// Fold routes a reading into its group, creating the group on first sight.
// It returns a *ValidationError if the reading's unit differs from the one
// the group was established with.
func (a *Aggregator) Fold(r *data.Reading) error {
	if a.finalized {
		panic("logic error: Fold after Finalize")
	}
	key := r.Key()
	g, ok := a.groups[key]
	if !ok {
		g = &GroupAggregate{Unit: r.Unit}
		a.groups[key] = g
	} else if g.Unit != r.Unit {
		return &ValidationError{Key: key, Expected: g.Unit, Found: r.Unit}
	}
	g.Push(r.Value)
	return nil
}

// Finalize marks pass one complete and unlocks reads.
func (a *Aggregator) Finalize() {
	a.finalized = true
}

// Group returns the finalized aggregate for a key, if the key was seen.
func (a *Aggregator) Group(key data.GroupKey) (*GroupAggregate, bool) {
	if !a.finalized {
		panic("logic error: Group read before Finalize")
	}
	g, ok := a.groups[key]
	return g, ok
}

// Len returns the number of groups seen.
func (a *Aggregator) Len() int {
	return len(a.groups)
}

// Keys returns every seen group key in lexical (site, device, metric) order.
func (a *Aggregator) Keys() []data.GroupKey {
	if !a.finalized {
		panic("logic error: Keys read before Finalize")
	}
	keys := make([]data.GroupKey, 0, len(a.groups))
	for k := range a.groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
