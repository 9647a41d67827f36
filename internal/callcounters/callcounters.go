package callcounters

// This package contains code for call counters.
// Call counters are benchmarking counters used to count how often certain
// operations are called and report the numbers in an organized fashion.
//
// Counters are referred to by their Id, a string without whitespace (a
// limitation of Go's benchmarking framework, since ids end up in metric tags).
// Counters form a tree: incrementing a counter also increments all its
// ancestors, so a parent reports the total of its subtree plus its own direct
// increments.
//
// Counters can be referred to before they are created; a dummy entry is
// registered and later upgraded, so initialization order does not matter.
//
// NOTE: Counters are not synchronized. They are meant to be driven from
// single-goroutine benchmarks.

import "sort"

type Id string

type CallCounter struct {
	id          Id
	displayName string // defaults to id if created with ""
	parent      *CallCounter
	count       int
	initialized bool // false for dummies created by mere reference
}

var callCounters = make(map[Id]*CallCounter)

// Exists checks whether a call counter with the given id was properly created
// (dummies from forward references do not count).
func (id Id) Exists() bool {
	cc, ok := callCounters[id]
	return ok && cc.initialized
}

// getCounter translates from id to *CallCounter, registering a dummy entry if
// the id was not seen before.
func getCounter(id Id) *CallCounter {
	if id == "" {
		panic("callcounters: empty id")
	}
	cc, ok := callCounters[id]
	if !ok {
		cc = &CallCounter{id: id, displayName: string(id)}
		callCounters[id] = cc
	}
	return cc
}

// CreateHierarchicalCallCounter creates the call counter with the given id and
// display name and returns a pointer to it. If parentId is not "", the new
// counter is attached below that counter (which may be created later, or not
// at all) and rolls its increments up into it.
func CreateHierarchicalCallCounter(id Id, displayName string, parentId Id) *CallCounter {
	cc := getCounter(id)
	if cc.initialized {
		panic("callcounters: created the same counter twice: " + string(id))
	}
	cc.initialized = true
	if displayName != "" {
		cc.displayName = displayName
	}
	if parentId != "" {
		cc.parent = getCounter(parentId)
	}
	return cc
}

// Increment adds 1 to the counter and, recursively, to all its ancestors.
func (id Id) Increment() {
	for cc := getCounter(id); cc != nil; cc = cc.parent {
		cc.count++
	}
}

// ResetAllCounters sets every counter back to zero.
func ResetAllCounters() {
	for _, cc := range callCounters {
		cc.count = 0
	}
}

// Report is one entry of ReportCallCounters' output.
type Report struct {
	Tag   string // the counter's id, usable as a benchmark metric tag
	Name  string // the human-readable display name
	Calls int
}

// ReportCallCounters returns the current counts, sorted by tag for stable
// output. With onlyInitialized set, dummy counters that were referenced but
// never created are skipped; with includeZero unset, counters that never fired
// are skipped.
func ReportCallCounters(onlyInitialized bool, includeZero bool) (ret []Report) {
	for id, cc := range callCounters {
		if onlyInitialized && !cc.initialized {
			continue
		}
		if !includeZero && cc.count == 0 {
			continue
		}
		ret = append(ret, Report{Tag: string(id), Name: cc.displayName, Calls: cc.count})
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Tag < ret[j].Tag })
	return
}
