package board

import (
	"fmt"
	"sort"
)

// Handler consumes one action. Handlers that do not care about an action
// must return nil untouched; errors are values, never panics.
type Handler func(Action) error

type registration struct {
	name string
	deps []string
	fn   Handler
}

// Dispatcher delivers actions serially to registered handlers. One
// dispatch runs to completion before the next begins; re-entrant
// dispatch from inside a handler is rejected rather than interleaved.
//
// A registration may declare dependencies on other registrations by name:
// within a single dispatch those handlers settle first. The current stores
// are independent, so this is only an ordering guarantee today, but it is
// the hook for cross-store sequencing if a handler ever needs another
// store's settled state.
type Dispatcher struct {
	handlers    []registration
	order       []int
	logf        func(format string, args ...any)
	dispatching bool
}

// NewDispatcher builds an empty dispatcher. logf receives handler errors
// (the dispatch still reports them to the caller); nil disables logging.
func NewDispatcher(logf func(format string, args ...any)) *Dispatcher {
	return &Dispatcher{logf: logf}
}

// Register adds a named handler, optionally depending on earlier-settling
// registrations. Registering a duplicate name or an unknown dependency is
// a programming error surfaced immediately.
func (d *Dispatcher) Register(name string, fn Handler, deps ...string) error {
	for _, r := range d.handlers {
		if r.name == name {
			return fmt.Errorf("register %q: %w", name, ErrDuplicateID)
		}
	}
	for _, dep := range deps {
		if !d.registered(dep) {
			return fmt.Errorf("register %q: dependency %q: %w", name, dep, ErrNotFound)
		}
	}
	d.handlers = append(d.handlers, registration{name: name, deps: deps, fn: fn})
	d.reorder()
	return nil
}

// Dispatch delivers the action to every handler in dependency order. All
// handlers run even when one fails; the first error is returned so the
// caller can surface it, and subsequent dispatches are unaffected.
func (d *Dispatcher) Dispatch(a Action) error {
	if d.dispatching {
		return fmt.Errorf("dispatch: re-entrant dispatch of %T", a)
	}
	d.dispatching = true
	defer func() { d.dispatching = false }()

	var first error
	for _, i := range d.order {
		r := d.handlers[i]
		if err := r.fn(a); err != nil {
			if d.logf != nil {
				d.logf("dispatch %T: handler %s: %v", a, r.name, err)
			}
			if first == nil {
				first = err
			}
		}
	}
	return first
}

func (d *Dispatcher) registered(name string) bool {
	for _, r := range d.handlers {
		if r.name == name {
			return true
		}
	}
	return false
}

// reorder rebuilds the delivery order so dependencies settle before their
// dependents. Register only accepts deps that already exist, so the graph
// is acyclic by construction; a stable sort on dependency depth is enough.
func (d *Dispatcher) reorder() {
	depth := make(map[string]int, len(d.handlers))
	var depthOf func(name string) int
	depthOf = func(name string) int {
		if v, ok := depth[name]; ok {
			return v
		}
		max := 0
		for _, r := range d.handlers {
			if r.name != name {
				continue
			}
			for _, dep := range r.deps {
				if v := depthOf(dep) + 1; v > max {
					max = v
				}
			}
		}
		depth[name] = max
		return max
	}

	order := make([]int, len(d.handlers))
	for i := range d.handlers {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return depthOf(d.handlers[order[a]].name) < depthOf(d.handlers[order[b]].name)
	})
	d.order = order
}
