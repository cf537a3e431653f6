package unit

import (
	"sync"
	"sync/atomic"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/text/cases"
)

// Registry holds units by code, in registration order. Lookups never lock:
// every registration creates a new table which replaces the previous one
// atomically.
type Registry struct {
	mu    sync.Mutex   // serializes writers
	table atomic.Value // holds a *table
}

// table is never modified after it has been stored.
type table struct {
	byCode *linkedhashmap.Map // Code -> *Unit
	units  []*Unit            // values of byCode, in order
	byName map[string]*Unit   // folded name -> first unit carrying it
}

// NewRegistry creates a registry holding units in the given order.
func NewRegistry(units ...*Unit) *Registry {
	r := &Registry{}
	m := linkedhashmap.New()
	for _, u := range units {
		m.Put(u.code, u)
	}
	r.table.Store(newTable(m))
	return r
}

func newTable(m *linkedhashmap.Map) *table {
	t := &table{
		byCode: m,
		units:  make([]*Unit, 0, m.Size()),
		byName: make(map[string]*Unit),
	}
	for _, v := range m.Values() {
		u := v.(*Unit)
		t.units = append(t.units, u)
		for _, name := range u.names {
			key := fold(name)
			if other, exists := t.byName[key]; exists {
				if other != u {
					tracer().Infof("unit name %q of [%s] shadowed by unit [%s]", name, u, other)
				}
				continue
			}
			t.byName[key] = u
		}
	}
	return t
}

// fold returns the case-folded form of a unit name. Casers are stateful,
// therefore we create one per call.
func fold(name string) string {
	return cases.Fold().String(name)
}

func (r *Registry) load() *table {
	return r.table.Load().(*table)
}

// Register installs u under its code. A unit previously registered with the
// same code is replaced, keeping its position in iteration order.
func (r *Registry) Register(u *Unit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.load()
	m := linkedhashmap.New()
	old.byCode.Each(func(code interface{}, v interface{}) {
		m.Put(code, v)
	})
	if prev, found := m.Get(u.code); found {
		tracer().Debugf("unit [%s] replaces [%s] for code %d", u, prev, u.code)
	} else {
		tracer().Debugf("registering unit [%s] with code %d", u, u.code)
	}
	m.Put(u.code, u)
	r.table.Store(newTable(m))
}

// ForCode returns the unit registered under code, or nil.
func (r *Registry) ForCode(code Code) *Unit {
	if v, found := r.load().byCode.Get(code); found {
		return v.(*Unit)
	}
	return nil
}

// ForName returns the unit carrying name, compared case-insensitively. If
// more than one unit carries the name, the one first in iteration order wins.
// If no unit matches, an error of kind ErrUnknownName is returned.
func (r *Registry) ForName(name string) (*Unit, error) {
	if u := r.Lookup(name); u != nil {
		return u, nil
	}
	return nil, UnknownName(name)
}

// Lookup is like ForName, but returns nil for unknown names.
func (r *Registry) Lookup(name string) *Unit {
	return r.load().byName[fold(name)]
}

// Units returns all registered units in iteration order: built-ins first,
// ordered by expected frequency of use, then units in order of registration.
func (r *Registry) Units() []*Unit {
	t := r.load()
	units := make([]*Unit, len(t.units))
	copy(units, t.units)
	return units
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.load().units)
}

// --- Process-wide registry -------------------------------------------------

var defaultOnce sync.Once
var defaultRegistry *Registry

// Default returns the process-wide registry, holding the built-in units.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(builtins()...)
	})
	return defaultRegistry
}

// Register installs u in the process-wide registry.
func Register(u *Unit) {
	Default().Register(u)
}

// ForCode returns the unit registered under code in the process-wide
// registry, or nil.
func ForCode(code Code) *Unit {
	return Default().ForCode(code)
}

// ForName finds a unit by name in the process-wide registry.
func ForName(name string) (*Unit, error) {
	return Default().ForName(name)
}

// Lookup finds a unit by name in the process-wide registry, or returns nil.
func Lookup(name string) *Unit {
	return Default().Lookup(name)
}

// Units returns the units of the process-wide registry in iteration order.
func Units() []*Unit {
	return Default().Units()
}
