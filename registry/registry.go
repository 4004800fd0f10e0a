// Package registry maps C type spellings to scalar descriptors and back.
//
// A Registry holds many aliases per type but exactly one canonical name,
// the first name the type was ever registered under. Registration is
// conflict-checked: a name bound to one type can never be silently rebound
// to another. The intended lifecycle is construct, fill, Freeze, then read
// concurrently.
package registry

import (
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"ctypemap/dtype"
	"ctypemap/errors"
)

var log = commonlog.GetLogger("ctypemap.registry")

// Names is an ordered list of C spellings for one type.
type Names []string

// Name is a single spelling.
func Name(name string) Names {
	return Names{name}
}

// Aliases is an ordered list of spellings; first becomes canonical when the
// type is new.
func Aliases(first string, rest ...string) Names {
	return append(Names{first}, rest...)
}

// Outcome is what registration did with one name.
type Outcome uint8

const (
	// RegisteredNew bound the name to a type registered for the first time.
	RegisteredNew Outcome = iota
	// RegisteredAlias bound the name to an already known type.
	RegisteredAlias
	// Unchanged found the name already bound to an equal type.
	Unchanged
	// Conflict found the name bound to a different type.
	Conflict
)

func (o Outcome) String() string {
	switch o {
	case RegisteredNew:
		return "new"
	case RegisteredAlias:
		return "alias"
	case Unchanged:
		return "unchanged"
	case Conflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// NameOutcome pairs a name with its registration outcome.
type NameOutcome struct {
	Name    string
	Outcome Outcome
}

// Registration is the result of a Register call.
type Registration struct {
	Type    *dtype.Scalar // canonical descriptor
	NewType bool          // first registration of this descriptor
	Names   []NameOutcome // one per processed name, in order
}

// Entry is one name binding in a registry snapshot.
type Entry struct {
	Name      string
	Type      *dtype.Scalar
	Canonical bool
}

// Registry is the bijection between C spellings and scalar descriptors.
type Registry struct {
	mu         sync.RWMutex
	frozen     bool
	nameToType map[string]*dtype.Scalar
	typeToName map[dtype.Key]string
	order      []string // names in registration order
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		nameToType: make(map[string]*dtype.Scalar),
		typeToName: make(map[dtype.Key]string),
	}
}

// GetOrRegister registers names for t, or, when t is nil, looks the names up.
func (r *Registry) GetOrRegister(names Names, t *dtype.Scalar) (*dtype.Scalar, error) {
	if t == nil {
		return r.Lookup(names)
	}
	reg, err := r.Register(names, *t)
	if err != nil {
		return nil, err
	}
	return reg.Type, nil
}

// Lookup returns the type all names are bound to.
func (r *Registry) Lookup(names Names) (*dtype.Scalar, error) {
	if len(names) == 0 {
		return nil, errors.New(errors.EmptyNameSet, "no type names given").Build()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *dtype.Scalar
	var types []string
	for _, name := range names {
		t, ok := r.nameToType[name]
		if !ok {
			return nil, errors.UnknownType(name)
		}
		if found == nil {
			found = t
			types = append(types, t.String())
		} else if found.Key() != t.Key() {
			types = append(types, t.String())
			return nil, errors.Ambiguous(names, types)
		}
	}
	return found, nil
}

// Register binds every name to t. A descriptor that fails Validate is
// rejected with InvalidScalar before anything is bound.
//
// If an equal descriptor is already registered its canonical object is
// reused. A name already bound to a different type stops the call with
// ConflictingRegistration; names processed before it stay bound, so the
// caller must abandon the batch.
func (r *Registry) Register(names Names, t dtype.Scalar) (Registration, error) {
	return r.registerChecked(names, t, false)
}

// RegisterDistinct registers t under names, failing if t is already known
// under any name.
func (r *Registry) RegisterDistinct(names Names, t dtype.Scalar) (Registration, error) {
	return r.registerChecked(names, t, true)
}

func (r *Registry) registerChecked(names Names, t dtype.Scalar, distinct bool) (Registration, error) {
	if len(names) == 0 {
		return Registration{}, errors.New(errors.EmptyNameSet, "no type names given for %s", t).Build()
	}
	if err := t.Validate(); err != nil {
		return Registration{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return Registration{}, errors.New(errors.FrozenRegistry, "cannot register '%s': registry is frozen",
			strings.Join(names, "', '")).WithNames(names...).Build()
	}
	if existing, known := r.typeToName[t.Key()]; distinct && known {
		return Registration{}, errors.New(errors.DuplicateType, "type '%s' already registered (as '%s', new names '%s')",
			t, existing, strings.Join(names, ", ")).WithNames(names...).Build()
	}
	return r.register(names, t)
}

func (r *Registry) register(names Names, t dtype.Scalar) (Registration, error) {
	key := t.Key()

	// reuse the canonical descriptor object of an equal type
	canonical, existed := r.canonicalLocked(key)
	if !existed {
		c := t
		canonical = &c
	}

	reg := Registration{Type: canonical, NewType: !existed}
	for _, name := range names {
		bound, ok := r.nameToType[name]
		switch {
		case !ok:
			r.nameToType[name] = canonical
			r.order = append(r.order, name)
			outcome := RegisteredAlias
			if !existed {
				outcome = RegisteredNew
			}
			reg.Names = append(reg.Names, NameOutcome{Name: name, Outcome: outcome})
			log.Debugf("registered '%s' as %s (%s)", name, canonical, outcome)

		case bound.Key() == key:
			reg.Names = append(reg.Names, NameOutcome{Name: name, Outcome: Unchanged})

		default:
			reg.Names = append(reg.Names, NameOutcome{Name: name, Outcome: Conflict})
			log.Warningf("name '%s' already registered to %s, refusing %s", name, bound, canonical)
			r.claimCanonicalLocked(key, existed, reg)
			return reg, errors.Conflict(name, bound.String(), canonical.String())
		}
	}

	if !existed {
		r.typeToName[key] = names[0]
	}
	return reg, nil
}

// claimCanonicalLocked keeps every bound name reachable from typeToName when
// a conflict aborts the first registration of a type.
func (r *Registry) claimCanonicalLocked(key dtype.Key, existed bool, reg Registration) {
	if existed {
		return
	}
	for _, no := range reg.Names {
		if no.Outcome == RegisteredNew {
			r.typeToName[key] = no.Name
			return
		}
	}
}

func (r *Registry) canonicalLocked(key dtype.Key) (*dtype.Scalar, bool) {
	name, ok := r.typeToName[key]
	if !ok {
		return nil, false
	}
	return r.nameToType[name], true
}

// TypeToName returns the canonical spelling of t.
func (r *Registry) TypeToName(t *dtype.Scalar) (string, error) {
	if t == nil {
		return "", errors.Null()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.typeToName[t.Key()]
	if !ok {
		return "", errors.Unmapped(t.String())
	}
	return name, nil
}

// Canonical returns the registry's descriptor object for t, if any.
func (r *Registry) Canonical(t dtype.Scalar) (*dtype.Scalar, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.canonicalLocked(t.Key())
}

// Resolve looks up a single spelling.
func (r *Registry) Resolve(name string) (*dtype.Scalar, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.nameToType[name]
	return t, ok
}

// Unregister removes a name. If it was canonical, the next alias in
// registration order takes over; with no alias left the type is unmapped.
func (r *Registry) Unregister(name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return false, errors.New(errors.FrozenRegistry, "cannot unregister '%s': registry is frozen", name).
			WithNames(name).Build()
	}

	t, ok := r.nameToType[name]
	if !ok {
		return false, nil
	}
	delete(r.nameToType, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	key := t.Key()
	if r.typeToName[key] != name {
		return true, nil
	}
	delete(r.typeToName, key)
	for _, n := range r.order {
		if r.nameToType[n].Key() == key {
			r.typeToName[key] = n
			log.Debugf("'%s' is now canonical for %s", n, t)
			break
		}
	}
	return true, nil
}

// Freeze rejects all further mutation.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nameToType)
}

// Entries returns a snapshot of all bindings in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		t := r.nameToType[name]
		entries = append(entries, Entry{
			Name:      name,
			Type:      t,
			Canonical: r.typeToName[t.Key()] == name,
		})
	}
	return entries
}
