package cvar

import (
	"errors"
	"log"
	"sync"

	"github.com/wartide/garrison/internal/cvar/cvarflag"
)

var ErrNotFound = errors.New("no such variable")

// Variable is a single named integer configuration variable with an optional
// upper bound and a set of classification flags. The zero value is not usable;
// variables are created through Registry.Register.
type Variable struct {
	name  string
	value int
	flags cvarflag.Flags

	hasMax bool
	max    float64

	// shipped defaults, restored on Registry.Reset
	defValue  int
	defFlags  cvarflag.Flags
	defHasMax bool
	defMax    float64
}

func (v *Variable) Name() string { return v.name }

func (v *Variable) Int() int { return v.value }

func (v *Variable) Flags() cvarflag.Flags { return v.flags }

func (v *Variable) SetFlags(f cvarflag.Flags) { v.flags = f }

// Max returns the upper bound, if one is set.
func (v *Variable) Max() (float64, bool) { return v.max, v.hasMax }

func (v *Variable) SetUpperBound(has bool, max float64) {
	v.hasMax, v.max = has, max
}

func (v *Variable) reset() {
	v.value, v.flags = v.defValue, v.defFlags
	v.hasMax, v.max = v.defHasMax, v.defMax
}

// Registry holds all variables of the server by name.
type Registry struct {
	sync.RWMutex
	vars   map[string]*Variable
	logger *log.Logger
}

func NewRegistry(logger *log.Logger) *Registry {
	return &Registry{
		vars:   map[string]*Variable{},
		logger: logger,
	}
}

func (r *Registry) Register(name string, value int, flags cvarflag.Flags) *Variable {
	v := &Variable{
		name:     name,
		value:    value,
		flags:    flags,
		defValue: value,
		defFlags: flags,
	}
	r.Lock()
	r.vars[name] = v
	r.Unlock()
	return v
}

func (r *Registry) RegisterBounded(name string, value int, max float64, flags cvarflag.Flags) *Variable {
	v := r.Register(name, value, flags)
	v.hasMax, v.max = true, max
	v.defHasMax, v.defMax = true, max
	return v
}

func (r *Registry) Find(name string) (*Variable, error) {
	r.RLock()
	v, ok := r.vars[name]
	r.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

// SetInt writes value to v, clamping against the upper bound if one is set.
// With notify set, the change is announced when the variable carries the
// notify flag, like the engine does for client-visible tuning changes.
func (r *Registry) SetInt(v *Variable, value int, notify, flagChanged bool) {
	r.Lock()
	defer r.Unlock()
	if v.hasMax && float64(value) > v.max {
		value = int(v.max)
	}
	if v.value == value && !flagChanged {
		return
	}
	v.value = value
	if notify && v.flags.Has(cvarflag.Notify) {
		r.logger.Printf("%s changed to %d", v.name, value)
	}
}

func (r *Registry) ForEach(do func(v *Variable)) {
	r.RLock()
	for _, v := range r.vars {
		do(v)
	}
	r.RUnlock()
}

// Reset restores every variable to its shipped default value, bound and
// flags. The engine does this on certain map transitions, which is why the
// unlock batch has to be reapplied on every lifecycle event.
func (r *Registry) Reset() {
	r.Lock()
	for _, v := range r.vars {
		v.reset()
	}
	r.Unlock()
}
