package uri

//go:generate go tool errtrace -w .

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
)

type slot struct {
	val string
	ok  bool
}

type buildState uint8

const (
	buildAbsent buildState = iota // never built or cache dropped
	buildStale                    // cache holds the output of an outdated build
	buildFresh
)

// URI is a decomposed URI: one optional string per [Component]
// and the cached result of the last build.
//
// The zero value is an empty URI ready to use.
type URI struct {
	slots [numSlots]slot
	state buildState
}

// New returns an empty URI.
func New() *URI { return new(URI) }

// Get returns the value of component c and whether it is present.
//
// Get(Built) returns the cache slot as it is, which may be stale or absent;
// use [URI.Build] to get an up to date string.
func (u *URI) Get(c Component) (string, bool) {
	if u == nil || int(c) >= numSlots {
		return "", false
	}
	s := u.slots[c]
	return s.val, s.ok
}

// Has reports whether component c is present.
func (u *URI) Has(c Component) bool {
	_, ok := u.Get(c)
	return ok
}

// Set stores v as the value of component c, replacing the previous one.
// An empty v is stored as a present empty component.
//
// Set panics if c is [Built] or unknown.
func (u *URI) Set(c Component, v string) {
	mustReal(c)
	// clone so that a component never pins the buffer it was sliced from
	u.slots[c] = slot{val: strings.Clone(v), ok: true}
	u.invalidate()
}

// Remove clears component c and hands its previous value over to the caller.
//
// Removing [Built] drops the cache; other components are left untouched.
func (u *URI) Remove(c Component) (string, bool) {
	if u == nil || int(c) >= numSlots {
		return "", false
	}
	s := u.slots[c]
	u.slots[c] = slot{}
	if c == Built {
		u.state = buildAbsent
	} else {
		u.invalidate()
	}
	return s.val, s.ok
}

// Reset clears all slots including the cache.
func (u *URI) Reset() { *u = URI{} }

func (u *URI) invalidate() {
	if u.state == buildFresh {
		u.state = buildStale
	}
}

func mustReal(c Component) {
	if !c.IsValid() {
		panic(errorutil.NewInvalidArgumentError("component %s can not be set", c))
	}
}

// Clone returns a copy of the URI including its build cache.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// Equal reports whether val is a URI ([URI] or *[URI]) with the same components.
// Absent and empty components differ; the build cache is not compared.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	for c := range Built {
		if u.slots[c] != other.slots[c] {
			return false
		}
	}
	return true
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	s, err := u.Build()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
