package uri

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// Component identifies one slot of a [URI].
//
// The seven real components are listed in the order the builder writes them.
// [Built] is the slot of the cached built string and is not a real component.
type Component uint8

const (
	Scheme Component = iota
	UserInfo
	Host
	Port
	Path
	Query
	Fragment
	Built

	numSlots = int(Built) + 1
)

var componentNames = [numSlots]string{
	Scheme:   "scheme",
	UserInfo: "userinfo",
	Host:     "host",
	Port:     "port",
	Path:     "path",
	Query:    "query",
	Fragment: "fragment",
	Built:    "built",
}

// String returns the lower-case component name.
func (c Component) String() string {
	if int(c) < numSlots {
		return componentNames[c]
	}
	return "component(" + strconv.Itoa(int(c)) + ")"
}

// IsValid reports whether c is one of the seven real components.
func (c Component) IsValid() bool { return c < Built }

// MarshalText implements [encoding.TextMarshaler].
func (c Component) MarshalText() ([]byte, error) {
	if int(c) >= numSlots {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown %s", c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Component) UnmarshalText(text []byte) error {
	v, err := ParseComponent(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*c = v
	return nil
}

// Components returns the real components in canonical order.
func Components() []Component {
	return []Component{Scheme, UserInfo, Host, Port, Path, Query, Fragment}
}

// ParseComponent returns the component with the given case-insensitive name.
// "built" is accepted and yields [Built].
func ParseComponent(s string) (Component, error) {
	s = util.LCase(util.TrimSP(s))
	for i, n := range componentNames {
		if n == s {
			return Component(i), nil
		}
	}
	return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown component %q", s))
}
