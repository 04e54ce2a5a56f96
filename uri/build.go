package uri

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// RenderOptions control [URI.Render] and [URI.RenderTo].
// A nil *RenderOptions is the same as the zero value.
type RenderOptions struct {
	// Canonical makes the path of a URI with a host start with '/':
	// a '/' is inserted before a relative path, and before the query or fragment
	// when the path is absent or empty. Canonical output is never cached.
	Canonical bool `json:"canonical,omitempty"`
}

// Build returns the built string, rebuilding it first if any component
// has changed since the last build. It returns [ErrMissingScheme] if
// the scheme is absent, leaving the cache untouched.
func (u *URI) Build() (string, error) {
	if u == nil {
		return "", errtrace.Wrap(ErrMissingScheme)
	}
	if u.state == buildFresh {
		return u.slots[Built].val, nil
	}
	s, err := u.assemble(false)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	u.slots[Built] = slot{val: s, ok: true}
	u.state = buildFresh
	return s, nil
}

// String returns the built string or an empty string if the URI can not be built.
func (u *URI) String() string {
	s, _ := u.Build()
	return s
}

// Render returns the URI string rendered with the given options,
// or an empty string if the URI can not be built.
func (u *URI) Render(opts *RenderOptions) string {
	s, _ := u.render(opts)
	return s
}

// RenderTo writes the URI string rendered with the given options to w.
func (u *URI) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	s, err := u.render(opts)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(io.WriteString(w, s))
}

func (u *URI) render(opts *RenderOptions) (string, error) {
	if opts == nil || !opts.Canonical {
		return errtrace.Wrap2(u.Build())
	}
	if u == nil {
		return "", errtrace.Wrap(ErrMissingScheme)
	}
	return errtrace.Wrap2(u.assemble(true))
}

// assemble writes the components in canonical order:
//
//	scheme ":" ["//" [userinfo "@"] host [":" port]] path ["?" query] ["#" fragment]
func (u *URI) assemble(canonical bool) (string, error) {
	scheme := u.slots[Scheme]
	if !scheme.ok {
		return "", errtrace.Wrap(ErrMissingScheme)
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(scheme.val)
	sb.WriteByte(grammar.SchemeDelim)

	host := u.slots[Host]
	if host.ok {
		sb.WriteString(grammar.AuthorityPrefix)
		if ui := u.slots[UserInfo]; ui.ok {
			sb.WriteString(ui.val)
			sb.WriteByte(grammar.UserInfoDelim)
		}
		sb.WriteString(host.val)
		if port := u.slots[Port]; port.ok {
			sb.WriteByte(grammar.PortDelim)
			sb.WriteString(port.val)
		}
	}

	path := u.slots[Path]
	if canonical && host.ok && needsPathDelim(path, u.slots[Query].ok || u.slots[Fragment].ok) {
		sb.WriteByte(grammar.PathDelim)
	}
	if path.ok {
		sb.WriteString(path.val)
	}
	if q := u.slots[Query]; q.ok {
		sb.WriteByte(grammar.QueryDelim)
		sb.WriteString(q.val)
	}
	if f := u.slots[Fragment]; f.ok {
		sb.WriteByte(grammar.FragmentDelim)
		sb.WriteString(f.val)
	}
	return sb.String(), nil
}

func needsPathDelim(path slot, hasTail bool) bool {
	if path.val == "" {
		return hasTail
	}
	return path.val[0] != grammar.PathDelim
}

// Format implements [fmt.Formatter].
//
//	%s, %v  built string
//	%q      quoted built string
//	%+v     slot dump, see [URI.PrintDebug]
//	%#v     Go syntax of the underlying struct
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	case 'v':
		if f.Flag('+') {
			u.PrintDebug(f) //nolint:errcheck
			return
		}
		if !f.Flag('#') {
			fmt.Fprint(f, u.String())
			return
		}
		fallthrough
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}
