package uri

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// Parse decomposes the input s (string or []byte) into a [URI].
//
// The input is scanned once, left to right; characters are not validated.
// Parse returns [ErrMalformedInput] if s contains no ':' or the scheme before it is empty.
// Any other input yields a URI whose missing trailing components are absent.
// The returned URI is already built.
func Parse[T ~string | ~[]byte](s T) (*URI, error) {
	sc := scanner{
		src: string(s),
		uri: New(),
		sm:  grammar.NewScanMachine(),
	}
	if err := sc.run(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if _, err := sc.uri.Build(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return sc.uri, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse[T ~string | ~[]byte](s T) *URI {
	return util.Must2(Parse(s))
}

type scanner struct {
	src string
	pos int
	uri *URI
	sm  *stateless.StateMachine
}

func (sc *scanner) run() error {
	for {
		st, _ := sc.sm.MustState().(grammar.State)
		if st == grammar.StateDone {
			return nil
		}

		trg, err := sc.step(st)
		if err != nil {
			return errtrace.Wrap(err)
		}
		if err := sc.sm.Fire(trg); err != nil {
			return errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrUnexpectState, err))
		}
	}
}

// step scans the component of state st and returns the trigger
// that leads to the next component.
func (sc *scanner) step(st grammar.State) (grammar.Trigger, error) {
	switch st {
	case grammar.StateScheme:
		i := strings.IndexByte(sc.src, grammar.SchemeDelim)
		if i < 0 {
			return 0, errtrace.Wrap(grammar.NewMalformedInputErr("missing scheme delimiter %q", grammar.SchemeDelim))
		}
		if i == 0 {
			return 0, errtrace.Wrap(grammar.NewMalformedInputErr("empty scheme"))
		}
		sc.uri.Set(Scheme, sc.src[:i])
		sc.pos = i + 1
		if strings.HasPrefix(sc.src[sc.pos:], grammar.AuthorityPrefix) {
			sc.pos += len(grammar.AuthorityPrefix)
			return grammar.ToAuthority, nil
		}
		return grammar.ToPath, nil

	case grammar.StateAuthority:
		// userinfo is present only if '@' comes before the host delimiters
		if i := sc.peekUntil("@:/"); i < len(sc.src) && sc.src[i] == grammar.UserInfoDelim {
			return grammar.ToUserInfo, nil
		}
		return grammar.ToHost, nil

	case grammar.StateUserInfo:
		sc.uri.Set(UserInfo, sc.scan("@"))
		sc.pos++
		return grammar.ToHost, nil

	case grammar.StateHost:
		sc.uri.Set(Host, sc.scan(":/"))
		switch {
		case sc.eof():
			return grammar.ToDone, nil
		case sc.at(grammar.PortDelim):
			sc.pos++
			return grammar.ToPort, nil
		default:
			return grammar.ToPath, nil
		}

	case grammar.StatePort:
		sc.uri.Set(Port, sc.scan("/"))
		if sc.eof() {
			return grammar.ToDone, nil
		}
		return grammar.ToPath, nil

	case grammar.StatePath:
		sc.uri.Set(Path, sc.scan("?#"))
		return sc.tail()

	case grammar.StateQuery:
		sc.uri.Set(Query, sc.scan("#"))
		return sc.tail()

	case grammar.StateFragment:
		sc.uri.Set(Fragment, sc.src[sc.pos:])
		sc.pos = len(sc.src)
		return grammar.ToDone, nil

	default:
		return 0, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrUnexpectState, st.String()))
	}
}

// tail consumes the query or fragment marker at the cursor.
func (sc *scanner) tail() (grammar.Trigger, error) {
	switch {
	case sc.eof():
		return grammar.ToDone, nil
	case sc.at(grammar.QueryDelim):
		sc.pos++
		return grammar.ToQuery, nil
	case sc.at(grammar.FragmentDelim):
		sc.pos++
		return grammar.ToFragment, nil
	default:
		return 0, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrUnexpectState,
			"unexpected %q at %d", sc.src[sc.pos], sc.pos))
	}
}

// scan advances the cursor to the first byte from delims or to the end of input
// and returns the skipped part.
func (sc *scanner) scan(delims string) string {
	start := sc.pos
	sc.pos = sc.peekUntil(delims)
	return sc.src[start:sc.pos]
}

// peekUntil returns the position of the first byte from delims at or after the cursor,
// or the input length. The cursor is left where it was.
func (sc *scanner) peekUntil(delims string) int {
	if i := strings.IndexAny(sc.src[sc.pos:], delims); i >= 0 {
		return sc.pos + i
	}
	return len(sc.src)
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.src) }

func (sc *scanner) at(c byte) bool { return sc.pos < len(sc.src) && sc.src[sc.pos] == c }
