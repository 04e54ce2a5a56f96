package uri

import (
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/ioutil"
)

// Print writes the built string to w without a trailing newline.
func (u *URI) Print(w io.Writer) (int, error) {
	return errtrace.Wrap2(u.RenderTo(w, nil))
}

// PrintDebug writes one line per slot in [Component] order, the build cache included:
// the slot index, then " - " and the value if the slot is present.
//
// The cache is written as stored, it is not rebuilt.
func (u *URI) PrintDebug(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i := range numSlots {
		cw.WriteString(strconv.Itoa(i))
		if v, ok := u.Get(Component(i)); ok {
			cw.Fprint(" - ", v)
		}
		cw.WriteString("\n")
	}
	return errtrace.Wrap2(cw.Result())
}
