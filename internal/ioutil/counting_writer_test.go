package ioutil_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/testutil/iomock"
)

func TestCountingWriter_Sequence(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	cw.Write([]byte("http"))     //nolint:errcheck
	cw.WriteString("://")        //nolint:errcheck
	cw.Fprint("example", ".com") //nolint:errcheck
	cw.Fprintf(":%d", 8080)      //nolint:errcheck

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if want := "http://example.com:8080"; buf.String() != want {
		t.Errorf("buf.String() = %q, want %q", buf.String(), want)
	}
	if num != buf.Len() {
		t.Errorf("cw.Result() num = %d, want %d", num, buf.Len())
	}
	if cw.Count() != num {
		t.Errorf("cw.Count() = %d, want %d", cw.Count(), num)
	}
}

func TestCountingWriter_Call(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cw := ioutil.NewCountingWriter(buf)

	scheme := func(w io.Writer) (int, error) { return fmt.Fprint(w, "mailto:") }
	path := func(w io.Writer) (int, error) { return fmt.Fprint(w, "foo@bar.com") }

	num, err := cw.Call(scheme).Call(path).Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if num != 18 {
		t.Errorf("cw.Result() num = %d, want 18", num)
	}
	if want := "mailto:foo@bar.com"; buf.String() != want {
		t.Errorf("buf.String() = %q, want %q", buf.String(), want)
	}
}

func TestCountingWriter_ErrorStopsWrites(t *testing.T) {
	t.Parallel()

	errWrite := errors.New("write failed")

	ctrl := gomock.NewController(t)
	w := iomock.NewMockWriter(ctrl)
	gomock.InOrder(
		w.EXPECT().Write([]byte("https:")).Return(6, nil),
		w.EXPECT().Write([]byte("//")).Return(1, errWrite),
	)

	cw := ioutil.NewCountingWriter(w)
	cw.WriteString("https:") //nolint:errcheck
	cw.WriteString("//")     //nolint:errcheck

	called := false
	cw.Call(func(io.Writer) (int, error) {
		called = true
		return 0, nil
	})
	if n, err := cw.Fprint("host"); n != 0 || err == nil {
		t.Errorf("cw.Fprint() after failure = (%d, %v), want (0, error)", n, err)
	}

	num, err := cw.Result()
	if diff := cmp.Diff(err, errWrite, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("cw.Result() error = %v, want %v\ndiff (-got +want):\n%v", err, errWrite, diff)
	}
	if num != 7 {
		t.Errorf("cw.Result() num = %d, want 7", num)
	}
	if called {
		t.Error("cw.Call() ran after a write error")
	}
}

func TestGetCountingWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cw := ioutil.GetCountingWriter(&buf)
	cw.WriteString("abc") //nolint:errcheck
	if cw.Count() != 3 {
		t.Errorf("cw.Count() = %d, want 3", cw.Count())
	}
	ioutil.FreeCountingWriter(cw)

	cw = ioutil.GetCountingWriter(&buf)
	defer ioutil.FreeCountingWriter(cw)
	if cw.Count() != 0 {
		t.Errorf("pooled cw.Count() = %d, want 0", cw.Count())
	}
}
