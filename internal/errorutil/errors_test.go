package errorutil_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gouri/internal/errorutil"
)

type grammarErr string

func (e grammarErr) Error() string { return string(e) }

func (grammarErr) Grammar() bool { return true }

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	const sentinel errorutil.Error = "sentinel"
	cause := errors.New("cause")

	cases := []struct {
		name    string
		args    []any
		wantMsg string
		wantIs  []error
	}{
		{"no args", nil, "sentinel", []error{sentinel}},
		{"error", []any{cause}, "sentinel: cause", []error{sentinel, cause}},
		{"already wrapped", []any{fmt.Errorf("x: %w", sentinel)}, "x: sentinel", []error{sentinel}},
		{"message", []any{"oops"}, "sentinel: oops", []error{sentinel}},
		{"format", []any{"oops %d", 42}, "sentinel: oops 42", []error{sentinel}},
		{"unknown arg", []any{42}, "sentinel", []error{sentinel}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(sentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("errorutil.NewWrapperError(sentinel, %v).Error() = %q, want %q", c.args, got, c.wantMsg)
			}
			for _, want := range c.wantIs {
				if diff := cmp.Diff(err, want, cmpopts.EquateErrors()); diff != "" {
					t.Errorf("errorutil.NewWrapperError(sentinel, %v) does not match %v: diff (-got +want):\n%v", c.args, want, diff)
				}
			}
		})
	}
}

func TestIsGrammarErr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("plain"), false},
		{"grammar", grammarErr("bad"), true},
		{"wrapped grammar", errorutil.NewInvalidArgumentError(grammarErr("bad")), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := errorutil.IsGrammarErr(c.err); got != c.want {
				t.Errorf("errorutil.IsGrammarErr(%v) = %v, want %v", c.err, got, c.want)
			}
		})
	}
}

func TestIsInvalidArgumentErr(t *testing.T) {
	t.Parallel()

	if !errorutil.IsInvalidArgumentErr(errorutil.NewInvalidArgumentError("bad kind")) {
		t.Error("errorutil.IsInvalidArgumentErr(NewInvalidArgumentError(...)) = false, want true")
	}
	if errorutil.IsInvalidArgumentErr(errors.New("other")) {
		t.Error("errorutil.IsInvalidArgumentErr(errors.New(...)) = true, want false")
	}
}
