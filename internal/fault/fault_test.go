package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsMatchesCode(t *testing.T) {
	err := fmt.Errorf("throw: %w", Reject(Berserk, "You are too berserk!"))
	if !errors.Is(err, New(Berserk, "")) {
		t.Error("wrapped berserk rejection should match Berserk")
	}
	if errors.Is(err, New(Held, "")) {
		t.Error("berserk rejection should not match Held")
	}
}

func TestIsRejection(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"declined", New(Declined, "Ok, then."), true},
		{"wrapped", fmt.Errorf("x: %w", New(NoItem, "none")), true},
		{"internal", New(Internal, "bad table"), false},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsRejection(c.err); got != c.want {
				t.Errorf("IsRejection = %v; want %v", got, c.want)
			}
		})
	}
}

func TestMessageAndCode(t *testing.T) {
	err := fmt.Errorf("throw: %w", Reject(ItemGone, "You no longer have the %s.", "dagger"))
	if got := Message(err); got != "You no longer have the dagger." {
		t.Errorf("Message = %q", got)
	}
	if CodeOf(err) != ItemGone {
		t.Errorf("CodeOf = %v; want item_gone", CodeOf(err))
	}
	if CodeOf(errors.New("x")) != Internal {
		t.Error("foreign errors should report Internal")
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("disk")
	err := Wrap(Internal, "write", cause)
	if !errors.Is(err, cause) {
		t.Error("Wrap should expose its cause")
	}
}

func TestInvariantPanics(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(*Error)
		if !ok || e.Code != Internal {
			t.Fatalf("recovered %v; want *Error with Internal code", r)
		}
	}()
	Invariant("unknown launcher class %d", 9)
}
