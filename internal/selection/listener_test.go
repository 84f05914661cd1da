package selection

import (
	"testing"
)

func TestListener_AttachDispatchRelease(t *testing.T) {
	l := NewListener()
	var seen []string
	release := l.Attach(func(key string) bool {
		seen = append(seen, key)
		return key == "x"
	})
	if l.Len() != 1 {
		t.Fatalf("Len = %d, want 1", l.Len())
	}

	if !l.Dispatch("x") {
		t.Fatalf("Dispatch(x) = false, want consumed")
	}
	if l.Dispatch("y") {
		t.Fatalf("Dispatch(y) = true, want not consumed")
	}

	release()
	release()
	if l.Len() != 0 {
		t.Fatalf("Len after release = %d, want 0", l.Len())
	}
	if l.Dispatch("x") {
		t.Fatalf("Dispatch after release reached a handler")
	}
	if len(seen) != 2 {
		t.Fatalf("handler saw %v, want two keys", seen)
	}
}

func TestListener_FirstConsumerWins(t *testing.T) {
	l := NewListener()
	var order []string
	l.Attach(func(string) bool { order = append(order, "first"); return true })
	l.Attach(func(string) bool { order = append(order, "second"); return true })

	l.Dispatch("k")
	if len(order) != 1 || order[0] != "first" {
		t.Fatalf("dispatch order = %v, want [first]", order)
	}
}

func TestListener_ZeroValueUsable(t *testing.T) {
	var l Listener
	release := l.Attach(func(string) bool { return true })
	if !l.Dispatch("a") {
		t.Fatalf("zero Listener did not dispatch")
	}
	release()
}

func TestBindKeys_ArrowsNavigate(t *testing.T) {
	c := New(Policy{})
	c.Initialize(records("A", "B", "C"))
	l := NewListener()
	release := c.BindKeys(l)

	if !l.Dispatch("right") {
		t.Fatalf("right not consumed")
	}
	if got := selectedID(t, c); got != "B" {
		t.Fatalf("after right = %q, want B", got)
	}
	l.Dispatch("left")
	l.Dispatch("left")
	if got := selectedID(t, c); got != "C" {
		t.Fatalf("after left,left = %q, want C", got)
	}
	if l.Dispatch("enter") {
		t.Fatalf("enter should not be consumed")
	}

	release()
	l.Dispatch("right")
	if got := selectedID(t, c); got != "C" {
		t.Fatalf("released binding still navigated to %q", got)
	}
}

func TestBindKeys_OnceAttachedNoDuplicateHandling(t *testing.T) {
	c := New(Policy{})
	c.Initialize(records("A", "B", "C"))
	l := NewListener()
	release := c.BindKeys(l)
	defer release()

	l.Dispatch("right")
	if got := selectedID(t, c); got != "B" {
		t.Fatalf("single right moved to %q, want B", got)
	}
}
