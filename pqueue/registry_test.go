package pqueue

import (
	"errors"
	"testing"

	runtimeerrors "github.com/HomunMage/homun-std/errors"
)

func TestRegistry_Basic(t *testing.T) {
	r := NewRegistry()

	h, err := r.New()
	if err != nil {
		t.Fatal(err)
	}
	if h == 0 {
		t.Fatal("expected non-zero handle")
	}

	if err := r.Push(h, 2, "b"); err != nil {
		t.Fatal(err)
	}
	if err := r.Push(h, 1, "a"); err != nil {
		t.Fatal(err)
	}

	n, err := r.QueueLen(h)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("QueueLen = %d, want 2", n)
	}

	e, ok, err := r.Pop(h)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || e.Priority != 1 || e.Item != "a" {
		t.Errorf("Pop = %+v, %v", e, ok)
	}

	if err := r.Release(h); err != nil {
		t.Fatal(err)
	}
	if r.Active() != 0 {
		t.Errorf("Active = %d, want 0", r.Active())
	}
}

func TestRegistry_HandleAliasing(t *testing.T) {
	r := NewRegistry()

	h1, err := r.New()
	if err != nil {
		t.Fatal(err)
	}
	h2 := h1 // a plain copy aliases the same instance

	if err := r.Push(h1, 7, "x"); err != nil {
		t.Fatal(err)
	}

	n, err := r.QueueLen(h2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("alias QueueLen = %d, want 1", n)
	}

	e, ok, err := r.Pop(h2)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || e.Priority != 7 || e.Item != "x" {
		t.Fatalf("alias Pop = %+v, %v", e, ok)
	}

	empty, err := r.IsEmpty(h1)
	if err != nil {
		t.Fatal(err)
	}
	if !empty {
		t.Error("mutation through alias not visible on original handle")
	}
}

func TestRegistry_EmptyPopIsNotAnError(t *testing.T) {
	r := NewRegistry()
	h, err := r.New()
	if err != nil {
		t.Fatal(err)
	}

	e, ok, err := r.Pop(h)
	if err != nil {
		t.Fatalf("empty pop should not error: %v", err)
	}
	if ok {
		t.Errorf("empty pop should be absent, got %+v", e)
	}
}

func TestRegistry_InvalidHandle(t *testing.T) {
	r := NewRegistry()

	assertInvalid := func(err error) {
		t.Helper()
		if err == nil {
			t.Fatal("expected invalid handle error")
		}
		var re *runtimeerrors.Error
		if !errors.As(err, &re) {
			t.Fatalf("error %T is not a runtime error", err)
		}
		if re.Kind != runtimeerrors.KindInvalidHandle {
			t.Errorf("Kind = %s, want %s", re.Kind, runtimeerrors.KindInvalidHandle)
		}
	}

	// Zero handle.
	_, err := r.Get(0)
	assertInvalid(err)

	// Never-allocated handle.
	_, err = r.Get(makeHandle(42, 0))
	assertInvalid(err)
}

func TestRegistry_UseAfterRelease(t *testing.T) {
	r := NewRegistry()

	h, err := r.New()
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Release(h); err != nil {
		t.Fatal(err)
	}

	if err := r.Push(h, 1, "late"); err == nil {
		t.Fatal("push through released handle should fail")
	}
	if err := r.Release(h); err == nil {
		t.Fatal("double release should fail")
	}
}

func TestRegistry_GenerationGuardsSlotReuse(t *testing.T) {
	r := NewRegistry()

	stale, err := r.New()
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Release(stale); err != nil {
		t.Fatal(err)
	}

	// The freed slot is reused by the next allocation.
	fresh, err := r.New()
	if err != nil {
		t.Fatal(err)
	}
	if fresh == stale {
		t.Fatal("reused slot must carry a new generation")
	}

	if err := r.Push(fresh, 1, "ok"); err != nil {
		t.Fatal(err)
	}
	// The stale handle addresses the same slot but must not reach the
	// new occupant.
	if err := r.Push(stale, 9, "ghost"); err == nil {
		t.Fatal("stale handle reached a recycled slot")
	}
	n, err := r.QueueLen(fresh)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("QueueLen = %d, want 1", n)
	}
}

func TestRegistry_IndependentInstances(t *testing.T) {
	r := NewRegistry()

	h1, err := r.New()
	if err != nil {
		t.Fatal(err)
	}
	h2, err := r.New()
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Push(h1, 1, "only-in-h1"); err != nil {
		t.Fatal(err)
	}

	empty, err := r.IsEmpty(h2)
	if err != nil {
		t.Fatal(err)
	}
	if !empty {
		t.Error("push into one instance leaked into another")
	}
	if r.Active() != 2 {
		t.Errorf("Active = %d, want 2", r.Active())
	}
}

func TestRegistry_Close(t *testing.T) {
	r := NewRegistry()
	h, err := r.New()
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := r.New(); err == nil {
		t.Error("New after Close should fail")
	}
	if _, err := r.Get(h); err == nil {
		t.Error("Get after Close should fail")
	}
	// Close is idempotent.
	if err := r.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestRegistry_SharedInstanceViaGet(t *testing.T) {
	r := NewRegistry()
	h, err := r.New()
	if err != nil {
		t.Fatal(err)
	}

	q1, err := r.Get(h)
	if err != nil {
		t.Fatal(err)
	}
	q2, err := r.Get(h)
	if err != nil {
		t.Fatal(err)
	}
	if q1 != q2 {
		t.Fatal("Get must resolve to one shared instance")
	}

	q1.Push(3, "via-q1")
	if q2.Len() != 1 {
		t.Error("mutation through one resolved queue not visible through the other")
	}
}
