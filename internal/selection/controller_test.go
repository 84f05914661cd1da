package selection

import (
	"fmt"
	"testing"

	"github.com/five82/gallery/internal/picsum"
)

func records(ids ...string) []picsum.Image {
	out := make([]picsum.Image, len(ids))
	for i, id := range ids {
		out[i] = picsum.Image{ID: id, Author: "author " + id, DownloadURL: "https://picsum.photos/id/" + id + "/100/100"}
	}
	return out
}

func selectedID(t *testing.T, c *Controller) string {
	t.Helper()
	img, ok := c.Selection()
	if !ok {
		return ""
	}
	return img.ID
}

func TestInitialize_SelectsFirstOfNonEmptyList(t *testing.T) {
	for n := 1; n <= 5; n++ {
		c := New(Policy{})
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("img-%d", i)
		}
		c.Initialize(records(ids...))
		if got := selectedID(t, c); got != "img-0" {
			t.Fatalf("n=%d: selection = %q, want img-0", n, got)
		}
		if c.Phase() != Selected {
			t.Fatalf("n=%d: phase = %v, want selected", n, c.Phase())
		}
	}
}

func TestInitialize_EmptyListStaysNone(t *testing.T) {
	c := New(Policy{})
	if c.Phase() != Uninitialized {
		t.Fatalf("phase = %v, want uninitialized", c.Phase())
	}

	c.Initialize(nil)
	if _, ok := c.Selection(); ok {
		t.Fatalf("selection present after empty Initialize")
	}
	if c.Phase() != Empty {
		t.Fatalf("phase = %v, want empty", c.Phase())
	}

	c.Initialize([]picsum.Image{})
	if _, ok := c.SelectedID(); ok {
		t.Fatalf("selection present after second empty Initialize")
	}

	c.Initialize(records("A", "B"))
	if got := selectedID(t, c); got != "A" {
		t.Fatalf("selection = %q, want A once a non-empty list arrives", got)
	}
}

func TestInitialize_DoesNotOverrideSelection(t *testing.T) {
	c := New(Policy{})
	list := records("A", "B", "C")
	c.Initialize(list)
	c.Select(list[2])

	c.Initialize(list)
	c.Initialize(list)
	if got := selectedID(t, c); got != "C" {
		t.Fatalf("selection = %q, want C after repeated Initialize", got)
	}
}

func TestInitialize_NewListWithoutSelection(t *testing.T) {
	cases := []struct {
		name   string
		policy Policy
		want   string
		phase  Phase
	}{
		{"fallback first", Policy{}, "C", Selected},
		{"fallback none", Policy{Fallback: FallbackNone}, "", Cleared},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.policy)
			c.Initialize(records("A", "B"))
			c.Select(picsum.Image{ID: "B"})
			c.Initialize(records("C", "D"))

			if got := selectedID(t, c); got != tc.want {
				t.Fatalf("selection = %q, want %q", got, tc.want)
			}
			if c.Phase() != tc.phase {
				t.Fatalf("phase = %v, want %v", c.Phase(), tc.phase)
			}
			if id, ok := c.SelectedID(); ok && c.Index() < 0 {
				t.Fatalf("held ID %q is not in the list", id)
			}
		})
	}
}

func TestPhase_SelectedIDOutsideListIsCleared(t *testing.T) {
	c := New(Policy{})
	c.Initialize(records("A", "B"))
	c.Select(picsum.Image{ID: "zzz"})
	if c.Phase() != Cleared {
		t.Fatalf("phase = %v, want cleared", c.Phase())
	}
}

func TestNavigate_CycleProperty(t *testing.T) {
	for n := 2; n <= 6; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("%d", i)
		}
		list := records(ids...)
		for start := 0; start < n; start++ {
			for _, dir := range []Direction{Next, Previous} {
				c := New(Policy{})
				c.Initialize(list)
				c.SelectIndex(start)
				for step := 0; step < n; step++ {
					c.Navigate(dir)
				}
				if got := c.Index(); got != start {
					t.Fatalf("n=%d start=%d dir=%v: index after n steps = %d", n, start, dir, got)
				}
			}
		}
	}
}

func TestNavigate_WrapsAtBoundaries(t *testing.T) {
	list := records("A", "B", "C", "D")
	c := New(Policy{})
	c.Initialize(list)

	c.SelectIndex(3)
	c.Navigate(Next)
	if got := selectedID(t, c); got != "A" {
		t.Fatalf("next at last = %q, want A", got)
	}

	c.Navigate(Previous)
	if got := selectedID(t, c); got != "D" {
		t.Fatalf("previous at first = %q, want D", got)
	}
}

func TestSelect_ThenRead(t *testing.T) {
	list := records("A", "B", "C")
	c := New(Policy{})
	c.Initialize(list)
	for _, img := range list {
		c.Select(img)
		if got := selectedID(t, c); got != img.ID {
			t.Fatalf("selection = %q, want %q", got, img.ID)
		}
	}
}

func TestScenario_ThreeRecords(t *testing.T) {
	list := records("A", "B", "C")
	c := New(Policy{})
	c.Initialize(list)

	steps := []struct {
		name string
		do   func()
		want string
	}{
		{"initialize", func() {}, "A"},
		{"next", func() { c.Navigate(Next) }, "B"},
		{"next", func() { c.Navigate(Next) }, "C"},
		{"next wraps", func() { c.Navigate(Next) }, "A"},
		{"previous wraps", func() { c.Navigate(Previous) }, "C"},
		{"select B", func() { c.Select(list[1]) }, "B"},
	}
	for _, step := range steps {
		step.do()
		if got := selectedID(t, c); got != step.want {
			t.Fatalf("%s: selection = %q, want %q", step.name, got, step.want)
		}
	}
}

func TestScenario_EmptyListNavigateIsNoop(t *testing.T) {
	c := New(Policy{})
	c.Initialize(nil)
	c.Navigate(Next)
	c.Navigate(Previous)
	if _, ok := c.SelectedID(); ok {
		t.Fatalf("navigate on empty list produced a selection")
	}
	if c.Index() != -1 {
		t.Fatalf("Index = %d, want -1", c.Index())
	}
}

func TestScenario_NavigateBeforeInitializeIsNoop(t *testing.T) {
	c := New(Policy{})
	c.Navigate(Next)
	if c.Phase() != Uninitialized {
		t.Fatalf("phase = %v, want uninitialized", c.Phase())
	}
}

func TestScenario_SingleRecordSelfWraps(t *testing.T) {
	c := New(Policy{})
	c.Initialize(records("A"))
	c.Navigate(Next)
	if got := selectedID(t, c); got != "A" {
		t.Fatalf("next = %q, want A", got)
	}
	c.Navigate(Previous)
	if got := selectedID(t, c); got != "A" {
		t.Fatalf("previous = %q, want A", got)
	}
}

func TestNavigate_ComparesByID(t *testing.T) {
	c := New(Policy{})
	c.Initialize(records("A", "B", "C"))
	// A rebuilt record with the same ID but different fields still matches.
	c.Select(picsum.Image{ID: "B", Author: "someone else"})
	c.Navigate(Next)
	if got := selectedID(t, c); got != "C" {
		t.Fatalf("selection = %q, want C", got)
	}
}

func TestNavigate_MissingSelectionFallsBackToFirst(t *testing.T) {
	c := New(Policy{})
	c.Initialize(records("A", "B"))
	c.Select(picsum.Image{ID: "zzz"})
	if _, ok := c.Selection(); ok {
		t.Fatalf("Selection should report false for an ID outside the list")
	}
	c.Navigate(Next)
	if got := selectedID(t, c); got != "A" {
		t.Fatalf("selection = %q, want A", got)
	}
}

func TestReplace_Policies(t *testing.T) {
	cases := []struct {
		name   string
		policy Policy
		start  []picsum.Image
		pick   string
		next   []picsum.Image
		want   string
		phase  Phase
	}{
		{"same list keeps selection", Policy{}, records("A", "B", "C"), "B", records("A", "B", "C"), "B", Selected},
		{"reordered keeps selection", Policy{}, records("A", "B", "C"), "B", records("C", "B", "A"), "B", Selected},
		{"missing falls back to first", Policy{}, records("A", "B", "C"), "B", records("X", "Y"), "X", Selected},
		{"missing with fallback none", Policy{Fallback: FallbackNone}, records("A", "B", "C"), "B", records("X", "Y"), "", Cleared},
		{"empty clears", Policy{}, records("A", "B"), "B", nil, "", Empty},
		{"reset on replace", Policy{ResetOnReplace: true}, records("A", "B", "C"), "C", records("A", "B", "C", "D"), "A", Selected},
		{"reset ignores identical list", Policy{ResetOnReplace: true}, records("A", "B", "C"), "C", records("A", "B", "C"), "C", Selected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.policy)
			c.Replace(tc.start)
			c.Select(picsum.Image{ID: tc.pick})
			c.Replace(tc.next)
			if got := selectedID(t, c); got != tc.want {
				t.Fatalf("selection = %q, want %q", got, tc.want)
			}
			if c.Phase() != tc.phase {
				t.Fatalf("phase = %v, want %v", c.Phase(), tc.phase)
			}
		})
	}
}

func TestReplace_FallbackNoneStaysClearedAcrossTicks(t *testing.T) {
	c := New(Policy{Fallback: FallbackNone})
	c.Replace(records("A", "B"))
	c.Select(picsum.Image{ID: "B"})
	next := records("X", "Y")
	c.Replace(next)
	c.Replace(next)
	if _, ok := c.SelectedID(); ok {
		t.Fatalf("FallbackNone selection was restored by a repeated Replace")
	}
	c.Select(next[1])
	if got := selectedID(t, c); got != "Y" {
		t.Fatalf("selection = %q, want Y", got)
	}
}

func TestReplace_EmptyThenNonEmptyReselectsFirst(t *testing.T) {
	c := New(Policy{})
	c.Replace(records("A", "B"))
	c.Replace(nil)
	c.Replace(records("C", "D"))
	if got := selectedID(t, c); got != "C" {
		t.Fatalf("selection = %q, want C", got)
	}
}

func TestReset(t *testing.T) {
	c := New(Policy{})
	c.Initialize(records("A"))
	c.Reset()
	if c.Phase() != Uninitialized || c.Images() != nil {
		t.Fatalf("Reset left phase %v images %v", c.Phase(), c.Images())
	}
	c.Initialize(records("B"))
	if got := selectedID(t, c); got != "B" {
		t.Fatalf("selection after reset = %q, want B", got)
	}
}

func TestSelectIndex_OutOfRangeIsNoop(t *testing.T) {
	c := New(Policy{})
	c.Initialize(records("A", "B"))
	c.SelectIndex(5)
	c.SelectIndex(-1)
	if got := selectedID(t, c); got != "A" {
		t.Fatalf("selection = %q, want A", got)
	}
}

func TestStringers(t *testing.T) {
	if Next.String() != "next" || Previous.String() != "previous" {
		t.Fatalf("Direction strings = %q/%q", Next, Previous)
	}
	for phase, want := range map[Phase]string{Uninitialized: "uninitialized", Empty: "empty", Selected: "selected", Cleared: "cleared"} {
		if phase.String() != want {
			t.Fatalf("Phase(%d).String() = %q, want %q", phase, phase.String(), want)
		}
	}
}
