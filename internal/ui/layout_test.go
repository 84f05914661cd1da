package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/gallery/internal/selection"
)

func TestComputeLayout_Panes(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		listWidth     int
		listRows      int
		imageRows     int
	}{
		{"standard", 100, 30, 40, 25, 21},
		{"wide", 200, 40, 70, 35, 31},
		{"tiny", 10, 4, 4, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := computeLayout(tt.width, tt.height)
			if l.listWidth != tt.listWidth {
				t.Errorf("listWidth = %d, want %d", l.listWidth, tt.listWidth)
			}
			if l.listRows != tt.listRows {
				t.Errorf("listRows = %d, want %d", l.listRows, tt.listRows)
			}
			if l.imageRows != tt.imageRows {
				t.Errorf("imageRows = %d, want %d", l.imageRows, tt.imageRows)
			}
			if l.previewX+l.previewWidth != max(tt.width, l.listWidth+3) {
				t.Errorf("panes cover %d columns, want %d", l.previewX+l.previewWidth, tt.width)
			}
		})
	}
}

func TestLayout_ListRowAt(t *testing.T) {
	l := computeLayout(100, 30)

	tests := []struct {
		name   string
		x, y   int
		row    int
		wantOK bool
	}{
		{"first row", 5, 3, 0, true},
		{"third row", 5, 5, 2, true},
		{"top border", 5, 2, 0, false},
		{"left border", 0, 4, 0, false},
		{"preview pane", 50, 4, 0, false},
		{"bottom border", 5, 3 + l.listRows, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := l.listRowAt(tt.x, tt.y)
			if ok != tt.wantOK || (ok && row != tt.row) {
				t.Fatalf("listRowAt(%d,%d) = %d,%v want %d,%v", tt.x, tt.y, row, ok, tt.row, tt.wantOK)
			}
		})
	}
}

func TestLayout_ControlAt(t *testing.T) {
	l := computeLayout(100, 30)
	if l.controls != controlPrev+controlGap+controlHint+controlGap+controlNext {
		t.Fatalf("controls = %q, want the full controls line", l.controls)
	}
	if l.controlsY != 27 {
		t.Fatalf("controlsY = %d, want 27", l.controlsY)
	}

	if dir, ok := l.controlAt(l.prevStart, l.controlsY); !ok || dir != selection.Previous {
		t.Fatalf("controlAt(prevStart) = %v,%v want Previous", dir, ok)
	}
	if dir, ok := l.controlAt(l.nextEnd-1, l.controlsY); !ok || dir != selection.Next {
		t.Fatalf("controlAt(nextEnd-1) = %v,%v want Next", dir, ok)
	}
	if _, ok := l.controlAt(l.prevEnd+2, l.controlsY); ok {
		t.Fatalf("controlAt(hint) matched a control")
	}
	if _, ok := l.controlAt(l.prevStart, l.controlsY-1); ok {
		t.Fatalf("controlAt(other row) matched a control")
	}
}

func TestControlsText_DropsHintWhenNarrow(t *testing.T) {
	got := controlsText(20)
	if got != controlPrev+controlGap+controlNext {
		t.Fatalf("controlsText(20) = %q", got)
	}
	if ansi.StringWidth(got) > 20 {
		t.Fatalf("controlsText(20) is %d wide", ansi.StringWidth(got))
	}
}
