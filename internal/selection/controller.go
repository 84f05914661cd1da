package selection

import (
	"slices"

	"github.com/five82/gallery/internal/picsum"
)

// Direction is a relative navigation step.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// Fallback decides what happens when the selected ID disappears from a new list.
type Fallback int

const (
	// FallbackFirst reselects the first record, or none when the list is empty.
	FallbackFirst Fallback = iota
	// FallbackNone clears the selection until the user picks a record.
	FallbackNone
)

// Policy configures how Replace treats a new list.
type Policy struct {
	Fallback Fallback
	// ResetOnReplace selects the first record whenever the ID sequence of the
	// new list differs from the previous one.
	ResetOnReplace bool
}

// Phase names the controller's state machine states.
type Phase int

const (
	Uninitialized Phase = iota
	Empty
	Selected
	// Cleared is a non-empty list with nothing selected, reachable only
	// through FallbackNone.
	Cleared
)

func (p Phase) String() string {
	switch p {
	case Empty:
		return "empty"
	case Selected:
		return "selected"
	case Cleared:
		return "cleared"
	default:
		return "uninitialized"
	}
}

// Controller tracks which image is selected. It is not safe for concurrent
// use; the UI drives it from the Bubble Tea update loop only.
type Controller struct {
	policy     Policy
	images     []picsum.Image
	loaded     bool
	selectedID string
	has        bool

	// initialized is set once the first-record rule has fired.
	initialized bool
}

// New returns a controller with no images and no selection.
func New(policy Policy) *Controller {
	return &Controller{policy: policy}
}

// Initialize adopts images as the current list and, the first time a
// non-empty list arrives with nothing selected, selects its first record. A
// selection still present in images is never overridden; one that is missing
// is resolved by the fallback policy.
func (c *Controller) Initialize(images []picsum.Image) {
	c.adopt(images)
	if !c.has && !c.initialized && len(images) > 0 {
		c.selectFirst(images)
	}
}

// Replace adopts a freshly fetched list. With ResetOnReplace, a list whose ID
// sequence changed selects its first record; otherwise it behaves like
// Initialize.
func (c *Controller) Replace(images []picsum.Image) {
	changed := c.loaded && !slices.Equal(picsum.IDs(c.images), picsum.IDs(images))
	if c.policy.ResetOnReplace && changed && len(images) > 0 {
		c.selectFirst(images)
	}
	c.Initialize(images)
}

// adopt installs images and keeps the selection pointing into them.
func (c *Controller) adopt(images []picsum.Image) {
	c.images = images
	c.loaded = true
	if !c.has || indexOf(images, c.selectedID) >= 0 {
		return
	}

	switch {
	case len(images) == 0:
		c.clear()
		if c.policy.Fallback == FallbackFirst {
			c.initialized = false
		}
	case c.policy.Fallback == FallbackNone:
		c.clear()
	default:
		c.selectFirst(images)
	}
}

// Select makes image the current selection. The image is expected to be a
// member of the current list.
func (c *Controller) Select(image picsum.Image) {
	c.selectedID = image.ID
	c.has = true
}

// Navigate moves the selection one step in dir, wrapping at both ends. It is a
// no-op when nothing is selected or the list is empty. A selected ID that is
// missing from the list falls back to the first record.
func (c *Controller) Navigate(dir Direction) {
	n := len(c.images)
	if !c.has || n == 0 {
		return
	}
	i := indexOf(c.images, c.selectedID)
	if i < 0 {
		c.selectedID = c.images[0].ID
		return
	}

	switch dir {
	case Previous:
		if i > 0 {
			i--
		} else {
			i = n - 1
		}
	case Next:
		if i < n-1 {
			i++
		} else {
			i = 0
		}
	}
	c.selectedID = c.images[i].ID
}

// SelectIndex selects the record at i in the current list. Out of range is a
// no-op.
func (c *Controller) SelectIndex(i int) {
	if i < 0 || i >= len(c.images) {
		return
	}
	c.Select(c.images[i])
}

// Reset drops the selection and the list, returning to Uninitialized.
func (c *Controller) Reset() {
	c.clear()
	c.images = nil
	c.loaded = false
	c.initialized = false
}

// Selection returns the selected record, or false when nothing is selected
// or the selected ID is not in the current list.
func (c *Controller) Selection() (picsum.Image, bool) {
	if !c.has {
		return picsum.Image{}, false
	}
	i := indexOf(c.images, c.selectedID)
	if i < 0 {
		return picsum.Image{}, false
	}
	return c.images[i], true
}

// SelectedID returns the selected ID even if it is not in the current list.
func (c *Controller) SelectedID() (string, bool) {
	return c.selectedID, c.has
}

// Index returns the position of the selection in the current list, or -1.
func (c *Controller) Index() int {
	if !c.has {
		return -1
	}
	return indexOf(c.images, c.selectedID)
}

// Images returns the current list.
func (c *Controller) Images() []picsum.Image {
	return c.images
}

// Phase reports the state machine state. A selected ID outside the current
// list reports Cleared.
func (c *Controller) Phase() Phase {
	switch {
	case c.has && indexOf(c.images, c.selectedID) >= 0:
		return Selected
	case c.loaded && len(c.images) == 0:
		return Empty
	case c.loaded:
		return Cleared
	default:
		return Uninitialized
	}
}

func (c *Controller) selectFirst(images []picsum.Image) {
	c.selectedID = images[0].ID
	c.has = true
	c.initialized = true
}

func (c *Controller) clear() {
	c.selectedID = ""
	c.has = false
}

func indexOf(images []picsum.Image, id string) int {
	for i, img := range images {
		if img.ID == id {
			return i
		}
	}
	return -1
}
