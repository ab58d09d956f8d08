package modes

import "fmt"

type Mode struct {
	W, H         int
	Format       uint32
	RefreshRate  int
	BitsPerPixel int
	FormatName   string
}

func (m Mode) String() string {
	return fmt.Sprintf("%d x %d @ %d bpp (%s)", m.W, m.H, m.BitsPerPixel, m.FormatName)
}

type Source interface {
	NumDisplayModes(display int) (int, error)
	DisplayMode(display, index int) (Mode, error)
}

// Table holds the display modes enumerated at startup and the index of the
// one last applied.
type Table struct {
	modes   []Mode
	current int
}

func NewTable() *Table {
	return &Table{}
}

// Populate enumerates the modes of display. Only a failure to count them is
// an error; a mode that can't be read is reported to skip and left out.
func (t *Table) Populate(src Source, display int, skip func(index int, err error)) error {
	count, err := src.NumDisplayModes(display)
	if err != nil {
		return fmt.Errorf("Failed to get the number of display modes: %w", err)
	}

	modes := make([]Mode, 0, count)
	for i := 0; i < count; i++ {
		mode, err := src.DisplayMode(display, i)
		if err != nil {
			if skip != nil {
				skip(i, err)
			}
			continue
		}
		modes = append(modes, mode)
	}
	t.modes = modes
	t.current = 0
	return nil
}

// Cycle advances to the next mode, wrapping around, and hands it to apply.
// It does nothing when no mode was enumerated.
func (t *Table) Cycle(apply func(Mode) error) error {
	if len(t.modes) == 0 {
		return nil
	}
	t.current = (t.current + 1) % len(t.modes)
	return apply(t.modes[t.current])
}

func (t *Table) Current() (Mode, bool) {
	if len(t.modes) == 0 {
		return Mode{}, false
	}
	return t.modes[t.current], true
}

func (t *Table) Index() int {
	return t.current
}

func (t *Table) Len() int {
	return len(t.modes)
}

func (t *Table) Modes() []Mode {
	return append([]Mode(nil), t.modes...)
}
