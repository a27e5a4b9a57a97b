package tui

// Dismissals tracks habits hidden from the quick check list. The set lives
// only for the current session; a relaunch shows every habit again.
type Dismissals struct {
	names map[string]struct{}
}

func NewDismissals() *Dismissals {
	return &Dismissals{names: make(map[string]struct{})}
}

func (d *Dismissals) Dismiss(name string) {
	d.names[name] = struct{}{}
}

func (d *Dismissals) Dismissed(name string) bool {
	_, ok := d.names[name]
	return ok
}

func (d *Dismissals) Reset() {
	d.names = make(map[string]struct{})
}
