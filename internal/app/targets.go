package app

import "fmt"

// Target is one generated icon file.
type Target struct {
	Size     int
	Maskable bool
}

// FileName is icon-<size>x<size>.png, with a -maskable suffix for maskable icons.
func (t Target) FileName() string {
	name := fmt.Sprintf("icon-%dx%d", t.Size, t.Size)
	if t.Maskable {
		name += "-maskable"
	}
	return name + ".png"
}

// Targets returns the fixed icon set in generation order.
func Targets() []Target {
	return []Target{
		{Size: 192},
		{Size: 192, Maskable: true},
		{Size: 512},
		{Size: 512, Maskable: true},
	}
}
