// Package palette cycles through a fixed list of background colors.
package palette

// Colors are the css colors of the palette, in order.
var Colors = []string{"red", "green", "blue", "orange", "purple"}

// Palette points to the current color.  The zero value points to the first color.
// It is not safe for concurrent use; it should only be used on the ui goroutine.
type Palette struct {
	index int
}

// Current is the color being pointed to.
func (p *Palette) Current() string {
	return Colors[p.index]
}

// Next advances to the following color, wrapping to the first after the last, and returns it.
func (p *Palette) Next() string {
	p.index++
	if p.index >= len(Colors) {
		p.index = 0
	}
	return p.Current()
}
