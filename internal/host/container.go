package host

import "image"

// Container is a rectangular region of the window that hosts mounted
// elements, typically drawing surfaces. Children are drawn in append order.
type Container struct {
	bounds   image.Rectangle
	children []any
}

func NewContainer(bounds image.Rectangle) *Container {
	return &Container{bounds: bounds}
}

// Size returns the client size of the region.
func (c *Container) Size() (int, int) {
	return c.bounds.Dx(), c.bounds.Dy()
}

func (c *Container) Bounds() image.Rectangle {
	return c.bounds
}

func (c *Container) SetBounds(r image.Rectangle) {
	c.bounds = r
}

func (c *Container) Append(child any) {
	c.children = append(c.children, child)
}

// Remove detaches child and reports whether it was mounted.
func (c *Container) Remove(child any) bool {
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns the mounted elements in draw order.
func (c *Container) Children() []any {
	return c.children
}
