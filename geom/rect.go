package geom

import (
	"strconv"
)

// Quadrant identifies one of the four children of a split cell.
// The order is the child order of a node and the order of grid traversal.
type Quadrant uint8

const (
	LeftTop Quadrant = iota
	LeftBottom
	RightTop
	RightBottom
)

// Quadrants lists all quadrants in traversal order.
var Quadrants = [4]Quadrant{LeftTop, LeftBottom, RightTop, RightBottom}

func (q Quadrant) String() string {
	switch q {
	case LeftTop:
		return "left-top"
	case LeftBottom:
		return "left-bottom"
	case RightTop:
		return "right-top"
	case RightBottom:
		return "right-bottom"
	default:
		return "quadrant(" + strconv.Itoa(int(q)) + ")"
	}
}

// Box is the extent of an object.
type Box struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Intersects reports whether b and o share at least one point. Touching edges count.
func (b Box) Intersects(o Box) bool {
	return b.Left <= o.Right && b.Right >= o.Left && b.Top <= o.Bottom && b.Bottom >= o.Top
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Zero or negative sizes are not rejected.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect returns the rectangle at (x, y) with the given size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }
func (r Rect) MidX() float64   { return r.X + r.Width/2 }
func (r Rect) MidY() float64   { return r.Y + r.Height/2 }

// Box returns the edges of r.
func (r Rect) Box() Box {
	return Box{Left: r.Left(), Right: r.Right(), Top: r.Top(), Bottom: r.Bottom()}
}

func (r Rect) TopLeft() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width / 2, Height: r.Height / 2}
}

func (r Rect) BottomLeft() Rect {
	return Rect{X: r.X, Y: r.MidY(), Width: r.Width / 2, Height: r.Height / 2}
}

func (r Rect) TopRight() Rect {
	return Rect{X: r.MidX(), Y: r.Y, Width: r.Width / 2, Height: r.Height / 2}
}

func (r Rect) BottomRight() Rect {
	return Rect{X: r.MidX(), Y: r.MidY(), Width: r.Width / 2, Height: r.Height / 2}
}

// Quadrant returns the sub-rectangle for q.
func (r Rect) Quadrant(q Quadrant) Rect {
	switch q {
	case LeftTop:
		return r.TopLeft()
	case LeftBottom:
		return r.BottomLeft()
	case RightTop:
		return r.TopRight()
	default:
		return r.BottomRight()
	}
}

// Membership reports, per quadrant, whether an object with extent b belongs
// to it. Both comparisons against a midline are inclusive, so an object that
// touches or straddles a midline belongs to the quadrants on both sides.
func (r Rect) Membership(b Box) [4]bool {
	midX, midY := r.MidX(), r.MidY()

	isLeft := b.Left <= midX
	isRight := b.Right >= midX
	isTop := b.Top <= midY
	isBottom := b.Bottom >= midY

	return [4]bool{
		LeftTop:     isLeft && isTop,
		LeftBottom:  isLeft && isBottom,
		RightTop:    isRight && isTop,
		RightBottom: isRight && isBottom,
	}
}

// Excludes reports whether b lies entirely outside r.
// Partial overlap is not excluded.
func (r Rect) Excludes(b Box) bool {
	return b.Top > r.Bottom() ||
		b.Bottom < r.Top() ||
		b.Left > r.Right() ||
		b.Right < r.Left()
}

func (r Rect) String() string {
	return "[" + fmtFloat(r.X) + "," + fmtFloat(r.Y) + " " + fmtFloat(r.Width) + "x" + fmtFloat(r.Height) + "]"
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
