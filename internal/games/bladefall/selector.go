package bladefall

// Squeezer yields raw random words. *random.Random implements it.
type Squeezer interface {
	Squeeze() uint64
}

// shapeForDraw maps the low three bits of a draw onto a shape. 0 and 7 select
// nothing, which also keeps the O piece out of play.
func shapeForDraw(v uint64) (Shape, bool) {
	switch uint8(v) % 8 {
	case 1:
		return ShapeI, true
	case 2:
		return ShapeJ, true
	case 3:
		return ShapeL, true
	case 4:
		return ShapeT, true
	case 5:
		return ShapeS, true
	case 6:
		return ShapeZ, true
	default:
		return 0, false
	}
}

// NextShape draws the shape that follows current. Only the first draw is
// compared against current, so repeats become less likely but stay possible.
// Empty draws are retried until a shape comes up.
func NextShape(rng Squeezer, current Shape) Shape {
	compare := true
	for {
		next, ok := shapeForDraw(rng.Squeeze())
		if compare {
			compare = false
			if ok && next == current {
				continue
			}
		}
		if ok {
			return next
		}
	}
}
