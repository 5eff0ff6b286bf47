package sim

// Direction is the vertical steering intent: -1 down, 0 none, +1 up.
type Direction int

const (
	DirDown Direction = -1
	DirNone Direction = 0
	DirUp   Direction = 1
)

// Input is the pressed state of the two steering keys for one frame.
type Input struct {
	Up   bool
	Down bool
}

// Direction combines the keys. Holding both cancels out.
func (in Input) Direction() Direction {
	d := DirNone
	if in.Up {
		d++
	}
	if in.Down {
		d--
	}
	return d
}
