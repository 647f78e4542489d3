package game

const (
	left  = -1
	right = 1
)

// Cycler tracks the seat whose turn it is and the direction of play.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

// Peek returns the seat the given number of steps away, without moving.
func (c *Cycler) Peek(steps int) int {
	if c.size == 0 {
		return 0
	}
	offset := (c.direction * steps) % c.size
	return (c.current + offset + c.size) % c.size
}

func (c *Cycler) Next() int {
	return c.Advance(1)
}

func (c *Cycler) Advance(steps int) int {
	c.current = c.Peek(steps)
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

func (c *Cycler) Reversed() bool {
	return c.direction == left
}
