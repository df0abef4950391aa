// Package sim implements a scripted 4-wire touch panel for tests and
// the host simulator.
//
// Time advances by one tick on every ConfigureDetect, which the
// acquisition state machine calls exactly once per tick.
package sim

// Step is a segment of a touch script.
type Step struct {
	Ticks   int
	Contact bool
	// X and Y are the raw analog readings while in contact.
	X, Y uint16
}

// Touch returns a step holding the panel at a raw position.
func Touch(x, y uint16, ticks int) Step {
	return Step{Ticks: ticks, Contact: true, X: x, Y: y}
}

// Lift returns a step with the panel released.
func Lift(ticks int) Step {
	return Step{Ticks: ticks}
}

type axis uint8

const (
	axisNone axis = iota
	axisX
	axisY
)

// Panel replays a script of steps. After the script ends the panel
// stays released.
type Panel struct {
	script []Step
	// Jitter is added to and subtracted from readings on alternating
	// samples.
	Jitter uint16

	tick  int
	step  int
	start int
	axis  axis
	reads int

	// Configured counts the configuration calls per mode.
	Configured struct {
		X, Y, Detect int
	}
}

// New returns a panel replaying steps.
func New(steps ...Step) *Panel {
	return &Panel{script: steps, tick: -1}
}

// Append extends the script.
func (p *Panel) Append(steps ...Step) {
	p.script = append(p.script, steps...)
}

// Tick returns the current tick number, starting at zero.
func (p *Panel) Tick() int {
	return p.tick
}

// Done reports whether the script has been fully replayed.
func (p *Panel) Done() bool {
	return p.current() == nil
}

// Len returns the total number of ticks in the script.
func (p *Panel) Len() int {
	n := 0
	for _, s := range p.script {
		n += s.Ticks
	}
	return n
}

func (p *Panel) current() *Step {
	for p.step < len(p.script) {
		s := &p.script[p.step]
		if p.tick < p.start+s.Ticks {
			return s
		}
		p.start += s.Ticks
		p.step++
	}
	return nil
}

func (p *Panel) Contact() bool {
	if p.axis != axisNone {
		// The sense line is not connected outside detect mode.
		return false
	}
	s := p.current()
	return s != nil && s.Contact
}

func (p *Panel) ReadChannel() uint16 {
	s := p.current()
	if s == nil || !s.Contact {
		return 0
	}
	var v uint16
	switch p.axis {
	case axisX:
		v = s.X
	case axisY:
		v = s.Y
	default:
		return 0
	}
	p.reads++
	if p.Jitter > 0 {
		if p.reads%2 == 0 {
			v += p.Jitter
		} else if v >= p.Jitter {
			v -= p.Jitter
		}
	}
	return v
}

func (p *Panel) ConfigureX() {
	p.Configured.X++
	p.axis = axisX
}

func (p *Panel) ConfigureY() {
	p.Configured.Y++
	p.axis = axisY
}

func (p *Panel) ConfigureDetect() {
	p.Configured.Detect++
	p.axis = axisNone
	p.tick++
}
