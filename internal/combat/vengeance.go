package combat

type BuffState int

const (
	BuffInactive BuffState = iota
	BuffActive
)

func (s BuffState) String() string {
	switch s {
	case BuffActive:
		return "active"
	default:
		return "inactive"
	}
}

// Vengeance is the on/off damage buff armed by a critical hit. It is a
// single timer, not a stack: a new crit moves the start time forward.
type Vengeance struct {
	state BuffState
	since int
}

func (v Vengeance) State() BuffState { return v.state }
func (v Vengeance) Active() bool     { return v.state == BuffActive }

// Since returns the activation tick and whether the buff is active.
func (v Vengeance) Since() (int, bool) {
	return v.since, v.state == BuffActive
}

func (v *Vengeance) Arm(now int) {
	v.state = BuffActive
	v.since = now
}

func (v *Vengeance) Clear() {
	v.state = BuffInactive
	v.since = 0
}

// Observe applies the outcome of a resolved attack: a crit (re)arms the
// buff, a normal hit clears it once ExpiryWindow has elapsed.
func (v *Vengeance) Observe(now int, crit bool, r Rules) {
	if crit {
		v.Arm(now)
		return
	}
	if v.state == BuffActive && now-v.since > r.ExpiryWindow {
		v.Clear()
	}
}

// Potent reports whether an attack at now gets the buff multiplier.
func (v Vengeance) Potent(now int, r Rules) bool {
	return v.state == BuffActive && now-v.since < r.PotencyWindow
}
