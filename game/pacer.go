package game

// Pacer spreads rate game ticks evenly over every base calls to Due. It is
// used by frontends whose own loop runs faster than the game.
type Pacer struct {
	rate  int
	base  int
	calls int
	ticks int
}

func NewPacer(rate, base int) *Pacer {
	return &Pacer{rate: rate, base: base}
}

// Due reports whether a game tick should run on this call
func (p *Pacer) Due() bool {
	p.calls++
	if p.calls*p.rate < (p.ticks+1)*p.base {
		return false
	}
	p.ticks++
	return true
}
