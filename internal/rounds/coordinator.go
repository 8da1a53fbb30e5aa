// Package rounds coordinates the leaderless round advance. Every client runs
// the same countdown over the same snapshot, elects the lexicographically
// smallest connection id, and only that client requests the next round —
// with ranked fallbacks so a vanished leader does not strand the game.
package rounds

import (
	"slices"

	"flipseven/pkg/types"
)

const (
	// CountdownTicks is the shared round-summary countdown, in 1 Hz ticks.
	CountdownTicks = 5
	// GraceTicks is how much longer each successive fallback rank waits
	// before firing in the leader's place.
	GraceTicks = 2
)

type Transition int

const (
	None Transition = iota
	Entered
	Left
)

type Decision int

const (
	Idle Decision = iota
	CountingDown
	Fire
)

// Coordinator tracks the Running/RoundOver phase for one client. It is owned
// by the client loop and never touched concurrently; ticks are fed to it
// externally so tests drive time themselves.
type Coordinator struct {
	roundOver bool
	fired     bool
	remaining int
	rank      int
}

func New() *Coordinator { return &Coordinator{} }

// Observe folds one snapshot in. Entered is reported only on the false→true
// edge of the pending reset, so repeated identical RoundOver snapshots never
// restart the countdown; Left is the true→false edge and cancels it.
func (c *Coordinator) Observe(s *types.Snapshot, selfSID string) Transition {
	if s.PendingRoundReset {
		if c.roundOver {
			return None
		}
		c.roundOver = true
		c.fired = false
		c.rank = rank(s.Players, selfSID)
		if c.rank < 0 {
			// unseated observers watch the countdown but never fire
			c.fired = true
			c.remaining = CountdownTicks
		} else {
			c.remaining = CountdownTicks + c.rank*GraceTicks
		}
		return Entered
	}

	if c.roundOver {
		c.roundOver = false
		c.fired = false
		return Left
	}
	return None
}

// Tick consumes one countdown tick. Fire is returned at most once per
// RoundOver entry, and only when this client's deadline (countdown plus its
// rank's grace) has elapsed without the round resolving.
func (c *Coordinator) Tick() Decision {
	if !c.roundOver || c.fired {
		return Idle
	}
	c.remaining--
	if c.remaining <= 0 {
		c.fired = true
		return Fire
	}
	return CountingDown
}

// DisplayRemaining is the number of seconds to show on the shared countdown,
// which excludes this client's private grace allowance.
func (c *Coordinator) DisplayRemaining() int {
	if !c.roundOver {
		return 0
	}
	d := c.remaining - c.rank*GraceTicks
	if c.rank < 0 {
		d = c.remaining
	}
	if d < 0 {
		return 0
	}
	return d
}

// RoundOver reports whether the coordinator currently holds the round-over
// phase.
func (c *Coordinator) RoundOver() bool { return c.roundOver }

// Elect returns the connection id every client independently agrees on: the
// smallest sid under plain string ordering.
func Elect(players []types.Player) string {
	elected := ""
	for _, p := range players {
		if elected == "" || p.SID < elected {
			elected = p.SID
		}
	}
	return elected
}

// rank is this client's position in the sorted sid order: 0 for the elected
// leader, -1 when the sid holds no seat.
func rank(players []types.Player, selfSID string) int {
	sids := make([]string, 0, len(players))
	for _, p := range players {
		sids = append(sids, p.SID)
	}
	slices.Sort(sids)
	return slices.Index(sids, selfSID)
}
