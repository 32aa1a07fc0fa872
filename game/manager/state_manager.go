package manager

import (
	"log"

	"arcade-snake/game/types"
)

// GameStats is a snapshot of the session counters
type GameStats struct {
	Ticks         uint64
	FoodEaten     int
	Resets        map[types.CollisionType]int
	BestLength    int
	LengthHistory []int // length reached in each finished round
}

// StateManager keeps in-memory statistics for the running session.
// Nothing is written to disk.
type StateManager struct {
	session       string
	ticks         uint64
	foodEaten     int
	resets        map[types.CollisionType]int
	bestLength    int
	roundLength   int
	lengthHistory []int
}

func NewStateManager(session string) *StateManager {
	return &StateManager{
		session:       session,
		resets:        make(map[types.CollisionType]int),
		bestLength:    1,
		roundLength:   1,
		lengthHistory: make([]int, 0),
	}
}

// OnTick folds a tick report into the session counters
func (sm *StateManager) OnTick(r types.TickReport) {
	sm.ticks = r.Tick
	if r.Ate {
		sm.foodEaten++
		// the body catches up one tick later, count the length it will reach
		if r.Length > sm.roundLength {
			sm.roundLength = r.Length
		}
	}
	if sm.roundLength > sm.bestLength {
		sm.bestLength = sm.roundLength
	}

	if r.Collision != types.NoCollision {
		sm.resets[r.Collision]++
		sm.lengthHistory = append(sm.lengthHistory, sm.roundLength)
		log.Printf("session %s: round over at tick %d, cause=%s length=%d best=%d",
			sm.session, r.Tick, r.Collision, sm.roundLength, sm.bestLength)
		sm.roundLength = 1
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.bestLength
}

func (sm *StateManager) GetScoreHistory() []int {
	return sm.lengthHistory
}

// Stats returns a copy of the current counters
func (sm *StateManager) Stats() GameStats {
	resets := make(map[types.CollisionType]int, len(sm.resets))
	for k, v := range sm.resets {
		resets[k] = v
	}
	history := make([]int, len(sm.lengthHistory))
	copy(history, sm.lengthHistory)

	return GameStats{
		Ticks:         sm.ticks,
		FoodEaten:     sm.foodEaten,
		Resets:        resets,
		BestLength:    sm.bestLength,
		LengthHistory: history,
	}
}
