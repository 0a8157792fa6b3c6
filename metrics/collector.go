package metrics

import (
	"sync/atomic"
	"time"
)

type GameMetric struct {
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
	RejectedMoves int    // Moves refused by the session
	Winner        string // Color name, "" if the game was abandoned
	RedSteps      int
	BlueSteps     int
}

type Collector interface {
	Start()
	AddMove()
	AddRejected()
	Complete(winner string, redSteps, blueSteps int) GameMetric
}

type collector struct {
	startTime time.Time
	moves     atomic.Int32
	rejected  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddMove() {
	m.moves.Add(1)
}

func (m *collector) AddRejected() {
	m.rejected.Add(1)
}

func (m *collector) Complete(winner string, redSteps, blueSteps int) GameMetric {
	end := time.Now()
	return GameMetric{
		StartTime:     m.startTime,
		EndTime:       end,
		Duration:      end.Sub(m.startTime),
		TotalMoves:    int(m.moves.Load()),
		RejectedMoves: int(m.rejected.Load()),
		Winner:        winner,
		RedSteps:      redSteps,
		BlueSteps:     blueSteps,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()       {}
func (m *dummyCollector) AddMove()     {}
func (m *dummyCollector) AddRejected() {}
func (m *dummyCollector) Complete(winner string, redSteps, blueSteps int) GameMetric {
	return GameMetric{Winner: winner, RedSteps: redSteps, BlueSteps: blueSteps}
}
