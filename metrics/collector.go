package metrics

import (
	"sync/atomic"
	"time"
)

// SessionMetric summarizes a finished (or running) session.
type SessionMetric struct {
	StartTime  time.Time
	Duration   time.Duration
	Battles    int // Rounds resolved
	RoundsWon  int // Rounds won by the attacker
	Conquests  int
	Rejections int // Attacks refused by validation
	Completed  bool // Mission accomplished
}

type Collector interface {
	Start()
	AddBattle(attackerWon, conquered bool)
	AddRejection()
	SetCompleted(value bool)
	Complete() SessionMetric
}

type collector struct {
	startTime  time.Time
	battles    atomic.Int32
	roundsWon  atomic.Int32
	conquests  atomic.Int32
	rejections atomic.Int32
	completed  atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddBattle(attackerWon, conquered bool) {
	m.battles.Add(1)
	if attackerWon {
		m.roundsWon.Add(1)
	}
	if conquered {
		m.conquests.Add(1)
	}
}

func (m *collector) AddRejection() {
	m.rejections.Add(1)
}

func (m *collector) SetCompleted(value bool) {
	m.completed.Store(value)
}

func (m *collector) Complete() SessionMetric {
	return SessionMetric{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Battles:    int(m.battles.Load()),
		RoundsWon:  int(m.roundsWon.Load()),
		Conquests:  int(m.conquests.Load()),
		Rejections: int(m.rejections.Load()),
		Completed:  m.completed.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                                {}
func (m *dummyCollector) AddBattle(attackerWon, conquered bool) {}
func (m *dummyCollector) AddRejection()                         {}
func (m *dummyCollector) SetCompleted(value bool)               {}
func (m *dummyCollector) Complete() SessionMetric               { return SessionMetric{} }
