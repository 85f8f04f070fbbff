package tracker

import (
	"sync"

	"learninghub/internal/utils/clock"
)

// SimulatedPlayer воспроизведение по часам: позиция растет со скоростью speed
// от начальной до длительности видео.
type SimulatedPlayer struct {
	clock    clock.Clock
	duration float64
	speed    float64

	mu      sync.Mutex
	offset  float64
	started bool
	startAt float64
}

func NewSimulatedPlayer(clk clock.Clock, from, duration, speed float64) *SimulatedPlayer {
	if speed <= 0 {
		speed = 1
	}
	return &SimulatedPlayer{
		clock:    clk,
		duration: duration,
		speed:    speed,
		offset:   min(max(from, 0), duration),
	}
}

// Play начинает отсчет
func (p *SimulatedPlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return
	}
	p.started = true
	p.startAt = seconds(p.clock)
}

// Pause фиксирует текущую позицию
func (p *SimulatedPlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.offset = p.position()
	p.started = false
}

func (p *SimulatedPlayer) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position()
}

func (p *SimulatedPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started && p.position() < p.duration
}

func (p *SimulatedPlayer) Duration() float64 {
	return p.duration
}

func (p *SimulatedPlayer) position() float64 {
	if !p.started {
		return p.offset
	}
	elapsed := seconds(p.clock) - p.startAt
	return min(p.offset+elapsed*p.speed, p.duration)
}

func seconds(clk clock.Clock) float64 {
	return float64(clk.Now().UnixNano()) / 1e9
}
