// Package tracker периодическая отправка позиции воспроизведения.
package tracker

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

const DefaultInterval = 5 * time.Second

// Player источник позиции воспроизведения
type Player interface {
	Position() float64
	Playing() bool
}

// PushFunc отправляет позицию. Не должна блокироваться надолго.
type PushFunc func(ctx context.Context, watchedSeconds float64)

// Tracker пока плеер воспроизводит, раз в interval отправляет позицию.
// Stop отменяет контекст и дожидается завершения цикла.
type Tracker struct {
	interval time.Duration
	player   Player
	push     PushFunc
	log      *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(interval time.Duration, player Player, push PushFunc, log *slog.Logger) *Tracker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Tracker{
		interval: interval,
		player:   player,
		push:     push,
		log:      log.With(slog.String("component", "tracker")),
	}
}

// Start запускает цикл. Повторный вызов во время работы ничего не делает.
func (t *Tracker) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})

	go t.run(ctx, t.done)
}

// Stop останавливает цикл. После возврата push больше не вызывается.
func (t *Tracker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Done закрывается, когда цикл завершился сам (воспроизведение закончилось) или был остановлен
func (t *Tracker) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return t.done
}

func (t *Tracker) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.log.Debug("Отслеживание остановлено")
			return
		case <-ticker.C:
			if !t.player.Playing() {
				t.log.Debug("Воспроизведение завершено")
				return
			}
			t.push(ctx, t.player.Position())
		}
	}
}
