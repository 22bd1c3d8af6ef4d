// Package netwatch implements the connectivity oracle: the client's single
// source of truth about whether the remote system is currently reachable.
// One oracle with one subscriber list replaces per-screen polling timers.
package netwatch

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultInterval период фонового опроса
	DefaultInterval = 2 * time.Second

	// DefaultProbeTimeout ограничение на round-trip probe к серверу
	DefaultProbeTimeout = 5 * time.Second
)

// Prober performs one round trip to the remote liveness endpoint.
// Implemented by the API client's Ping.
type Prober interface {
	Ping(ctx context.Context) error
}

// Oracle maintains the current reachability belief. A sample is "online"
// only when the device reports network presence AND a bounded-latency probe
// to the server succeeds; captive portals and link-local-only connectivity
// therefore read as offline. Probe timeout or error is always "offline",
// never ambiguous.
type Oracle struct {
	prober      Prober
	logger      *slog.Logger
	hasPresence func() bool // заменяется в тестах
	subscribers []chan struct{}
	interval    time.Duration
	timeout     time.Duration
	mu          sync.Mutex
	online      atomic.Bool
	inFlight    atomic.Bool
}

// New creates a connectivity oracle. Zero interval/timeout values fall back
// to the defaults.
func New(prober Prober, interval, timeout time.Duration, logger *slog.Logger) *Oracle {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Oracle{
		prober:      prober,
		logger:      logger,
		hasPresence: devicePresence,
		interval:    interval,
		timeout:     timeout,
	}
}

// SampleNow performs one reachability sample and updates the belief.
// A probe already in flight suppresses a concurrent probe: the call then
// returns the current belief without blocking.
func (o *Oracle) SampleNow(ctx context.Context) bool {
	if !o.inFlight.CompareAndSwap(false, true) {
		return o.online.Load()
	}
	defer o.inFlight.Store(false)

	online := o.sample(ctx)
	was := o.online.Swap(online)

	if online != was {
		o.logger.Info("connectivity changed", "online", online)
	}
	// Edge-triggered: уведомляем подписчиков только при переходе в online
	if online && !was {
		o.notifyOnline()
	}

	return online
}

// CurrentBelief returns the last sampled reachability without blocking.
func (o *Oracle) CurrentBelief() bool {
	return o.online.Load()
}

// Subscribe returns a channel that receives one notification per
// offline-to-online transition. Notifications are dropped, not queued,
// when the subscriber is not ready.
func (o *Oracle) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	o.mu.Lock()
	o.subscribers = append(o.subscribers, ch)
	o.mu.Unlock()
	return ch
}

// Run launches the fixed-interval sampling loop in a background goroutine.
// It returns immediately; the loop stops when ctx is cancelled.
func (o *Oracle) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(o.interval)
		defer ticker.Stop()

		for {
			o.SampleNow(ctx)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func (o *Oracle) sample(ctx context.Context) bool {
	if !o.hasPresence() {
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	if err := o.prober.Ping(probeCtx); err != nil {
		o.logger.Debug("liveness probe failed", "error", err)
		return false
	}

	return true
}

func (o *Oracle) notifyOnline() {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, ch := range o.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// devicePresence сообщает, есть ли у устройства активный сетевой интерфейс
// с адресом (кроме loopback). Наличие интерфейса ещё не означает доступность
// сервера - это только первая половина проверки.
func devicePresence() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err == nil && len(addrs) > 0 {
			return true
		}
	}

	return false
}
