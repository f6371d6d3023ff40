// Package maphost owns the map lifecycle: it holds the display settings, fires the
// registered effect exactly once when mounted, and keeps the layers the effect attaches.
package maphost

import (
	"context"
	"sync"

	"github.com/AbdulWasayUl/go-covid-map/internal/geo"
	"github.com/AbdulWasayUl/go-covid-map/internal/logger"
	"github.com/AbdulWasayUl/go-covid-map/internal/scheduler"
	"github.com/AbdulWasayUl/go-covid-map/models"
)

// Map is the handle an effect receives once the map can accept layers.
type Map interface {
	AddLayer(layer *geo.Layer)
}

// Effect runs once after mount.
type Effect func(ctx context.Context, m Map)

type Host struct {
	Settings models.MapSettings

	sched  *scheduler.Scheduler
	effect Effect

	mountOnce sync.Once
	done      chan struct{}
	mountErr  error

	mu     sync.RWMutex
	layers []*geo.Layer
}

func New(settings models.MapSettings, sched *scheduler.Scheduler) *Host {
	return &Host{
		Settings: settings,
		sched:    sched,
		done:     make(chan struct{}),
	}
}

// OnReady registers the effect. Only the last registration before Mount is used.
func (h *Host) OnReady(effect Effect) {
	h.effect = effect
}

// Mount fires the effect through the scheduler. Subsequent calls do nothing and return
// the first call's result.
func (h *Host) Mount(ctx context.Context) error {
	h.mountOnce.Do(func() {
		if h.effect == nil {
			logger.Info("Map mounted without an effect")
			close(h.done)
			return
		}

		effectDone, err := h.sched.RunOnce(ctx, "map effect", func(ctx context.Context) {
			h.effect(ctx, h)
		})
		if err != nil {
			h.mountErr = err
			close(h.done)
			return
		}

		go func() {
			<-effectDone
			close(h.done)
		}()
	})
	return h.mountErr
}

// Done is closed once the effect has returned, whether it rendered or aborted.
func (h *Host) Done() <-chan struct{} {
	return h.done
}

func (h *Host) Ready() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

func (h *Host) AddLayer(layer *geo.Layer) {
	if layer == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.layers = append(h.layers, layer)
	logger.Info("Layer %s attached with %d markers", layer.ID, len(layer.Markers))
}

func (h *Host) Layers() []*geo.Layer {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*geo.Layer, len(h.layers))
	copy(out, h.layers)
	return out
}
