// Package effect wires the fetch, mapping and rendering steps into the single map effect
// run by the host once the map is mounted.
package effect

import (
	"context"
	"sync/atomic"

	"github.com/AbdulWasayUl/go-covid-map/internal/geo"
	"github.com/AbdulWasayUl/go-covid-map/internal/maphost"
	"github.com/AbdulWasayUl/go-covid-map/models"
	"github.com/rs/zerolog"
)

type State int32

const (
	StatePending State = iota
	StateDone          // rendered or aborted
)

func (s State) String() string {
	if s == StateDone {
		return "done"
	}
	return "pending"
}

// Fetcher returns the country records. ok=false means there is nothing to draw.
type Fetcher interface {
	Fetch(ctx context.Context) (records []models.CountryRecord, ok bool, err error)
}

type Effect struct {
	fetcher      Fetcher
	pointToLayer geo.PointToLayer
	log          zerolog.Logger
	started      atomic.Bool
	state        atomic.Int32
}

func New(fetcher Fetcher, pointToLayer geo.PointToLayer, log zerolog.Logger) *Effect {
	return &Effect{
		fetcher:      fetcher,
		pointToLayer: pointToLayer,
		log:          log,
	}
}

func (e *Effect) State() State {
	return State(e.state.Load())
}

// Run fetches the records, builds one marker layer and attaches it to m. A fetch failure
// is logged and swallowed. Only the first call does anything.
func (e *Effect) Run(ctx context.Context, m maphost.Map) {
	if !e.started.CompareAndSwap(false, true) {
		return
	}
	defer e.state.Store(int32(StateDone))

	records, ok, err := e.fetcher.Fetch(ctx)
	if err != nil {
		e.log.Error().Err(err).Msgf("Failed to fetch countries: %v", err)
		return
	}
	if !ok || len(records) == 0 {
		e.log.Debug().Msg("No country data returned, nothing to draw")
		return
	}

	fc := geo.ToFeatureCollection(records)
	layer := geo.NewLayer(fc, e.pointToLayer)
	m.AddLayer(layer)

	e.log.Info().Str("layer", layer.ID).Int("features", len(fc.Features)).Msg("Country markers attached")
}
