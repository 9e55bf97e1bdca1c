package widget

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"city-weather/internal/geocoding"
	"city-weather/internal/types"
)

// Controller debounces input and turns geocoding results into suggestions or a
// direct selection.
//
// A search already in flight is not cancelled by newer input, so a slow stale
// response can overwrite the suggestions of a newer one.
type Controller struct {
	input       Input
	list        SuggestionList
	output      Output
	renderer    *Renderer
	geocoder    geocoding.Service
	quietPeriod time.Duration
	logger      *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

func NewController(
	input Input,
	list SuggestionList,
	output Output,
	renderer *Renderer,
	geocoder geocoding.Service,
	quietPeriod time.Duration,
	logger *slog.Logger,
) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		input:       input,
		list:        list,
		output:      output,
		renderer:    renderer,
		geocoder:    geocoder,
		quietPeriod: quietPeriod,
		logger:      logger.With("component", "suggestion-controller"),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// OnInput reacts to a change of the input value. The pending search, if any,
// is replaced by one for value that fires after the quiet period.
func (c *Controller) OnInput(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.quietPeriod, func() {
		c.search(value)
	})
}

// Close stops the pending search and cancels outstanding lookups
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.cancel()
}

func (c *Controller) search(value string) {
	c.list.ClearSuggestions()
	if value == "" {
		return
	}

	candidates := c.geocoder.SearchCities(c.ctx, value)

	c.logger.Debug("dispatching search results", "query", value, "count", len(candidates))

	switch len(candidates) {
	case 0:
		if c.output != nil {
			c.output.SetContent(FormatNotFound(c.input.Value()))
		}
	case 1:
		// Unambiguous: select without showing a list
		c.renderer.SelectCity(c.ctx, candidates[0])
	default:
		for _, candidate := range candidates {
			c.list.AppendSuggestion(candidate.Label(), c.selectFunc(candidate))
		}
	}
}

func (c *Controller) selectFunc(candidate types.CityCandidate) func() {
	return func() {
		c.renderer.SelectCity(c.ctx, candidate)
	}
}
