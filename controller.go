package pagectl

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrInvalidConfiguration is returned when a Controller cannot be created
// from the given settings.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for debug events. Defaults to zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller owns the pagination state of a single listing, derives its
// display range and gates navigation requests against the current bounds.
//
// The controller never fetches anything itself. Navigation methods only
// validate the requested page and hand it to the caller, who is expected to
// fetch it and then call UpdateState with the result:
//
//	ctrl.NextPage(func(page int) {
//	    res, err := rest.FetchPage[Activity](ctx, client, "/activities", page, size)
//	    if err != nil {
//	        flag.Show(err.Error())
//	        return
//	    }
//	    ctrl.UpdateState(res.Patch())
//	})
//
// IMPORTANT:
// A Controller is not safe for concurrent use. If two fetches overlap, the
// last UpdateState wins.
type Controller struct {
	state  State
	ranges DisplayRange
	logger zerolog.Logger
}

// NewController creates a Controller with an empty result set and the given
// page size. Returns an error wrapping ErrInvalidConfiguration if
// initialPageSize is not positive.
func NewController(initialPageSize int, opts ...Option) (*Controller, error) {
	if initialPageSize <= 0 {
		return nil, fmt.Errorf(
			"cannot create controller: %w: page size must be positive, got %d",
			ErrInvalidConfiguration, initialPageSize,
		)
	}

	c := &Controller{
		state:  State{PageSize: initialPageSize},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// State returns a copy of the current pagination state.
func (c *Controller) State() State {
	if c == nil {
		return State{}
	}

	return c.state
}

// UpdateState merges the present fields of patch into the current state.
// No cross-field validation is performed. Applying the same patch twice
// leaves the state as applying it once.
func (c *Controller) UpdateState(patch StatePatch) {
	c.state = patch.apply(c.state)
	c.ranges = nil

	c.logger.Debug().
		Int("cur_page", c.state.CurPage).
		Int("page_size", c.state.PageSize).
		Int("total_elements", c.state.TotalElements).
		Int("total_pages", c.state.TotalPages).
		Msg("pagination state updated")
}

// PageRanges returns the display range of the current state. The result is
// cached until the next UpdateState and must not be modified.
func (c *Controller) PageRanges() DisplayRange {
	if c.ranges == nil {
		c.ranges = ComputeDisplayRange(c.state)
	}

	return c.ranges
}

// PageTarget returns target if it is a valid page index for the current
// state. The second value is false when target is out of [0, TotalPages).
func (c *Controller) PageTarget(target int) (int, bool) {
	if target < 0 || target >= c.state.TotalPages {
		c.logger.Debug().
			Int("target", target).
			Int("total_pages", c.state.TotalPages).
			Msg("page target out of bounds")

		return 0, false
	}

	return target, true
}

// PrevTarget returns the index of the previous page, if there is one.
func (c *Controller) PrevTarget() (int, bool) {
	if !c.state.HasPrevious() {
		c.logger.Debug().Int("cur_page", c.state.CurPage).Msg("already on the first page")
		return 0, false
	}

	return c.state.CurPage - 1, true
}

// NextTarget returns the index of the next page, if there is one.
func (c *Controller) NextTarget() (int, bool) {
	if !c.state.HasNext() {
		c.logger.Debug().Int("cur_page", c.state.CurPage).Msg("already on the last page")
		return 0, false
	}

	return c.state.CurPage + 1, true
}

// GoToPage invokes onAccepted(target) exactly once if target is within
// [0, TotalPages). Out-of-bounds targets are silently ignored.
func (c *Controller) GoToPage(target int, onAccepted func(page int)) {
	forward(c.PageTarget(target))(onAccepted)
}

// PrevPage invokes onAccepted(CurPage-1) unless the current page is the first.
func (c *Controller) PrevPage(onAccepted func(page int)) {
	forward(c.PrevTarget())(onAccepted)
}

// NextPage invokes onAccepted(CurPage+1) unless the current page is the last.
func (c *Controller) NextPage(onAccepted func(page int)) {
	forward(c.NextTarget())(onAccepted)
}

func forward(page int, ok bool) func(func(int)) {
	return func(onAccepted func(int)) {
		if ok && onAccepted != nil {
			onAccepted(page)
		}
	}
}
