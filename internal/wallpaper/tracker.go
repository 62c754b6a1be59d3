package wallpaper

import (
	"context"

	"github.com/google/uuid"
)

// Request identifies one load attempt.
type Request struct {
	ID     string
	Width  int
	Height int
	Cols   int
	Rows   int
}

// Result is the outcome of a load. Art is nil when Err is set.
type Result struct {
	RequestID string
	Art       Art
	Err       error
}

// Tracker keys load completions to the request that started them. Starting
// a new request cancels the one in flight, and only the newest request's
// result is accepted. It is not safe for concurrent use.
type Tracker struct {
	current string
	cancel  context.CancelFunc
}

// Start begins a new request for a viewport of cols x rows cells rendered
// from an image of width x height pixels.
func (t *Tracker) Start(parent context.Context, width, height, cols, rows int) (Request, context.Context) {
	t.Stop()
	ctx, cancel := context.WithCancel(parent)
	t.current = uuid.NewString()
	t.cancel = cancel
	return Request{ID: t.current, Width: width, Height: height, Cols: cols, Rows: rows}, ctx
}

// Current returns the id of the newest request.
func (t *Tracker) Current() string {
	return t.current
}

// Accept reports whether r belongs to the newest request and, if so,
// retires that request.
func (t *Tracker) Accept(r Result) bool {
	if r.RequestID == "" || r.RequestID != t.current {
		return false
	}
	t.current = ""
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	return true
}

// Stop cancels the request in flight. Its result will be rejected.
func (t *Tracker) Stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.current = ""
}

// Load fetches and renders the image for req.
func Load(ctx context.Context, p Provider, req Request) Result {
	img, err := p.Fetch(ctx, req.Width, req.Height)
	if err != nil {
		return Result{RequestID: req.ID, Err: err}
	}
	return Result{RequestID: req.ID, Art: Render(img, req.Cols, req.Rows)}
}
