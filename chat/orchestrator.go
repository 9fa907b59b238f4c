package chat

import (
	"context"
	"sync"
	"time"

	"clementus360/glowup/config"
	"clementus360/glowup/notify"
	"clementus360/glowup/types"

	"github.com/sirupsen/logrus"
)

// State is what a view needs to draw the query box.
type State struct {
	Input  string
	Busy   bool
	Result types.QueryResult
}

// Orchestrator runs one query at a time per caller. It does not queue or
// guard: if a caller submits twice, both requests run and whichever settles
// last owns Result.
type Orchestrator struct {
	sender         Sender
	notifier       notify.Notifier
	notifyDuration time.Duration
	logger         logrus.FieldLogger

	mu        sync.Mutex
	state     State
	listeners []func(State)
}

type Option func(*Orchestrator)

func WithNotifier(n notify.Notifier) Option {
	return func(o *Orchestrator) { o.notifier = n }
}

func WithNotifyDuration(d time.Duration) Option {
	return func(o *Orchestrator) { o.notifyDuration = d }
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

func NewOrchestrator(sender Sender, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		sender:         sender,
		notifier:       notify.Discard,
		notifyDuration: config.DefaultNotifyDuration,
		logger:         config.Logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// OnChange registers fn to be called with every new State.
func (o *Orchestrator) OnChange(fn func(State)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.listeners = append(o.listeners, fn)
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// SetInput replaces the input buffer, as typing would.
func (o *Orchestrator) SetInput(text string) {
	o.update(func(s *State) { s.Input = text })
}

// Submit puts text in the input buffer and sends it. Blank text is rejected
// without a request and leaves Result untouched; the bool reports whether a
// request was made.
func (o *Orchestrator) Submit(ctx context.Context, text string) (types.QueryResult, bool) {
	req, ok := types.NewQueryRequest(text)
	if !ok {
		return types.QueryResult{}, false
	}

	o.update(func(s *State) {
		s.Input = text
		s.Busy = true
	})

	resp, err := o.sender.Send(ctx, types.ChatRequest{Message: req.Text})
	result, classErr := Classify(resp, err)

	o.update(func(s *State) {
		s.Busy = false
		s.Result = result
		if result.IsSuccess() {
			s.Input = ""
		}
	})

	if classErr != nil {
		o.logger.WithError(classErr).Warn("Chat request failed")
		o.notifier.Notify(notify.ErrorNotification(result.Message(), o.notifyDuration))
	}

	return result, true
}

func (o *Orchestrator) update(fn func(*State)) {
	o.mu.Lock()
	fn(&o.state)
	snapshot := o.state
	listeners := make([]func(State), len(o.listeners))
	copy(listeners, o.listeners)
	o.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}
