package mailto

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/showcase/pkg/logger"
	"github.com/dmitrymomot/showcase/pkg/mailclient"
	"github.com/dmitrymomot/showcase/pkg/statemachine"
	"github.com/dmitrymomot/showcase/pkg/validator"
)

// Confirmation is shown once after every dispatched inquiry.
const Confirmation = "Thank you for your inquiry! Your email client should open with your message ready to send."

// Submission states.
const (
	StateIdle        = statemachine.StringState("idle")
	StateValidating  = statemachine.StringState("validating")
	StateBuilding    = statemachine.StringState("building")
	StateDispatching = statemachine.StringState("dispatching")
	StateConfirmed   = statemachine.StringState("confirmed")
	StateRejected    = statemachine.StringState("rejected")
)

// Submission events.
const (
	EventSubmit   = statemachine.StringEvent("submit")
	EventValidate = statemachine.StringEvent("validate")
	EventBuild    = statemachine.StringEvent("build")
	EventDispatch = statemachine.StringEvent("dispatch")
)

// Encoder turns form submissions into mailto URIs, hands them to an Opener
// and confirms through a Notifier. It holds only configuration and is safe
// for concurrent use.
type Encoder struct {
	recipient    string
	opener       mailclient.Opener
	notifier     mailclient.Notifier
	sanitize     func(FormSubmission) FormSubmission
	validation   []ValidateOption
	confirmation string
	listeners    []statemachine.Listener
	log          *slog.Logger
}

// Option configures an Encoder.
type Option func(*Encoder)

func WithOpener(o mailclient.Opener) Option {
	return func(e *Encoder) {
		if o != nil {
			e.opener = o
		}
	}
}

func WithNotifier(n mailclient.Notifier) Option {
	return func(e *Encoder) {
		if n != nil {
			e.notifier = n
		}
	}
}

// WithSanitizer sets the transform applied to the submission before
// validation and message construction. The default passes values through
// unchanged. PlainText is the stock policy.
func WithSanitizer(fn func(FormSubmission) FormSubmission) Option {
	return func(e *Encoder) {
		e.sanitize = fn
	}
}

// WithValidation adds options passed to Validate on every submit.
func WithValidation(opts ...ValidateOption) Option {
	return func(e *Encoder) {
		e.validation = append(e.validation, opts...)
	}
}

// WithConfirmation overrides the confirmation text.
func WithConfirmation(msg string) Option {
	return func(e *Encoder) {
		if msg != "" {
			e.confirmation = msg
		}
	}
}

// WithTransitionListener observes every state change of every submission.
func WithTransitionListener(l statemachine.Listener) Option {
	return func(e *Encoder) {
		if l != nil {
			e.listeners = append(e.listeners, l)
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Encoder) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEncoder creates an Encoder that addresses every message to recipient.
// Without options it logs instead of opening a mail client.
func NewEncoder(recipient string, opts ...Option) (*Encoder, error) {
	if err := validator.Apply(validator.ValidEmail("recipient", recipient)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRecipient, recipient)
	}

	e := &Encoder{
		recipient:    recipient,
		confirmation: Confirmation,
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.opener == nil {
		e.opener = mailclient.NewDevOpener(e.log)
	}
	if e.notifier == nil {
		e.notifier = mailclient.NewLogNotifier(e.log)
	}
	return e, nil
}

// With returns a copy of e with opts applied. Use it to bind a per-request
// opener or notifier without touching the shared Encoder.
func (e *Encoder) With(opts ...Option) *Encoder {
	c := *e
	c.validation = append([]ValidateOption(nil), e.validation...)
	c.listeners = append([]statemachine.Listener(nil), e.listeners...)
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Recipient returns the configured destination address.
func (e *Encoder) Recipient() string {
	return e.recipient
}

// Compose sanitizes, validates and builds the message without dispatching it.
func (e *Encoder) Compose(sub FormSubmission) (MailMessage, error) {
	sub = e.prepare(sub)
	if err := Validate(sub, e.validation...); err != nil {
		return MailMessage{}, err
	}
	return BuildMailMessage(sub, e.recipient), nil
}

// prepare normalizes sub as the browser would and applies the sanitizer.
func (e *Encoder) prepare(sub FormSubmission) FormSubmission {
	sub = sub.Normalize()
	if e.sanitize != nil {
		sub = e.sanitize(sub)
	}
	return sub
}

// run carries one submission through the state machine.
type run struct {
	sub FormSubmission
	err error
	msg MailMessage
}

// Submit processes one submission. A rejected submission returns the
// validation error and neither the opener nor the notifier is called.
// A failed mail client launch is logged and not returned: once the URI is
// handed over, the outcome is outside this process.
func (e *Encoder) Submit(ctx context.Context, sub FormSubmission) error {
	r := &run{sub: e.prepare(sub)}
	sm := e.machine(r)

	steps := []statemachine.Event{EventSubmit, EventValidate, EventBuild, EventDispatch}
	for _, ev := range steps {
		if err := sm.Fire(ctx, ev, r); err != nil {
			return err
		}
		if sm.Current() == StateRejected {
			e.log.InfoContext(ctx, "inquiry rejected",
				logger.Component("mailto"),
				logger.Fields(validator.ExtractValidationErrors(r.err).Fields()),
			)
			return r.err
		}
	}

	e.log.InfoContext(ctx, "inquiry dispatched",
		logger.Component("mailto"),
		logger.Product(r.sub.SelectedProduct),
		logger.URILength(r.msg.EncodedURI),
	)
	return nil
}

func (e *Encoder) machine(r *run) statemachine.StateMachine {
	valid := func(context.Context, statemachine.State, statemachine.Event, any) bool {
		return r.err == nil
	}
	invalid := func(context.Context, statemachine.State, statemachine.Event, any) bool {
		return r.err != nil
	}

	opts := []statemachine.Option{
		statemachine.WithTransition(StateIdle, StateValidating, EventSubmit,
			statemachine.WithAction(func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
				r.err = Validate(r.sub, e.validation...)
				return nil
			}),
		),
		statemachine.WithTransition(StateValidating, StateBuilding, EventValidate, statemachine.WithGuard(valid)),
		statemachine.WithTransition(StateValidating, StateRejected, EventValidate, statemachine.WithGuard(invalid)),
		statemachine.WithTransition(StateBuilding, StateDispatching, EventBuild,
			statemachine.WithAction(func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
				r.msg = BuildMailMessage(r.sub, e.recipient)
				return nil
			}),
		),
		statemachine.WithTransition(StateDispatching, StateConfirmed, EventDispatch,
			statemachine.WithAction(func(ctx context.Context, _, _ statemachine.State, _ statemachine.Event, _ any) error {
				return e.dispatch(ctx, r.msg)
			}),
		),
		statemachine.WithListener(func(ctx context.Context, from, to statemachine.State, ev statemachine.Event) {
			e.log.DebugContext(ctx, "submission transition",
				logger.Component("mailto"),
				slog.String("from", from.Name()),
				logger.State(to.Name()),
				logger.Event(ev.Name()),
			)
		}),
	}
	for _, l := range e.listeners {
		opts = append(opts, statemachine.WithListener(l))
	}

	return statemachine.MustNew(StateIdle, opts...)
}

func (e *Encoder) dispatch(ctx context.Context, msg MailMessage) error {
	if err := e.opener.Open(ctx, msg.EncodedURI); err != nil {
		e.log.WarnContext(ctx, "mail client open failed",
			logger.Component("mailto"),
			logger.Error(err),
		)
	}
	if err := e.notifier.Notify(ctx, e.confirmation); err != nil {
		return errors.Join(ErrNotifyFailed, err)
	}
	return nil
}
