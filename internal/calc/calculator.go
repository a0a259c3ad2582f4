package calc

import (
	"strings"

	"github.com/2112121/accounting-book-sub002/internal/logger"
)

// State is the interaction state of a Calculator.
type State int

const (
	Idle State = iota
	Editing
	Pending
	Settled
	SettledError
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Editing:
		return "editing"
	case Pending:
		return "pending"
	case Settled:
		return "settled"
	case SettledError:
		return "error"
	default:
		return "unknown"
	}
}

// Options configures a Calculator at construction.
type Options struct {
	// Seed pre-fills the buffer and is shown, unevaluated, as the display.
	Seed string
	// OnUseResult receives the result when the user accepts it. Nil means
	// only the copy action is offered.
	OnUseResult func(result string)
	// OnDismiss is called when the session is closed without using a result.
	OnDismiss func()
	// CopyOnly hides the use-result action even when OnUseResult is set.
	CopyOnly bool
	Logger   *logger.Logger
}

// Calculator is the keypad state machine. It is driven from a single event
// loop and does no locking.
//
// Evaluation is deferred: BeginEvaluate enters Pending and hands out a request
// id, and the host calls Settle with that id once the settle delay elapsed.
// Only the most recent request is ever applied; editing in between
// invalidates it.
type Calculator struct {
	opts Options
	log  *logger.Logger

	buf     Buffer
	display string
	state   State
	valid   bool
	err     error

	request uint64
	pending bool

	shakeID uint64
	shaking bool

	copyID uint64
	copied bool

	done bool
}

// New creates a calculator session.
func New(opts Options) *Calculator {
	log := opts.Logger
	if log == nil {
		log = logger.Global()
	}

	c := &Calculator{
		opts:    opts,
		log:     log.WithPrefix("calc"),
		display: NeutralValue,
		state:   Idle,
		valid:   true,
	}

	if seed := strings.TrimSpace(opts.Seed); seed != "" {
		c.buf = NewBuffer(seed)
		c.display = seed
		c.state = Editing
		c.valid = BracketsOpen(c.buf.String())
		c.log.Debug("seeded with %q", seed)
	}
	return c
}

func (c *Calculator) Expression() string { return c.buf.String() }
func (c *Calculator) Display() string    { return c.display }
func (c *Calculator) State() State       { return c.state }

// Valid is the live bracket check for the current buffer.
func (c *Calculator) Valid() bool { return c.valid }

// Err is the reason for the last failed evaluation, nil otherwise.
func (c *Calculator) Err() error { return c.err }

// Shaking reports whether the error feedback is active.
func (c *Calculator) Shaking() bool { return c.shaking }

// CopyConfirmed reports whether the "copied" confirmation is visible.
func (c *Calculator) CopyConfirmed() bool { return c.copied }

// Done reports whether the session ended through UseResult or Dismiss.
func (c *Calculator) Done() bool { return c.done }

// UseResultOffered reports whether the host should show the use-result action at all.
func (c *Calculator) UseResultOffered() bool {
	return !c.opts.CopyOnly && c.opts.OnUseResult != nil
}

// CanUseResult reports whether UseResult would succeed right now.
func (c *Calculator) CanUseResult() bool {
	return !c.done && c.UseResultOffered() && c.state == Settled && c.display != ErrorSentinel
}

// CanCopy reports whether there is a result worth copying.
func (c *Calculator) CanCopy() bool {
	return !c.done && c.state == Settled && c.display != ErrorSentinel && c.display != NeutralValue
}

// Press feeds one token. For TokenEvaluate it returns the id of the started
// request, otherwise 0.
func (c *Calculator) Press(t Token) uint64 {
	if c.done {
		return 0
	}

	switch {
	case t == TokenEvaluate:
		return c.BeginEvaluate()
	case t == TokenClear:
		c.Clear()
	case t == TokenBackspace:
		c.Backspace()
	case t.IsEdit():
		c.edit(t)
	default:
		c.log.Warn("ignoring token %U", rune(t))
	}
	return 0
}

func (c *Calculator) edit(t Token) {
	c.invalidate()
	if !c.buf.Append(t) {
		c.log.Debug("token %s ignored by edit rules", t)
	}
	c.valid = BracketsOpen(c.buf.String())
	c.display = NeutralValue
	c.copied = false
	c.err = nil
	if c.buf.Empty() {
		c.state = Idle
	} else {
		c.state = Editing
	}
}

// Backspace removes the last character. Emptying the buffer returns to Idle
// and clears every indicator.
func (c *Calculator) Backspace() {
	if c.done {
		return
	}
	c.invalidate()
	c.buf.Backspace()
	c.valid = BracketsOpen(c.buf.String())
	c.display = NeutralValue
	c.copied = false
	c.err = nil
	if c.buf.Empty() {
		c.shaking = false
		c.state = Idle
		return
	}
	c.state = Editing
}

// Clear empties the buffer and returns to Idle from any state.
func (c *Calculator) Clear() {
	if c.done {
		return
	}
	c.invalidate()
	c.buf.Clear()
	c.valid = true
	c.display = NeutralValue
	c.state = Idle
	c.shaking = false
	c.copied = false
	c.err = nil
}

// BeginEvaluate enters Pending and returns the id Settle must be called with.
func (c *Calculator) BeginEvaluate() uint64 {
	if c.done {
		return 0
	}
	c.request++
	c.pending = true
	c.state = Pending
	c.copied = false
	c.log.Debug("evaluate request %d for %q", c.request, c.buf.String())
	return c.request
}

// Settle computes and shows the result for request id. Stale or cancelled
// requests are dropped and reported as false.
func (c *Calculator) Settle(id uint64) bool {
	if c.done || !c.pending || id != c.request {
		c.log.Debug("dropping stale evaluate request %d (latest %d)", id, c.request)
		return false
	}
	c.pending = false

	result, err := Evaluate(c.buf.String())
	c.display = result
	c.err = err
	if err != nil {
		c.log.Info("evaluation of %q failed: %v", c.buf.String(), err)
		c.state = SettledError
		c.shakeID++
		c.shaking = true
		return true
	}

	if c.buf.Empty() {
		c.state = Idle
	} else {
		c.state = Settled
	}
	return true
}

// ShakeID identifies the current error shake so the host can end exactly it.
func (c *Calculator) ShakeID() uint64 { return c.shakeID }

// EndShake clears the shake raised under id. Older ids are ignored.
func (c *Calculator) EndShake(id uint64) bool {
	if id != c.shakeID || !c.shaking {
		return false
	}
	c.shaking = false
	return true
}

// UseResult hands the result to OnUseResult and ends the session.
func (c *Calculator) UseResult() (string, bool) {
	if !c.CanUseResult() {
		return "", false
	}

	result := c.display
	c.log.Info("using result %s", result)
	c.opts.OnUseResult(result)

	c.buf.Clear()
	c.display = NeutralValue
	c.state = Idle
	c.done = true
	return result, true
}

// CopyText returns the text the copy action would place on the clipboard.
// The host performs the write and reports back with ConfirmCopy or CopyFailed.
func (c *Calculator) CopyText() (string, bool) {
	if !c.CanCopy() {
		return "", false
	}
	return c.display, true
}

// ConfirmCopy shows the copy confirmation and returns its id for HideCopyConfirmation.
func (c *Calculator) ConfirmCopy() uint64 {
	c.copyID++
	c.copied = true
	return c.copyID
}

// HideCopyConfirmation hides the confirmation shown under id.
func (c *Calculator) HideCopyConfirmation(id uint64) bool {
	if id != c.copyID || !c.copied {
		return false
	}
	c.copied = false
	return true
}

// CopyFailed records a clipboard failure. Nothing changes for the user.
func (c *Calculator) CopyFailed(err error) {
	c.log.Warn("clipboard write failed: %v", err)
}

// Dismiss closes the session without emitting a result.
func (c *Calculator) Dismiss() {
	if c.done {
		return
	}
	c.done = true
	c.invalidate()
	if c.opts.OnDismiss != nil {
		c.opts.OnDismiss()
	}
}

func (c *Calculator) invalidate() {
	if c.pending {
		c.log.Debug("cancelling evaluate request %d", c.request)
	}
	c.pending = false
}
