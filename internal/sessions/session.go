package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-token-swap/internal/converter"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// ToggleState is the state of the direction-toggle animation.
type ToggleState string

const (
	ToggleIdle     ToggleState = "idle"
	ToggleSwapping ToggleState = "swapping"
)

// Default toggle animation window: roles and amounts swap at the midpoint,
// the session returns to idle at the end.
const (
	DefaultToggleSwapAt = 300 * time.Millisecond
	DefaultToggleSettle = 600 * time.Millisecond
)

// Session holds the state of one user's open swap dialog: direction, the
// raw "from" amount, the derived "to" amount, the insufficiency flag, the
// toggle animation state, and the submit guard. All state is owned by the
// session's mutex; timers scheduled by Toggle never outlive Close.
type Session struct {
	mu sync.Mutex

	userID       uuid.UUID
	swapType     models.SwapType
	fromAmount   string
	toAmount     string
	insufficient bool
	toggleState  ToggleState
	submitting   bool
	historyStale bool
	closed       bool

	toggleSwapAt time.Duration
	toggleSettle time.Duration
	timers       []*time.Timer
}

// View is an immutable snapshot of session state.
type View struct {
	UserID       uuid.UUID
	SwapType     models.SwapType
	FromAmount   string
	ToAmount     string
	Insufficient bool
	ToggleState  ToggleState
	Submitting   bool
	HistoryStale bool
}

// Option configures a Session.
type Option func(*Session)

// WithToggleTiming overrides the toggle animation window, used by tests.
func WithToggleTiming(swapAt, settle time.Duration) Option {
	return func(s *Session) {
		s.toggleSwapAt = swapAt
		s.toggleSettle = settle
	}
}

// New creates a fresh session: empty amounts, base-to-quote direction,
// history marked stale so the first view triggers a fetch.
func New(userID uuid.UUID, opts ...Option) *Session {
	s := &Session{
		userID:       userID,
		swapType:     models.SwapSolToUsdt,
		toggleState:  ToggleIdle,
		historyStale: true,
		toggleSwapAt: DefaultToggleSwapAt,
		toggleSettle: DefaultToggleSettle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View returns a snapshot of the current state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	return View{
		UserID:       s.userID,
		SwapType:     s.swapType,
		FromAmount:   s.fromAmount,
		ToAmount:     s.toAmount,
		Insufficient: s.insufficient,
		ToggleState:  s.toggleState,
		Submitting:   s.submitting,
		HistoryStale: s.historyStale,
	}
}

// SetAmount applies raw amount input. Input failing the amount grammar is
// rejected silently and the stored amounts do not change. Usable input
// derives the "to" amount at the given price and evaluates the
// insufficiency flag against the available "from" balance; non-usable
// input (empty, lone dot, zero) clears the derived amount and forces the
// flag false.
func (s *Session) SetAmount(raw string, price, available decimal.Decimal) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || !converter.ValidAmountInput(raw) {
		return s.viewLocked()
	}

	s.fromAmount = raw
	s.toAmount = converter.Derive(raw, s.swapType, price)
	s.insufficient = converter.Insufficient(raw, available)
	return s.viewLocked()
}

// UseMax sets the "from" amount to the full available balance.
func (s *Session) UseMax(price, available decimal.Decimal) View {
	return s.SetAmount(converter.MaxAmount(available), price, available)
}

// Toggle swaps the roles of the two assets. The session enters the
// swapping state immediately; the actual role/amount swap happens at the
// midpoint of the animation window and the session returns to idle at the
// end. A toggle invoked while one is already in flight is ignored.
// newFromAvailable is the available balance of the asset that becomes the
// "from" asset, used to re-evaluate the insufficiency flag after the swap.
func (s *Session) Toggle(newFromAvailable decimal.Decimal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.toggleState == ToggleSwapping {
		return false
	}
	s.toggleState = ToggleSwapping

	swap := time.AfterFunc(s.toggleSwapAt, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		s.swapType = s.swapType.Reverse()
		s.fromAmount, s.toAmount = s.toAmount, s.fromAmount
		s.insufficient = converter.Insufficient(s.fromAmount, newFromAvailable)
	})
	settle := time.AfterFunc(s.toggleSettle, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		s.toggleState = ToggleIdle
	})
	s.timers = append(s.timers, swap, settle)
	return true
}

// TryBeginSubmit acquires the single in-flight submission guard. A second
// submit while one is pending is refused, not queued.
func (s *Session) TryBeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// EndSubmit releases the submission guard.
func (s *Session) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

// ResetAmounts clears both amounts and the insufficiency flag after a
// successful swap and marks history stale.
func (s *Session) ResetAmounts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fromAmount = ""
	s.toAmount = ""
	s.insufficient = false
	s.historyStale = true
}

// MarkHistoryFresh records that history has been fetched for this session.
func (s *Session) MarkHistoryFresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyStale = false
}

// Close tears the session down. Pending toggle timers are stopped and any
// that already fired observe the closed flag and leave state untouched.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}
