package assessment

import (
	"errors"
	"fmt"
	"time"

	"github.com/arjunvk/levelcheck/internal/questiongen"
)

// State is the collector's position in the per-question cycle.
type State int

const (
	// StateAwaitingAnswer means the current question is live and its
	// countdown is running.
	StateAwaitingAnswer State = iota

	// StateAnswerChecked means the current question is finalized and its
	// explanation can be shown.
	StateAnswerChecked

	// StateCompleted means every question is finalized.
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateAwaitingAnswer:
		return "awaiting-answer"
	case StateAnswerChecked:
		return "answer-checked"
	case StateCompleted:
		return "completed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// idleThreshold is how long without input before active-time accrual
// pauses. Walking away from a live question stops the engagement clock
// but not the question countdown.
const idleThreshold = 60 * time.Second

// ErrNoSelection is returned by Check when nothing is selected and the
// question has not timed out.
var ErrNoSelection = errors.New("no option selected")

// Session owns the state for one assessment run: the fixed question set,
// the accumulating answer records, and the per-question countdown. It is
// driven from a single event loop and is not safe for concurrent use.
//
// The countdown is tick-driven: the owner calls Tick once per second and
// the session fires the timeout transition itself when the countdown
// reaches zero. Dispose detaches the session from its driver so a tick
// delivered after teardown cannot finalize anything.
type Session struct {
	questions []questiongen.Question
	answers   []AnswerRecord

	state    State
	index    int
	selected *int
	timedOut bool

	remaining     int
	questionStart time.Time

	activeTime time.Duration
	lastInput  time.Time

	disposed bool

	now func() time.Time
}

// NewSession starts a session over the given question order. The first
// question's countdown begins immediately.
func NewSession(questions []questiongen.Question) (*Session, error) {
	return NewSessionWithClock(questions, time.Now)
}

// NewSessionWithClock is NewSession with an injected clock, so tests can
// advance time deterministically.
func NewSessionWithClock(questions []questiongen.Question, now func() time.Time) (*Session, error) {
	if len(questions) == 0 {
		return nil, errors.New("session needs at least one question")
	}

	start := now()
	return &Session{
		questions:     questions,
		answers:       make([]AnswerRecord, 0, len(questions)),
		state:         StateAwaitingAnswer,
		remaining:     questions[0].ExpectedSeconds,
		questionStart: start,
		lastInput:     start,
		now:           now,
	}, nil
}

// State returns the current collector state.
func (s *Session) State() State { return s.state }

// Index returns the current question's position.
func (s *Session) Index() int { return s.index }

// Current returns the question now being asked or shown.
func (s *Session) Current() questiongen.Question {
	return s.questions[s.index]
}

// Questions returns the session's question order.
func (s *Session) Questions() []questiongen.Question { return s.questions }

// Answers returns the records finalized so far.
func (s *Session) Answers() []AnswerRecord { return s.answers }

// Selected returns the currently selected option, or nil.
func (s *Session) Selected() *int { return s.selected }

// Remaining returns the seconds left on the current question's countdown.
func (s *Session) Remaining() int { return s.remaining }

// TimedOut reports whether the current question was finalized by its
// countdown rather than by the user.
func (s *Session) TimedOut() bool { return s.timedOut }

// Select picks (or re-picks) an option on the live question. Selecting
// does not finalize anything; the state stays AwaitingAnswer until Check.
func (s *Session) Select(option int) error {
	if s.state != StateAwaitingAnswer {
		return fmt.Errorf("select: state is %s, not %s", s.state, StateAwaitingAnswer)
	}
	if option < 0 || option >= len(s.Current().Options) {
		return fmt.Errorf("select: option %d out of range", option)
	}

	o := option
	s.selected = &o
	s.Touch()
	return nil
}

// Check finalizes the current question with the selected option and moves
// to AnswerChecked. Requires a selection unless the countdown already
// expired.
func (s *Session) Check() error {
	if s.state != StateAwaitingAnswer {
		return fmt.Errorf("check: state is %s, not %s", s.state, StateAwaitingAnswer)
	}
	if s.selected == nil && !s.timedOut {
		return ErrNoSelection
	}

	s.finalize()
	s.Touch()
	return nil
}

// Timeout finalizes the current question without user action, recording
// whatever was selected (possibly nothing). It is a no-op outside
// AwaitingAnswer, so a stale timer firing after a manual check is safe.
func (s *Session) Timeout() {
	if s.disposed || s.state != StateAwaitingAnswer {
		return
	}
	s.timedOut = true
	s.finalize()
}

func (s *Session) finalize() {
	elapsed := int(s.now().Sub(s.questionStart).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}

	s.answers = append(s.answers, AnswerRecord{
		QuestionIndex:    s.index,
		ChosenIndex:      s.selected,
		TimeSpentSeconds: elapsed,
	})
	s.state = StateAnswerChecked
}

// Next advances past a checked question: to the next question's countdown,
// or to Completed when the checked question was the last one.
func (s *Session) Next() error {
	if s.state != StateAnswerChecked {
		return fmt.Errorf("next: state is %s, not %s", s.state, StateAnswerChecked)
	}

	s.Touch()
	s.selected = nil
	s.timedOut = false

	if s.index == len(s.questions)-1 {
		s.state = StateCompleted
		s.remaining = 0
		return nil
	}

	s.index++
	s.state = StateAwaitingAnswer
	s.remaining = s.Current().ExpectedSeconds
	s.questionStart = s.now()
	return nil
}

// Tick advances the session by one second of wall-clock time. It accrues
// active time unless the user has been idle past the threshold, counts
// the live question's countdown down, and fires the timeout transition
// when the countdown reaches zero. Returns true when this tick finalized
// the current question.
func (s *Session) Tick() bool {
	if s.disposed || s.state == StateCompleted {
		return false
	}

	if s.now().Sub(s.lastInput) <= idleThreshold {
		s.activeTime += time.Second
	}

	if s.state != StateAwaitingAnswer {
		return false
	}

	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		s.Timeout()
		return true
	}
	return false
}

// Touch records user input for idle detection.
func (s *Session) Touch() {
	s.lastInput = s.now()
}

// ActiveTime returns the engaged time accrued so far, excluding idle
// stretches.
func (s *Session) ActiveTime() time.Duration { return s.activeTime }

// Score returns the number of correct answers among finalized questions.
func (s *Session) Score() int {
	score := 0
	for _, a := range s.answers {
		if a.ChosenIndex != nil && *a.ChosenIndex == s.questions[a.QuestionIndex].CorrectIndex {
			score++
		}
	}
	return score
}

// Dispose detaches the session from its event loop: all further ticks and
// timeouts are no-ops. Call on screen teardown or session reset so a
// queued timer message cannot mutate a dead session.
func (s *Session) Dispose() {
	s.disposed = true
}
