package assess

import (
	"time"

	"github.com/arjunvk/levelcheck/internal/questiongen"
)

// setReadyMsg is sent when the session question set has been built.
type setReadyMsg struct {
	Questions []questiongen.Question
	Err       error
}

// timerTickMsg is sent every second to drive the countdown and active
// time accrual.
type timerTickMsg time.Time
