package parse

import (
	"fmt"

	"github.com/tliron/commonlog"
)

// LogLevel controls how much a single lexeme or production reports while
// it runs. Levels are cumulative: LogSuccess logs successes, LogResult
// additionally logs failures, LogVerbose additionally logs entry.
type LogLevel int

const (
	LogNone LogLevel = iota
	LogDefault
	LogSuccess
	LogResult
	LogVerbose
)

// LogSpec attaches a level and a label to one lexeme or production
// handle. The label names the handle in emitted events.
type LogSpec struct {
	Level LogLevel
	Label string
}

type Outcome string

const (
	OutcomeEnter   Outcome = "enter"
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// LogEvent is one structured event emitted by the engine. Sinks are
// external collaborators; the engine only reports symbol, outcome and
// location.
type LogEvent struct {
	Symbol  string
	Outcome Outcome
	Where   Position
	Start   int
	End     int
	Message string
}

// LogSink receives engine events. Parsers and tokenizers default to a
// commonlog-backed sink but accept any function, which is what the tests
// use to observe evaluation counts.
type LogSink func(LogEvent)

// CommonLogSink forwards events to the commonlog logger of the given
// name as key/value debug messages.
func CommonLogSink(name string) LogSink {
	logger := commonlog.GetLogger(name)
	return func(e LogEvent) {
		if m := logger.NewMessage(commonlog.Debug, 0); m != nil {
			m.Set("message", e.Message)
			m.Set("symbol", e.Symbol)
			m.Set("outcome", string(e.Outcome))
			m.Set("position", e.Where.String())
			m.Send()
		}
	}
}

func successMessage(label string, from, upto Position) string {
	return fmt.Sprintf("Parsing success for '%s': from %s to %s.", label, from, upto)
}

func failureMessage(label string, at Position) string {
	return fmt.Sprintf("Unparsed production '%s': at %s.", label, at)
}
