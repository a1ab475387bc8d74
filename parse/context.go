package parse

import "sort"

type memoKey struct {
	prod any
	pos  int
}

type fltrEntry[N NodeKind[N]] struct {
	pending bool
	data    SuccessData[FltrPtr, N]
	err     error
}

type byteEntry[N NodeKind[N]] struct {
	pending bool
	data    SuccessData[int, N]
	err     error
}

// Context carries everything one parse invocation owns: the input, the
// token stream (nil under a LexerlessParser), the memo cache, the
// deepest-failure tracker and the log sink. A Context is created per
// parse and discarded on return; it is not safe for concurrent use.
type Context[T TokenKind[T], N NodeKind[N]] struct {
	Code   *Code
	Stream *TokenStream[T]

	sink  LogSink
	memoF map[memoKey]*fltrEntry[N]
	memoB map[memoKey]*byteEntry[N]

	deepest  int
	expected []string
}

func NewContext[T TokenKind[T], N NodeKind[N]](code *Code, stream *TokenStream[T], sink LogSink) *Context[T, N] {
	return &Context[T, N]{
		Code:    code,
		Stream:  stream,
		sink:    sink,
		memoF:   make(map[memoKey]*fltrEntry[N]),
		memoB:   make(map[memoKey]*byteEntry[N]),
		deepest: -1,
	}
}

// Parse evaluates a production at a structural index through the memo
// cache. Each (production, index) pair is evaluated at most once per
// parse; re-entering a pair that is still being evaluated is a direct
// left recursion and fails the parse with a configuration fault.
func (c *Context[T, N]) Parse(p Production[T, N], index FltrPtr) (SuccessData[FltrPtr, N], error) {
	key := memoKey{prod: p, pos: int(index)}
	if entry, ok := c.memoF[key]; ok {
		if entry.pending {
			return SuccessData[FltrPtr, N]{}, &ConfigurationError{
				Kind:   ConfigUnboundedRecursion,
				Symbol: p.Name(),
			}
		}
		return entry.data, entry.err
	}
	entry := &fltrEntry[N]{pending: true}
	c.memoF[key] = entry

	spec := p.LogSpec()
	start := c.Stream.At(index).Start
	c.logEnter(spec, start)

	data, err := p.ParseFiltered(c, index)
	entry.pending = false
	entry.data = data
	entry.err = err

	if err == nil {
		c.logSuccess(spec, start, c.Stream.At(data.ConsumedIndex).Start)
	} else {
		c.logFailure(spec, start)
	}
	return data, err
}

// ParseRaw evaluates a production on the raw token view. Raw-mode
// evaluations happen only inside NonStructural scopes and are not
// memoized.
func (c *Context[T, N]) ParseRaw(p Production[T, N], index StreamPtr) (SuccessData[StreamPtr, N], error) {
	spec := p.LogSpec()
	start := c.Stream.Raw(index).Start
	c.logEnter(spec, start)

	data, err := p.ParseRaw(c, index)
	if err == nil {
		c.logSuccess(spec, start, c.Stream.Raw(data.ConsumedIndex).Start)
	} else {
		c.logFailure(spec, start)
	}
	return data, err
}

// ParseBytes evaluates a production directly over input bytes, memoized
// like Parse.
func (c *Context[T, N]) ParseBytes(p Production[T, N], pointer int) (SuccessData[int, N], error) {
	key := memoKey{prod: p, pos: pointer}
	if entry, ok := c.memoB[key]; ok {
		if entry.pending {
			return SuccessData[int, N]{}, &ConfigurationError{
				Kind:   ConfigUnboundedRecursion,
				Symbol: p.Name(),
			}
		}
		return entry.data, entry.err
	}
	entry := &byteEntry[N]{pending: true}
	c.memoB[key] = entry

	spec := p.LogSpec()
	c.logEnter(spec, pointer)

	data, err := p.ParseBytes(c, pointer)
	entry.pending = false
	entry.data = data
	entry.err = err

	if err == nil {
		c.logSuccess(spec, pointer, data.ConsumedIndex)
	} else {
		c.logFailure(spec, pointer)
	}
	return data, err
}

// RecordMismatch notes that a terminal demanded symbol at the byte
// pointer and did not find it. The tracker keeps the furthest failure
// and the set of symbols expected there; Union and Suffixes therefore
// surface the deepest alternative without bookkeeping of their own.
func (c *Context[T, N]) RecordMismatch(symbol string, pointer int) {
	if pointer > c.deepest {
		c.deepest = pointer
		c.expected = c.expected[:0]
	}
	if pointer == c.deepest {
		for _, s := range c.expected {
			if s == symbol {
				return
			}
		}
		c.expected = append(c.expected, symbol)
	}
}

// DeepestFailure returns the tracker state: the furthest byte pointer a
// terminal failed at and the sorted symbols expected there.
func (c *Context[T, N]) DeepestFailure() (int, []string) {
	expected := make([]string, len(c.expected))
	copy(expected, c.expected)
	sort.Strings(expected)
	return c.deepest, expected
}

func (c *Context[T, N]) logEnter(spec LogSpec, start int) {
	if c.sink == nil || spec.Level < LogVerbose {
		return
	}
	c.sink(LogEvent{
		Symbol:  spec.Label,
		Outcome: OutcomeEnter,
		Where:   c.Code.Position(start),
		Start:   start,
		End:     start,
		Message: "Entering '" + spec.Label + "'",
	})
}

func (c *Context[T, N]) logSuccess(spec LogSpec, start, end int) {
	if c.sink == nil || spec.Level < LogSuccess {
		return
	}
	c.sink(LogEvent{
		Symbol:  spec.Label,
		Outcome: OutcomeSuccess,
		Where:   c.Code.Position(start),
		Start:   start,
		End:     end,
		Message: successMessage(spec.Label, c.Code.Position(start), c.Code.Position(end)),
	})
}

func (c *Context[T, N]) logFailure(spec LogSpec, start int) {
	if c.sink == nil || spec.Level < LogResult {
		return
	}
	c.sink(LogEvent{
		Symbol:  spec.Label,
		Outcome: OutcomeFailure,
		Where:   c.Code.Position(start),
		Start:   start,
		End:     start,
		Message: failureMessage(spec.Label, c.Code.Position(start)),
	})
}
