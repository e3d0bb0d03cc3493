package engine

// Engine is the composition engine facade: it owns the buffer and the
// method/style/enabled flags and is the single entry point (OnKey) a
// host calls per keystroke.
type Engine struct {
	buffer  Buffer
	method  Method
	modern  bool
	enabled bool
}

// New returns an engine with an empty buffer, Telex method, modern
// style, and processing enabled.
func New() *Engine {
	return &Engine{
		method:  MethodTelex,
		modern:  true,
		enabled: true,
	}
}

// SetMethod selects the active rule table and clears the buffer.
func (e *Engine) SetMethod(m Method) {
	if m != MethodTelex && m != MethodVNI {
		return // unrecognized method: no change.
	}
	e.method = m
	e.buffer.Clear()
}

// Method returns the active method.
func (e *Engine) Method() Method { return e.method }

// SetModern sets the tone-placement style. Does not clear the buffer.
func (e *Engine) SetModern(modern bool) {
	e.modern = modern
}

// Modern reports the active tone-placement style.
func (e *Engine) Modern() bool { return e.modern }

// SetEnabled toggles processing. Disabling clears the buffer.
func (e *Engine) SetEnabled(enabled bool) {
	e.enabled = enabled
	if !enabled {
		e.buffer.Clear()
	}
}

// Enabled reports whether the engine is processing keys.
func (e *Engine) Enabled() bool { return e.enabled }

// Clear empties the composition buffer.
func (e *Engine) Clear() {
	e.buffer.Clear()
}

// Preedit returns the buffer's current composed string. This
// allocates (string conversion always does); OnKey itself never calls
// it — see EditResult / sendResult in result.go.
func (e *Engine) Preedit() string {
	return e.buffer.Snapshot()
}

// OnKey is the single entry point: it classifies key via the key
// model, and either clears the buffer and passes the key through
// (break / ctrl / disabled), or dispatches to the transform engine via
// handleTrigger. Deterministic given (engine state, key, caps, ctrl).
func (e *Engine) OnKey(key KeyCode, caps bool, ctrl bool) EditResult {
	if !e.enabled {
		return noneResult()
	}

	if IsModifierCleared(ctrl) || key.IsBreak() {
		e.buffer.Clear()
		return noneResult()
	}

	if letter, ok := key.Letter(caps); ok {
		return handleTrigger(&e.buffer, e.method, e.modern, key, toLowerLetter(letter), caps)
	}
	if digit, ok := key.Digit(); ok {
		return handleTrigger(&e.buffer, e.method, e.modern, key, digit, false)
	}

	// Unreachable given IsBreak's exhaustive classification, but keep
	// the contract total rather than relying on that invariant.
	e.buffer.Clear()
	return noneResult()
}

func toLowerLetter(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 32
	}
	return r
}
