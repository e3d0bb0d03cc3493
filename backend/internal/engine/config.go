package engine

// ToneRule names the tone-placement style.
type ToneRule int

const (
	// ToneRuleOld is the traditional rule (quy tắc cũ): hòa, của, mùa.
	ToneRuleOld ToneRule = iota
	// ToneRuleNew is the modern rule (quy tắc mới): hoà, của, mùa.
	ToneRuleNew
)

func (r ToneRule) String() string {
	if r == ToneRuleOld {
		return "old"
	}
	return "new"
}

// EngineConfig holds the configuration options Engine exposes through
// SetMethod/SetModern/SetEnabled, gathered in one place so a host only
// needs to track a single value.
type EngineConfig struct {
	MethodName string // "Telex" or "VNI"
	ToneRule   ToneRule
	Enabled    bool
}

// DefaultConfig returns the engine's default configuration: Telex,
// modern tone rule, enabled — matching Engine.New()'s defaults.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		MethodName: "Telex",
		ToneRule:   ToneRuleNew,
		Enabled:    true,
	}
}

// ConfiguredEngine pairs an Engine with the EngineConfig that drives
// it, so a host only needs to persist/restore one small value (see
// backend/internal/config for the on-disk form).
type ConfiguredEngine struct {
	*Engine
	config *EngineConfig
}

// NewConfiguredEngine builds an Engine and applies config to it.
func NewConfiguredEngine(config *EngineConfig) *ConfiguredEngine {
	if config == nil {
		config = DefaultConfig()
	}
	ce := &ConfiguredEngine{Engine: New(), config: config}
	ce.applyConfig()
	return ce
}

func (e *ConfiguredEngine) applyConfig() {
	if e.config.MethodName == "VNI" {
		e.SetMethod(MethodVNI)
	} else {
		e.SetMethod(MethodTelex)
	}
	e.SetModern(e.config.ToneRule == ToneRuleNew)
	e.SetEnabled(e.config.Enabled)
}

// SetConfig replaces the configuration and re-applies it to the engine.
func (e *ConfiguredEngine) SetConfig(config *EngineConfig) {
	e.config = config
	e.applyConfig()
}

// GetConfig returns the current configuration.
func (e *ConfiguredEngine) GetConfig() *EngineConfig {
	return e.config
}

// SetToneRule sets the tone placement rule on both the config and engine.
func (e *ConfiguredEngine) SetToneRule(rule ToneRule) {
	e.config.ToneRule = rule
	e.SetModern(rule == ToneRuleNew)
}

// UsesModernToneRule returns true if using the modern tone placement rule.
func (e *ConfiguredEngine) UsesModernToneRule() bool {
	return e.config.ToneRule == ToneRuleNew
}
