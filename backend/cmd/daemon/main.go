package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/lehuyvn/vnime-core/internal/config"
	"github.com/lehuyvn/vnime-core/internal/engine"
)

const (
	serviceName = "com.github.goviet.ime"
	objectPath  = "/Engine"
)

// Fcitx5 modifier bits, passed straight through from the frontend.
const (
	modShift   uint32 = 1 << 0
	modControl uint32 = 1 << 2
	modMod1    uint32 = 1 << 3
)

// InputEngine is the D-Bus object that receives key events from Fcitx5.
type InputEngine struct {
	engine *engine.ConfiguredEngine
	logger *log.Logger
}

// NewInputEngine creates a new InputEngine from a persisted config.
func NewInputEngine(logger *log.Logger, cfg *engine.EngineConfig) *InputEngine {
	return &InputEngine{
		engine: engine.NewConfiguredEngine(cfg),
		logger: logger,
	}
}

// ProcessKey handles a key event from Fcitx5: keysym is the X11 keysym
// (which doubles as engine.KeyCode for every code the core recognizes,
// see keys.go), modifiers carries the Shift/Ctrl/Alt bitmask above.
// Returns whether the key was handled, how many codepoints to delete
// from the tail of the current composition, and what to insert in
// their place.
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, uint32, string, *dbus.Error) {
	caps := modifiers&modShift != 0
	ctrl := modifiers&modControl != 0 || modifiers&modMod1 != 0

	result := e.engine.OnKey(engine.KeyCode(keysym), caps, ctrl)

	if e.logger != nil {
		e.logger.Printf("key=0x%x caps=%v ctrl=%v action=%v backspace=%d insert=%q",
			keysym, caps, ctrl, result.Action, result.Backspace, string(result.Chars[:result.Count]))
	}

	if result.Action != engine.ActionSend {
		return false, 0, "", nil
	}
	return true, uint32(result.Backspace), string(result.Chars[:result.Count]), nil
}

// Reset clears the current composition state.
func (e *InputEngine) Reset() *dbus.Error {
	e.engine.Clear()
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.engine.SetEnabled(enabled)
	e.persist()
	return nil
}

// SetMethod switches between "Telex" and "VNI". Unrecognized names are
// ignored, matching engine.SetMethod's reject-on-unknown-value rule.
func (e *InputEngine) SetMethod(name string) *dbus.Error {
	if name != "Telex" && name != "VNI" {
		return nil
	}
	cfg := e.engine.GetConfig()
	cfg.MethodName = name
	e.engine.SetConfig(cfg)
	e.persist()
	return nil
}

// SetModern toggles between the modern and old tone-placement styles.
func (e *InputEngine) SetModern(modern bool) *dbus.Error {
	if modern {
		e.engine.SetToneRule(engine.ToneRuleNew)
	} else {
		e.engine.SetToneRule(engine.ToneRuleOld)
	}
	e.persist()
	return nil
}

// GetPreedit returns the current composition's composed text.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return e.engine.Preedit(), nil
}

func (e *InputEngine) persist() {
	if err := config.Save(e.engine.GetConfig()); err != nil && e.logger != nil {
		e.logger.Printf("failed to save config: %v", err)
	}
}

func main() {
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	logFile, err := os.OpenFile("typing.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [vnime] Logging to typing.log")
	} else {
		fmt.Fprintf(os.Stderr, ">>> [vnime] Failed to open log file: %v\n", err)
	}
	defer logFile.Close()

	cfg := config.Load()
	inputEngine := NewInputEngine(logger, cfg)

	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	fmt.Println("================================================")
	fmt.Println("vnime-core backend is running!")
	fmt.Println("================================================")
	fmt.Printf("  Service:      %s\n", serviceName)
	fmt.Printf("  Object Path:  %s\n", objectPath)
	fmt.Printf("  Input Method: %s\n", cfg.MethodName)
	fmt.Printf("  Tone Rule:    %v\n", cfg.ToneRule)
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	if err := config.Save(inputEngine.engine.GetConfig()); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to save config:", err)
	}
	fmt.Println("\n>>> [vnime] Shutting down...")
}
