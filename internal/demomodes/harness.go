package demomodes

import "github.com/loamwood/vimengine/internal/vimcore"

// NoSettings is a vimcore.GlobalSettings whose disable key is the zero
// KeyInput, which equals vimcore.Nop(): no printable or named key
// disables the engine, and a Nop keystroke is taken as the disable key.
// vimconfig.Settings provides a configurable disable key.
type NoSettings struct{}

func (NoSettings) DisableCommand() vimcore.KeyInput { return vimcore.KeyInput{} }

var _ vimcore.GlobalSettings = NoSettings{}

// Harness bundles a Buffer with a registry of the four demo modes and
// the InputEngine driving them, for callers (tests, cmd/vimengine) that
// just want a ready-to-use engine rather than wiring each piece by hand.
type Harness struct {
	Buffer  *Buffer
	Jumps   *JumpList
	Registry *vimcore.ModeRegistry
	Engine  *vimcore.InputEngine
}

// New builds a Harness. cfg lets the caller override Settings, Table,
// and Sink; Registry and TextBuffer/JumpList are always the demo ones.
func New(lines []string, cfg vimcore.Config) (*Harness, error) {
	buf := NewBuffer(lines...)
	jumps := &JumpList{}

	registry := vimcore.NewModeRegistry()
	registry.Add(NewNormal(buf))
	registry.Add(NewInsert(buf))
	registry.Add(NewVisual(buf, vimcore.ModeVisualCharacter))
	registry.Add(NewVisual(buf, vimcore.ModeVisualLine))
	registry.Add(NewCommand(buf))

	cfg.Registry = registry
	cfg.TextBuffer = buf
	cfg.JumpList = jumps
	if cfg.Settings == nil {
		cfg.Settings = NoSettings{}
	}

	engine := vimcore.New(cfg)
	if _, err := engine.SwitchMode(vimcore.ModeNormal, nil); err != nil {
		return nil, err
	}

	return &Harness{Buffer: buf, Jumps: jumps, Registry: registry, Engine: engine}, nil
}
