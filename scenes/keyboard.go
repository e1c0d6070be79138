package scenes

import (
	"fmt"

	cfg "github.com/automoto/platformer-core/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Keyboard is the windowed host's input source. It resolves the configured
// key names once and then polls ebiten every tick.
type Keyboard struct {
	keys [cfg.ActionCount][]ebiten.Key
}

// NewKeyboard builds a keyboard source from bindings. Key names follow
// ebiten's Key.String form ("ArrowLeft", "A").
func NewKeyboard(bindings map[cfg.ActionID]cfg.InputBinding) (*Keyboard, error) {
	kb := &Keyboard{}
	for action, binding := range bindings {
		if action <= cfg.ActionNone || action >= cfg.ActionCount {
			return nil, fmt.Errorf("binding for unknown action %d", action)
		}
		for _, name := range binding.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("action %s: key %q: %w", action, name, err)
			}
			kb.keys[action] = append(kb.keys[action], k)
		}
	}
	return kb, nil
}

func (kb *Keyboard) IsActionPressed(action cfg.ActionID) bool {
	if action <= cfg.ActionNone || action >= cfg.ActionCount {
		return false
	}
	return anyKeyPressed(kb.keys[action])
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
