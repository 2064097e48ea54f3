package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// namedKeys maps the key names used in config files to ebiten keys.
// The names follow Bubble Tea's key strings so one keys section serves
// both frontends.
var namedKeys = map[string]ebiten.Key{
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"enter":     ebiten.KeyEnter,
	" ":         ebiten.KeySpace,
	"space":     ebiten.KeySpace,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"esc":       ebiten.KeyEscape,

	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,
}

// keyBindings resolves each button's configured names to ebiten keys.
type keyBindings [core.ButtonCount][]ebiten.Key

// resolveKeys maps config key names to ebiten keys. Names the window
// cannot represent, like ctrl combinations, are an error.
func resolveKeys(keys config.KeyConfig) (keyBindings, error) {
	var kb keyBindings
	for i, names := range keys.Bindings() {
		for _, name := range names {
			k, ok := namedKeys[strings.ToLower(name)]
			if !ok {
				return kb, fmt.Errorf("window: key %q for %s has no window equivalent", name, core.Button(i))
			}
			kb[i] = append(kb[i], k)
		}
	}
	return kb, nil
}
