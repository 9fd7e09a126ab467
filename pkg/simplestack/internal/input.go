package internal

import (
	"context"
	"fmt"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/simplestack/pkg/simplestack/constants"
)

const keyPressed = 1

// ButtonForEvent maps a raw input event to a virtual button.
// Only key presses are mapped; releases and repeats are ignored.
func ButtonForEvent(ev evdev.InputEvent) (constants.VirtualButton, bool) {
	if ev.Type != evdev.EV_KEY || ev.Value != keyPressed {
		return constants.VirtualButtonUnassigned, false
	}

	switch ev.Code {
	case evdev.KEY_UP, evdev.BTN_DPAD_UP:
		return constants.VirtualButtonUp, true
	case evdev.KEY_DOWN, evdev.BTN_DPAD_DOWN:
		return constants.VirtualButtonDown, true
	case evdev.KEY_LEFT, evdev.BTN_DPAD_LEFT:
		return constants.VirtualButtonLeft, true
	case evdev.KEY_RIGHT, evdev.BTN_DPAD_RIGHT:
		return constants.VirtualButtonRight, true
	case evdev.KEY_ENTER, evdev.KEY_SPACE, evdev.BTN_SOUTH:
		return constants.VirtualButtonA, true
	case evdev.KEY_ESC, evdev.KEY_BACKSPACE, evdev.BTN_EAST:
		return constants.VirtualButtonB, true
	case evdev.BTN_START:
		return constants.VirtualButtonStart, true
	case evdev.BTN_SELECT:
		return constants.VirtualButtonSelect, true
	case evdev.KEY_MENU, evdev.BTN_MODE:
		return constants.VirtualButtonMenu, true
	default:
		return constants.VirtualButtonUnassigned, false
	}
}

// ListenDevice reads key presses from the evdev device at path and calls fn
// for every mapped button until ctx is done. It returns nil when ctx ends
// the loop.
func ListenDevice(ctx context.Context, path string, fn func(constants.VirtualButton)) error {
	dev, err := evdev.Open(path)
	if err != nil {
		return fmt.Errorf("open input device %s: %w", path, err)
	}
	defer dev.Close()

	stop := context.AfterFunc(ctx, func() { _ = dev.Close() })
	defer stop()

	GetInternalLogger().Debug("listening for input", "device", path)

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read input device %s: %w", path, err)
		}
		if button, ok := ButtonForEvent(*ev); ok {
			fn(button)
		}
	}
}
