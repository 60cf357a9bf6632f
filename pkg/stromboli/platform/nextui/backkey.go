// Package nextui provides the hardware back-key event source for devices
// running the NextUI custom firmware, reading the key directly from the
// Linux input device.
package nextui

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli"
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/constants"
	"github.com/BrandonKowalski/stromboli/pkg/stromboli/internal"
	"github.com/holoplot/go-evdev"
)

// BackKeyConfig locates the hardware back key.
type BackKeyConfig struct {
	DevicePath string        // Input device to read, e.g. /dev/input/event1
	KeyCode    evdev.EvCode  // Key code delivered by the back key
	Cooldown   time.Duration // Minimum gap between delivered presses
}

// DefaultBackKeyConfig returns the back-key configuration for the detected
// platform. TG5050 devices expose buttons on /dev/input/event2, all others
// on /dev/input/event1.
func DefaultBackKeyConfig() BackKeyConfig {
	devicePath := "/dev/input/event1"
	platformEnv := strings.ToUpper(os.Getenv(constants.PlatformEnvVar))
	if strings.Contains(platformEnv, "TG5050") {
		devicePath = "/dev/input/event2"
	}
	return BackKeyConfig{
		DevicePath: devicePath,
		KeyCode:    evdev.KEY_BACK,
		Cooldown:   constants.DefaultBackCooldown,
	}
}

// BackKey is a platform.BackSource backed by an evdev input device. Each
// subscription opens the device and reads it on its own goroutine; the
// cancel function closes the device, which ends the read loop.
type BackKey struct {
	cfg BackKeyConfig
}

// NewBackKey creates a back-key source for the given configuration.
func NewBackKey(cfg BackKeyConfig) *BackKey {
	if cfg.Cooldown == 0 {
		cfg.Cooldown = constants.DefaultBackCooldown
	}
	return &BackKey{cfg: cfg}
}

// SubscribeBack implements platform.BackSource.
func (b *BackKey) SubscribeBack(fn func()) (func(), error) {
	device, err := evdev.Open(b.cfg.DevicePath)
	if err != nil {
		return nil, stromboli.NewInfrastructureError("open_input_device", err)
	}

	go b.readLoop(device, fn)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			device.Close()
		})
	}
	return cancel, nil
}

func (b *BackKey) readLoop(device *evdev.InputDevice, fn func()) {
	var lastPress time.Time
	for {
		event, err := device.ReadOne()
		if err != nil {
			// Device closed by cancel, or unplugged.
			internal.GetInternalLogger().Debug("back key read loop ended",
				"device", b.cfg.DevicePath, "error", err)
			return
		}
		if event.Type != evdev.EV_KEY || event.Code != b.cfg.KeyCode || event.Value != 1 {
			continue
		}
		if time.Since(lastPress) < b.cfg.Cooldown {
			continue
		}
		lastPress = time.Now()
		fn()
	}
}
