// Package sdlinput adapts SDL events into navigation platform events. Back
// navigation is mapped from the back keys and the controller's back button;
// deep links arrive as SDL drop events, plus the launcher environment
// variable for the initial URL.
//
// The host must have initialized SDL's event subsystem before subscribing.
package sdlinput

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/BrandonKowalski/stromboli/pkg/stromboli/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Options configures an SDL event source.
type Options struct {
	// BackKeys are the keyboard keys treated as hardware back. Defaults to
	// AC back and escape.
	BackKeys []sdl.Keycode

	// BackButton is the controller button treated as hardware back.
	// Defaults to B.
	BackButton uint8

	// Cooldown is the minimum gap between delivered back events; presses
	// inside the window are dropped. Defaults to
	// constants.DefaultBackCooldown.
	Cooldown time.Duration

	// LaunchURLEnvVar is the environment variable consulted for the initial
	// URL. Defaults to constants.LaunchURLEnvVar.
	LaunchURLEnvVar string
}

// Source watches the SDL event stream and fans events out to subscribers.
// The event watch is installed on the first subscription and removed when
// the last one is cancelled.
type Source struct {
	opts Options

	mu       sync.Mutex
	nextID   int
	backSubs map[int]func()
	urlSubs  map[int]func(string)
	watch    sdl.EventWatchHandle
	watching bool
	lastBack time.Time
}

// New creates an SDL event source. Zero-valued options fields select the
// documented defaults.
func New(opts Options) *Source {
	if len(opts.BackKeys) == 0 {
		opts.BackKeys = []sdl.Keycode{sdl.K_AC_BACK, sdl.K_ESCAPE}
	}
	if opts.BackButton == 0 {
		opts.BackButton = uint8(sdl.CONTROLLER_BUTTON_B)
	}
	if opts.Cooldown == 0 {
		opts.Cooldown = constants.DefaultBackCooldown
	}
	if opts.LaunchURLEnvVar == "" {
		opts.LaunchURLEnvVar = constants.LaunchURLEnvVar
	}
	return &Source{
		opts:     opts,
		backSubs: make(map[int]func()),
		urlSubs:  make(map[int]func(string)),
	}
}

// SubscribeBack implements platform.BackSource.
func (s *Source) SubscribeBack(fn func()) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.backSubs[id] = fn
	s.ensureWatchLocked()
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.backSubs, id)
		s.releaseWatchLocked()
	}, nil
}

// SubscribeURL implements platform.LinkSource.
func (s *Source) SubscribeURL(fn func(string)) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.urlSubs[id] = fn
	s.ensureWatchLocked()
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.urlSubs, id)
		s.releaseWatchLocked()
	}, nil
}

// InitialURL implements platform.LinkSource. Launchers on these devices
// hand the application its deep link through the environment.
func (s *Source) InitialURL(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return os.Getenv(s.opts.LaunchURLEnvVar), nil
}

func (s *Source) ensureWatchLocked() {
	if s.watching {
		return
	}
	s.watch = sdl.AddEventWatchFunc(s.watchEvent, nil)
	s.watching = true
}

func (s *Source) releaseWatchLocked() {
	if !s.watching || len(s.backSubs) > 0 || len(s.urlSubs) > 0 {
		return
	}
	sdl.DelEventWatch(s.watch)
	s.watching = false
}

// watchEvent runs on whichever thread pushes the SDL event. It never
// filters events out; the host's own event loop still sees everything.
func (s *Source) watchEvent(event sdl.Event, _ interface{}) bool {
	switch ev := event.(type) {
	case *sdl.KeyboardEvent:
		if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 && s.isBackKey(ev.Keysym.Sym) {
			s.fireBack()
		}
	case *sdl.ControllerButtonEvent:
		if ev.Type == sdl.CONTROLLERBUTTONDOWN && ev.Button == s.opts.BackButton {
			s.fireBack()
		}
	case *sdl.DropEvent:
		if ev.Type == sdl.DROPTEXT || ev.Type == sdl.DROPFILE {
			s.fireURL(ev.File)
		}
	}
	return true
}

func (s *Source) isBackKey(key sdl.Keycode) bool {
	for _, k := range s.opts.BackKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (s *Source) fireBack() {
	s.mu.Lock()
	if time.Since(s.lastBack) < s.opts.Cooldown {
		s.mu.Unlock()
		return
	}
	s.lastBack = time.Now()
	fns := make([]func(), 0, len(s.backSubs))
	for _, fn := range s.backSubs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (s *Source) fireURL(url string) {
	s.mu.Lock()
	fns := make([]func(string), 0, len(s.urlSubs))
	for _, fn := range s.urlSubs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(url)
	}
}
