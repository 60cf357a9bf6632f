package platform

import (
	"context"
	"sync"
)

// Bus is an in-memory BackSource and LinkSource. Hosts that translate their
// own input handling into navigation events push them through a Bus; tests
// use it to synthesize platform events deterministically.
//
// A Bus is safe for concurrent use.
type Bus struct {
	mu         sync.Mutex
	nextID     int
	backSubs   map[int]func()
	urlSubs    map[int]func(string)
	initialURL string
}

// NewBus creates an empty Bus with no pending initial URL.
func NewBus() *Bus {
	return &Bus{
		backSubs: make(map[int]func()),
		urlSubs:  make(map[int]func(string)),
	}
}

// SetInitialURL sets the URL reported by InitialURL.
func (b *Bus) SetInitialURL(url string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialURL = url
}

// PressBack delivers a back event to all back subscribers.
func (b *Bus) PressBack() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.backSubs))
	for _, fn := range b.backSubs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// OpenURL delivers a URL-opened event to all URL subscribers.
func (b *Bus) OpenURL(url string) {
	b.mu.Lock()
	fns := make([]func(string), 0, len(b.urlSubs))
	for _, fn := range b.urlSubs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(url)
	}
}

// SubscribeBack implements BackSource.
func (b *Bus) SubscribeBack(fn func()) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.backSubs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.backSubs, id)
	}, nil
}

// SubscribeURL implements LinkSource.
func (b *Bus) SubscribeURL(fn func(string)) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.urlSubs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.urlSubs, id)
	}, nil
}

// InitialURL implements LinkSource. It returns the URL set with
// SetInitialURL, or empty when none is pending.
func (b *Bus) InitialURL(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initialURL, nil
}
