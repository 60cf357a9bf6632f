// Package platform defines the event sources the navigation container
// consumes: hardware back-button presses and deep-link URLs. Subscriptions
// are scoped resources: Subscribe returns a cancel function the subscriber
// must call on teardown, and cancel is safe to call more than once.
//
// The Bus type is an in-memory implementation for hosts that synthesize
// events themselves and for tests. The sdlinput and nextui subpackages
// provide device-backed implementations.
package platform

import "context"

// BackSource delivers hardware back-navigation events. The callback is
// invoked with no payload, once per press.
type BackSource interface {
	SubscribeBack(fn func()) (cancel func(), err error)
}

// LinkSource delivers deep-link URLs.
//
// SubscribeURL registers a callback for URLs opened while the application is
// running. InitialURL looks up the URL the application was launched with, if
// any; it may block and is called from its own goroutine, with no ordering
// guarantee relative to other events. An empty string means no pending URL.
type LinkSource interface {
	SubscribeURL(fn func(url string)) (cancel func(), err error)
	InitialURL(ctx context.Context) (string, error)
}
