// Package constants defines shared constants and configuration values used
// throughout the stromboli navigation layer.
package constants

import "time"

// DefaultURIPrefix is the delimiter used to split deep-link URLs into a
// prefix and a path when no explicit URI prefix is configured.
const DefaultURIPrefix = "://"

// LaunchURLEnvVar is the environment variable a launcher sets to hand the
// application a deep link to open on startup.
const LaunchURLEnvVar = "LAUNCH_URL"

// PlatformEnvVar is the environment variable naming the device platform,
// used to pick hardware input device paths.
const PlatformEnvVar = "PLATFORM"

// Default timing constants.
const (
	DefaultBackCooldown = 200 * time.Millisecond // Minimum gap between hardware back presses
)
