// Package device drives a touchscreen through a WebDriver automation
// server (Appium or compatible). It opens a session against the target
// platform, replays strokes as W3C pointer action chains, and tears the
// session down afterwards.
package device

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

const httpTimeout = 60 * time.Second

var (
	// ErrNotFound is returned when the automation server does not know
	// the requested endpoint or session.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection
	// errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// Capabilities is the alwaysMatch capability set sent when a session is
// created.
type Capabilities map[string]any

// PlatformCapabilities returns the capability preset for a named target
// platform.
func PlatformCapabilities(platform string) (Capabilities, error) {
	switch platform {
	case "android":
		return Capabilities{
			"platformName":             "Android",
			"appium:automationName":    "UiAutomator2",
			"appium:newCommandTimeout": 300,
		}, nil
	case "ios":
		return Capabilities{
			"platformName":             "iOS",
			"appium:automationName":    "XCUITest",
			"appium:newCommandTimeout": 300,
		}, nil
	default:
		return nil, fmt.Errorf("unknown platform %q (want android or ios)", platform)
	}
}

// newHTTPClient creates an HTTP client with a timeout generous enough
// for long-running action chains.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}
