package useragent

import (
	ua "github.com/mileusna/useragent"

	"snaplink/internal/core/domain"
)

// Detector classifies User-Agent headers with mileusna/useragent.
type Detector struct{}

// NewDetector returns a Detector.
func NewDetector() Detector { return Detector{} }

// Detect maps the header to a device class and browser name. Bots win over
// every other class; anything unrecognised is reported as unknown.
func (Detector) Detect(userAgent string) domain.DeviceInfo {
	parsed := ua.Parse(userAgent)

	info := domain.DeviceInfo{DeviceType: domain.DeviceUnknown, Browser: parsed.Name}
	switch {
	case parsed.Bot:
		info.DeviceType = domain.DeviceBot
	case parsed.Tablet:
		info.DeviceType = domain.DeviceTablet
	case parsed.Mobile:
		info.DeviceType = domain.DeviceMobile
	case parsed.Desktop:
		info.DeviceType = domain.DeviceDesktop
	}
	if info.Browser == "" {
		info.Browser = domain.UnknownUserAgent
	}
	return info
}
