package domain

import (
	"time"

	"github.com/google/uuid"
)

// Click is one recorded visit to a link's redirect endpoint. It is never
// updated and is kept when its link is deleted.
type Click struct {
	ID         uuid.UUID `json:"id"`
	LinkID     uuid.UUID `json:"linkId"`
	IP         string    `json:"ip"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	Region     string    `json:"region"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	ISP        string    `json:"isp"`
	Referrer   *string   `json:"referrer"`
	UserAgent  string    `json:"userAgent"`
	DeviceType string    `json:"deviceType"`
	Browser    string    `json:"browser"`
	ClickedAt  time.Time `json:"clickedAt"`
}

// ClickEvent is the raw visit captured on the redirect path, before
// enrichment.
type ClickEvent struct {
	LinkID    uuid.UUID `json:"linkId"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	Referrer  *string   `json:"referrer,omitempty"`
	ClickedAt time.Time `json:"clickedAt"`
}

// GeoInfo is the location data returned by the geo lookup service.
type GeoInfo struct {
	City      string
	Country   string
	Region    string
	Latitude  float64
	Longitude float64
	ISP       string
}

// DeviceInfo is the classification of a User-Agent header.
type DeviceInfo struct {
	DeviceType string
	Browser    string
}

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"

	// UnknownUserAgent is recorded when the visitor sent no User-Agent.
	UnknownUserAgent = "Unknown"
)
