package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"taberu_api_ms/domain"

	"github.com/gofiber/fiber/v2"
)

// Fingerprint derives the stable device hash for an (ip, user-agent) pair.
// Deterministic and saltless: the same pair always maps to the same hash.
func Fingerprint(ip, userAgent string) string {
	sum := sha256.Sum256([]byte(ip + "|" + userAgent))
	return hex.EncodeToString(sum[:])
}

// GetClientInfo reads the transport-level client signals off the request and
// derives the device fingerprint. The claimed location is taken from the JSON
// body when present, else from lat/lng query params.
func GetClientInfo(c *fiber.Ctx) *domain.ClientInfo {
	ip := c.IP()
	if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
		ip = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}

	userAgent := c.Get(fiber.HeaderUserAgent)
	if userAgent == "" {
		userAgent = "unknown"
	}

	return &domain.ClientInfo{
		Ip:         ip,
		UserAgent:  userAgent,
		DeviceHash: Fingerprint(ip, userAgent),
		Location:   extractLocation(c),
	}
}

func extractLocation(c *fiber.Ctx) *domain.GeoPoint {
	if body := c.Body(); len(body) > 0 {
		var payload struct {
			Location *domain.GeoPoint `json:"location"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Location != nil {
			return payload.Location
		}
	}

	latParam, lngParam := c.Query("lat"), c.Query("lng")
	if latParam == "" || lngParam == "" {
		return nil
	}
	lat, latErr := strconv.ParseFloat(latParam, 64)
	lng, lngErr := strconv.ParseFloat(lngParam, 64)
	if latErr != nil || lngErr != nil {
		return nil
	}
	return &domain.GeoPoint{Latitude: lat, Longitude: lng}
}
