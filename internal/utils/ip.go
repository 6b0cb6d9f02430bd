package utils

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealClientIP resolves the client IP behind common reverse proxies.
func GetRealClientIP(c *gin.Context) string {
	ipHeaders := []string{
		"CF-Connecting-IP",
		"X-Real-IP",
		"X-Forwarded-For",
		"X-Client-IP",
		"Forwarded",
	}

	for _, header := range ipHeaders {
		ipList := c.Request.Header.Get(header)
		if ipList == "" {
			continue
		}
		// X-Forwarded-For may hold several IPs; take the first valid one
		for _, ip := range strings.Split(ipList, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" && isValidIP(ip) {
				return ip
			}
		}
	}

	ip, _, err := net.SplitHostPort(strings.TrimSpace(c.Request.RemoteAddr))
	if err == nil && isValidIP(ip) {
		return ip
	}
	return ""
}

func isValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

// IPAllowed checks ip against a comma-separated allowlist of IPs and CIDRs.
// An empty allowlist allows everything.
func IPAllowed(ip, allowlist string) bool {
	if strings.TrimSpace(allowlist) == "" {
		return true
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, entry := range strings.Split(allowlist, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			if _, cidr, err := net.ParseCIDR(entry); err == nil && cidr.Contains(parsed) {
				return true
			}
			continue
		}
		if allowed := net.ParseIP(entry); allowed != nil && allowed.Equal(parsed) {
			return true
		}
	}
	return false
}
