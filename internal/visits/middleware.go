package visits

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// skippedPrefixes are never tracked. Section fragments and search requests
// are part of a page view already recorded.
var skippedPrefixes = []string{"/static/", "/sections/", "/healthz", "/favicon"}

// ShouldTrack reports whether a request to path with the given DNT header
// is recorded.
func ShouldTrack(path, dnt string) bool {
	if dnt == "1" {
		return false
	}
	for _, prefix := range skippedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// Middleware records page views in the background. Static assets, health
// checks and Do Not Track requests are skipped.
func Middleware(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !ShouldTrack(path, c.GetHeader("DNT")) {
			c.Next()
			return
		}

		ip := c.ClientIP()
		userAgent := c.GetHeader("User-Agent")
		queryKey := c.Query("email")
		if queryKey == "" {
			queryKey = c.Query("mobile")
		}

		s.recordAsync(ip, userAgent, path, queryKey)
		c.Next()
	}
}
