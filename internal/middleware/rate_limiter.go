package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/rafaelmsj/commandSystem/internal/apierror"

	"github.com/gin-gonic/gin"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	loginRateMap = make(map[string]*rateEntry)
	apiRateMap   = make(map[string]*rateEntry)
	rateMapMu    sync.Mutex
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return limitByIP(loginRateMap, 20, time.Minute,
		"Muitas tentativas de login. Tente novamente em 1 minuto.")
}

// RateLimiter returns a general-purpose sliding-window limiter per IP.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return limitByIP(apiRateMap, limit, window,
		"Muitas requisições. Tente novamente em instantes.")
}

func limitByIP(table map[string]*rateEntry, limit int, window time.Duration, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rateMapMu.Lock()
		entry, exists := table[ip]
		if !exists {
			entry = &rateEntry{}
			table[ip] = entry
		}
		rateMapMu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// Expired entries are purged periodically so IPs that never return do not
// accumulate forever.
const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		rateMapMu.Lock()
		for _, table := range []map[string]*rateEntry{loginRateMap, apiRateMap} {
			for ip, entry := range table {
				entry.mu.Lock()
				if now.After(entry.windowEnd) {
					delete(table, ip)
				}
				entry.mu.Unlock()
			}
		}
		rateMapMu.Unlock()
	}
}
