package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"onebuttonprompt/internal/core"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

const (
	visitorTTL      = 3 * time.Minute
	visitorSweepDur = time.Minute
)

func (s *Server) maxBodySizeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, core.MaxBodySize)
		c.Next()
	}
}

// clientLimiter keeps one token bucket per client IP.
type clientLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newClientLimiter allows perMinute sustained requests per client. The sweep loop stops with ctx.
func newClientLimiter(ctx context.Context, perMinute, burst int) *clientLimiter {
	cl := &clientLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    max(burst, 1),
	}
	go cl.cleanupLoop(ctx)
	return cl
}

func (cl *clientLimiter) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(visitorSweepDur)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cl.sweep(time.Now())
		case <-ctx.Done():
			return
		}
	}
}

func (cl *clientLimiter) sweep(now time.Time) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	for ip, v := range cl.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(cl.visitors, ip)
		}
	}
}

func (cl *clientLimiter) allow(ip string) bool {
	cl.mu.Lock()
	v, exists := cl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	cl.mu.Unlock()
	return v.limiter.Allow()
}

func (s *Server) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.rateLimiter.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// corsMiddleware echoes the request Origin when it is in the allow-list. A "*" entry allows any origin.
func (s *Server) corsMiddleware() gin.HandlerFunc {
	allowAny := lo.Contains(s.config.CORSOrigins, core.CORSWildcard)
	allowed := lo.SliceToMap(s.config.CORSOrigins, func(origin string) (string, struct{}) {
		return origin, struct{}{}
	})

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowAny:
			c.Header("Access-Control-Allow-Origin", core.CORSWildcard)
		case origin != "":
			c.Header("Vary", "Origin")
			if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
			}
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", core.HeaderContentType+", "+core.HeaderXRequestID)
		c.Header("Access-Control-Max-Age", core.CORSMaxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware propagates X-Request-ID or assigns a fresh one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(core.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(core.ContextKeyRequestID, id)
		c.Header(core.HeaderXRequestID, id)
		c.Next()
	}
}
