// Package health exposes liveness and readiness endpoints.
package health

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Checker tracks process health state. Liveness is unconditional;
// readiness flips off while the server drains during shutdown so load
// balancers stop routing new work here.
type Checker struct {
	startTime time.Time

	mu    sync.RWMutex
	ready bool
}

// NewChecker creates a checker that reports ready.
func NewChecker() *Checker {
	return &Checker{
		startTime: time.Now(),
		ready:     true,
	}
}

// SetReady sets the readiness state.
func (c *Checker) SetReady(ready bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ready = ready
}

// Ready reports the readiness state.
func (c *Checker) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// LiveHandler serves GET /health.
func (c *Checker) LiveHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(c.startTime).String(),
	})
}

// ReadyHandler serves GET /ready.
func (c *Checker) ReadyHandler(ctx *gin.Context) {
	if !c.Ready() {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "draining"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
