// Package fixture provides canned in-memory implementations of the source
// interfaces, standing in for the undeployed backend microservices.
package fixture

import (
	"context"
	"time"
)

// Latency simulates network round-trip time on fixture calls. Zero in tests.
var Latency = 300 * time.Millisecond

func simulateLatency(ctx context.Context) {
	if Latency <= 0 {
		return
	}
	timer := time.NewTimer(Latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
