// Package lifecycle holds shutdown settings shared by deliveries and infra.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
