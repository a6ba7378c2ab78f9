// Package middleware wraps a ports.ChartStore with cross-cutting behavior,
// such as sealing charts at rest with AES-GCM.
package middleware
