// Package parallel splits per-row image work across a goroutine pool.
package parallel
