// Package behaviors ships the stock concrete behaviors built on the observer
// bases: cached degree counting, dirty marking, structural change logging,
// and event recording. They double as reference implementations for writing
// new behaviors.
package behaviors
