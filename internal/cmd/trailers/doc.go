// Package trailers contains Cobra CLI commands for gitmsg trailer
// parsing: `trailers parse` extracts key/value pairs from a commit
// message and `trailers locate` reports the trailer block bounds.
package trailers
