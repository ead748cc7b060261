// Package process cleans up the headless browser's process tree, which
// outlives a plain Kill of the launcher when Chrome forks helpers.
package process
