// Package logging wires go-kasumi's logger facade to charmbracelet/log.
package logging
