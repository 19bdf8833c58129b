// Package output renders evaluation payloads and catalog records as
// tables for the terminal or JSON for machine consumers.
package output

import "fmt"

// Output writes data in the specified format
func Output(format string, data interface{}) error {
	switch format {
	case "json":
		return JSON(data)
	case "table", "":
		return Table(data)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
