package domain

import (
	"fmt"
	"math"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders bytes with base-1024 units and one decimal place.
func FormatSize(bytes uint64) string {
	if bytes == 0 {
		return "Unknown"
	}

	value := float64(bytes)
	unit := 0
	// Compare the rounded value so 1023.96 KB prints as 1.0 MB.
	for math.Round(value*10)/10 >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}
