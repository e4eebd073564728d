package fsutils

import "strconv"

var sizeUnits = []string{"KB", "MB", "GB", "TB", "PB"}

// FormatSize returns a short human readable size, rounded to the nearest unit.
func FormatSize(size uint64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatUint(size, 10) + "B"
	}
	div, exp := uint64(unit), 0
	for n := size / unit; n >= unit && exp < len(sizeUnits)-1; n /= unit {
		div *= unit
		exp++
	}
	val := (size + div/2) / div
	if val >= unit && exp < len(sizeUnits)-1 {
		val /= unit
		exp++
	}
	return strconv.FormatUint(val, 10) + sizeUnits[exp]
}
