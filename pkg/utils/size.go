package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var sizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([KMG]?I?B)?$`)

var sizeMultipliers = map[string]int64{
	"":    1,
	"B":   1,
	"KB":  1024,
	"KIB": 1024,
	"MB":  1024 * 1024,
	"MIB": 1024 * 1024,
	"GB":  1024 * 1024 * 1024,
	"GIB": 1024 * 1024 * 1024,
}

// ParseSize parses size strings like "64KB", "1.5 MiB" or "4096" into bytes.
// Units are binary multiples.
func ParseSize(sizeStr string) (int64, error) {
	normalized := strings.TrimSpace(strings.ToUpper(sizeStr))

	matches := sizePattern.FindStringSubmatch(normalized)
	if matches == nil {
		return 0, fmt.Errorf("invalid size format: %q", sizeStr)
	}

	size, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %s", matches[1])
	}

	multiplier, ok := sizeMultipliers[matches[2]]
	if !ok {
		return 0, fmt.Errorf("unknown size unit: %s", matches[2])
	}

	return int64(size * float64(multiplier)), nil
}

// FormatBytes formats byte counts into human-readable strings
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 3; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}
