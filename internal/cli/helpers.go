package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

func parsePercent(s string) (int, error) {
	pct, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q", s)
	}
	if pct < 0 || pct > 100 {
		return 0, fmt.Errorf("percentage must be between 0 and 100, got %d", pct)
	}
	return pct, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

func validateDate(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	_, err := parseDate(s)
	return err
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	_, err := parseDate(s)
	return err
}
