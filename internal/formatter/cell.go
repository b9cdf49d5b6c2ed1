package formatter

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell renders one report cell. Course lists are joined with ", "; empty lists render as "-".
func Cell(v any) string {
	switch c := v.(type) {
	case nil:
		return "-"
	case string:
		return c
	case int:
		return strconv.Itoa(c)
	case []string:
		return JoinList(c)
	default:
		return fmt.Sprint(c)
	}
}

// JoinList renders a course list for display
func JoinList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
