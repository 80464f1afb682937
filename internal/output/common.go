package output

// MaxCell caps text-table cells; long sequences are cut with an ellipsis.
const MaxCell = 60

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
