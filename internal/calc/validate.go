package calc

// BracketsOpen is the live check run after every edit: it fails only when a
// ")" closes more brackets than have been opened so far. Unclosed brackets
// are fine while typing; Sanitize enforces exact balance at evaluation time.
func BracketsOpen(expr string) bool {
	depth := 0
	for _, r := range expr {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return true
}
