package common

// CompareBytes compares two byte strings lexicographically. It returns -1 if
// a sorts before b, 1 if a sorts after b and 0 if they are equal. Used for
// deterministic ordering of account identifiers.
func CompareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
