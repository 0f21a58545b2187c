package scanner

// Fields walks sep-delimited substrings of payload without allocating.
// The callback returns false to stop early. Empty payload yields no fields;
// adjacent separators yield empty fields.
func Fields(payload string, sep byte, fn func(field string) bool) {
	if len(payload) == 0 {
		return
	}
	start := 0
	for i := 0; i < len(payload); i++ {
		if payload[i] != sep {
			continue
		}
		if !fn(payload[start:i]) {
			return
		}
		start = i + 1
	}
	fn(payload[start:])
}

// CountFields returns the number of sep-delimited fields in payload.
func CountFields(payload string, sep byte) int {
	if len(payload) == 0 {
		return 0
	}
	n := 1
	for i := 0; i < len(payload); i++ {
		if payload[i] == sep {
			n++
		}
	}
	return n
}

// Cut splits payload around the first occurrence of sep.
func Cut(payload string, sep byte) (left, right string, found bool) {
	for i := 0; i < len(payload); i++ {
		if payload[i] == sep {
			return payload[:i], payload[i+1:], true
		}
	}
	return payload, "", false
}

// Shift splits off the first space-separated token.
func Shift(payload string) (token, rest string) {
	payload = TrimSpace(payload)
	for i := 0; i < len(payload); i++ {
		if IsSpace(payload[i]) {
			return payload[:i], TrimSpace(payload[i+1:])
		}
	}
	return payload, ""
}

// TrimSpace trims leading and trailing whitespace.
func TrimSpace(payload string) string {
	start := 0
	for start < len(payload) && IsSpace(payload[start]) {
		start++
	}
	end := len(payload)
	for end > start && IsSpace(payload[end-1]) {
		end--
	}
	return payload[start:end]
}

func IsSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
