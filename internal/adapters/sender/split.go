package sender

// splitMessage cuts text into chunks of at most limit runes, preferring to
// break after the last newline of a chunk.
func splitMessage(text string, limit int) []string {
	runes := []rune(text)

	var chunks []string
	for len(runes) > limit {
		end := limit
		for i := limit - 1; i > 0; i-- {
			if runes[i] == '\n' {
				end = i + 1
				break
			}
		}

		chunks = append(chunks, string(runes[:end]))
		runes = runes[end:]
	}

	return append(chunks, string(runes))
}
