package patch

import "strings"

// ReplaceBlock swaps the content between the first start/end marker pair in
// text (markers included) for start+"\n"+block+"\n"+end. When either marker
// is absent the whole block is appended to the trimmed document after a
// blank line, so the operation always succeeds and is idempotent when
// re-run with the same block.
func ReplaceBlock(text, start, end, block string) string {
	replacement := start + "\n" + block + "\n" + end

	si := strings.Index(text, start)
	if si >= 0 {
		rest := text[si+len(start):]
		if ei := strings.Index(rest, end); ei >= 0 {
			tail := rest[ei+len(end):]
			return text[:si] + replacement + tail
		}
	}

	return strings.TrimRight(text, " \t\r\n") + "\n\n" + replacement + "\n"
}
