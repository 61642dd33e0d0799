package boot

// Transcript is the append-only list of lines revealed to the user. It grows
// during the boot sequence and again when the operator retargets the feeds,
// but lines are never rewritten or removed.
type Transcript struct {
	lines []string
}

// Append adds a line to the end of the transcript.
func (t *Transcript) Append(lines ...string) {
	t.lines = append(t.lines, lines...)
}

// Lines returns a copy of the transcript so far.
func (t *Transcript) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Len returns the number of revealed lines.
func (t *Transcript) Len() int {
	return len(t.lines)
}
