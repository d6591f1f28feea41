package lsp

// EncodeSemanticTokens turns SemToks into the LSP delta-encoded uint32
// stream: (deltaLine, deltaStart, length, type, modifiers) per token.
// Input must already be in source order, which is how the lexer emits it.
func EncodeSemanticTokens(toks []SemTok) []uint32 {
	data := make([]uint32, 0, len(toks)*5)

	// Deltas are relative to the previous token, 0-based.
	prevLine := 0
	prevCol := 0

	for _, t := range toks {
		if t.Length <= 0 {
			continue
		}

		line := t.Line - 1
		col := t.Col - 1

		deltaLine := line - prevLine
		deltaStart := col
		if deltaLine == 0 {
			deltaStart = col - prevCol
		}

		data = append(data,
			uint32(deltaLine),
			uint32(deltaStart),
			uint32(t.Length),
			uint32(t.Type),
			0,
		)

		prevLine = line
		prevCol = col
	}

	return data
}
