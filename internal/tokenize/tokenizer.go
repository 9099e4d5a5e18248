package tokenize

// IsWordChar reports whether c belongs to a word.
func IsWordChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '\'' || c == '-':
		return true
	default:
		return false
	}
}

// Position is a 1-based line and byte column.
type Position struct {
	Line int
	Col  int
}

// Start returns the position of the first byte of a file.
func Start() Position {
	return Position{Line: 1, Col: 1}
}

// Advance moves the cursor past c.
func (p *Position) Advance(c byte) {
	if c == '\n' {
		p.Line++
		p.Col = 1
		return
	}
	p.Col++
}

// Token is one word and where it starts.
type Token struct {
	Value string
	Line  int
	Col   int
	// Length is the byte length of the whole run, which exceeds len(Value)
	// when the word was longer than the tokenizer's maximum.
	Length int
}

// Truncated reports whether Value holds only a prefix of the word.
func (t Token) Truncated() bool {
	return t.Length > len(t.Value)
}

// Tokenizer is the per-file scan state. The zero value is not usable; call New.
type Tokenizer struct {
	maxLen int
	pos    Position

	inWord bool
	start  Position
	word   []byte
	length int
}

// New returns a tokenizer positioned at line 1, column 1. A maxLen below 1
// selects DefaultMaxWordLength.
func New(maxLen int) *Tokenizer {
	if maxLen < 1 {
		maxLen = DefaultMaxWordLength
	}
	return &Tokenizer{
		maxLen: maxLen,
		pos:    Start(),
		word:   make([]byte, 0, min(maxLen, 64)),
	}
}

// Position returns the cursor, i.e. where the next fed byte will land.
func (t *Tokenizer) Position() Position {
	return t.pos
}

// Feed scans chunk and appends every word it completes to dst. A word still
// open at the end of chunk is held until a later Feed or Flush closes it.
func (t *Tokenizer) Feed(dst []Token, chunk []byte) []Token {
	for i := 0; i < len(chunk); i++ {
		c := chunk[i]
		if IsWordChar(c) {
			if !t.inWord {
				t.inWord = true
				t.start = t.pos
				t.word = t.word[:0]
				t.length = 0
			}
			j := i + 1
			for j < len(chunk) && IsWordChar(chunk[j]) {
				j++
			}
			t.appendRun(chunk[i:j])
			i = j - 1
			continue
		}
		if t.inWord {
			dst = append(dst, t.close())
		}
		t.pos.Advance(c)
	}
	return dst
}

// Flush closes a word left open at end of input.
func (t *Tokenizer) Flush(dst []Token) []Token {
	if t.inWord {
		dst = append(dst, t.close())
	}
	return dst
}

func (t *Tokenizer) appendRun(run []byte) {
	t.length += len(run)
	t.pos.Col += len(run)
	if room := t.maxLen - len(t.word); room > 0 {
		t.word = append(t.word, run[:min(room, len(run))]...)
	}
}

func (t *Tokenizer) close() Token {
	t.inWord = false
	return Token{
		Value:  string(t.word),
		Line:   t.start.Line,
		Col:    t.start.Col,
		Length: t.length,
	}
}

// Tokenize splits a complete buffer in one call.
func Tokenize(text []byte, maxLen int) []Token {
	t := New(maxLen)
	return t.Flush(t.Feed(nil, text))
}
