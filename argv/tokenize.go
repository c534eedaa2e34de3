package argv

import "unsafe"

// Bounds returns the worst-case number of token slots (including the
// trailing sentinel slot) and arena bytes needed to tokenize a command line
// of n bytes. The worst case is alternating one-byte tokens and single
// separators, each token followed by its NUL terminator.
func Bounds(n int) (maxTokens, maxBytes int) {
	return (n+2+1)/2 + 1, n + 2
}

// Split tokenizes a raw command line using the Microsoft C runtime rules
// and returns the arguments, program name first. It never fails: unbalanced
// quotes and stray backslashes have defined meanings.
func Split(raw string) []string {
	maxTokens, maxBytes := Bounds(len(raw))
	return tokenize(raw, make([]byte, maxBytes), make([]string, 0, maxTokens))
}

// tokenize writes every token of raw, each followed by a NUL byte, into
// arena and appends a string view of each token to tokens. The views alias
// arena; they are valid for as long as arena is.
//
// The arena must hold at least maxBytes bytes and tokens must have room for
// maxTokens entries, as reported by Bounds. A smaller buffer is a caller bug.
func tokenize(raw string, arena []byte, tokens []string) []string {
	maxTokens, maxBytes := Bounds(len(raw))
	if len(arena) < maxBytes {
		contractf("token arena smaller than Bounds")
	}
	if cap(tokens)-len(tokens) < maxTokens {
		contractf("token slots smaller than Bounds")
	}

	s := scanner{src: raw, out: arena}

	start := s.n
	s.program()
	tokens = append(tokens, s.terminate(start))

	for {
		s.skipBlanks()
		if s.pos >= len(s.src) {
			break
		}
		start = s.n
		if s.pos == len(s.src)-1 && s.src[s.pos] == '"' {
			// A lone trailing quote is kept as a literal one-byte argument
			s.put('"')
			s.pos++
		} else {
			s.bare()
		}
		tokens = append(tokens, s.terminate(start))
	}
	return tokens
}

// scanner walks the source once, writing decoded bytes at out[n]. The arena
// is never grown.
type scanner struct {
	src string
	pos int
	out []byte
	n   int
}

func (s *scanner) put(c byte) {
	s.out[s.n] = c
	s.n++
}

// terminate NUL-terminates the token that started at start and returns a
// view of it.
func (s *scanner) terminate(start int) string {
	length := s.n - start
	s.put(0)
	if length == 0 {
		return ""
	}
	return unsafe.String(&s.out[start], length)
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

func (s *scanner) skipBlanks() {
	for s.pos < len(s.src) && isBlank(s.src[s.pos]) {
		s.pos++
	}
}

// program parses argument 0. Backslashes are never special here and a
// quoted program name ends at the next quote, with or without a match.
func (s *scanner) program() {
	if s.pos < len(s.src) && s.src[s.pos] == '"' {
		s.pos++
		for s.pos < len(s.src) && s.src[s.pos] != '"' {
			s.put(s.src[s.pos])
			s.pos++
		}
		if s.pos < len(s.src) {
			s.pos++
		}
		return
	}
	for s.pos < len(s.src) && !isBlank(s.src[s.pos]) {
		s.put(s.src[s.pos])
		s.pos++
	}
}

// bare copies an unquoted run up to the next unescaped blank, switching into
// quoted or backslash handling as those characters appear.
func (s *scanner) bare() {
	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; c {
		case ' ', '\t':
			return
		case '"':
			s.quoted()
		case '\\':
			s.backslashes()
		default:
			s.put(c)
			s.pos++
		}
	}
}

// quoted consumes an opening quote and copies verbatim until the matching
// close. Inside the region "" stands for one literal quote. A missing
// closing quote runs to the end of the input.
func (s *scanner) quoted() {
	s.pos++
	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; c {
		case '\\':
			s.backslashes()
		case '"':
			if s.pos+1 < len(s.src) && s.src[s.pos+1] == '"' {
				s.put('"')
				s.pos += 2
				continue
			}
			s.pos++
			return
		default:
			s.put(c)
			s.pos++
		}
	}
}

// backslashes handles a maximal run of N backslashes. Before a quote, the
// run halves and an odd run escapes the quote; an even run leaves the quote
// for the caller to treat as a delimiter. Anywhere else the run is literal.
func (s *scanner) backslashes() {
	n := 0
	for s.pos < len(s.src) && s.src[s.pos] == '\\' {
		n++
		s.pos++
	}
	if s.pos < len(s.src) && s.src[s.pos] == '"' {
		for k := 0; k < n/2; k++ {
			s.put('\\')
		}
		if n%2 == 1 {
			s.put('"')
			s.pos++
		}
		return
	}
	for k := 0; k < n; k++ {
		s.put('\\')
	}
}
