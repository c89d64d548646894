package script

import (
	"bufio"
	"io"
	"strconv"
)

// Tokens reads whitespace-delimited words from a stream with one token of
// lookahead.
type Tokens struct {
	sc     *bufio.Scanner
	peeked string
	has    bool
}

// NewTokens returns a tokenizer over r.
func NewTokens(r io.Reader) *Tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &Tokens{sc: sc}
}

// Peek returns the next token without consuming it.
func (t *Tokens) Peek() (string, bool) {
	if !t.has {
		if !t.sc.Scan() {
			return "", false
		}
		t.peeked, t.has = t.sc.Text(), true
	}
	return t.peeked, true
}

// Next consumes and returns the next token. It returns false at end of
// input or on a read error; see Err.
func (t *Tokens) Next() (string, bool) {
	tok, ok := t.Peek()
	if ok {
		t.has = false
	}
	return tok, ok
}

// NextInt consumes the next token if it is a decimal integer. A token that
// does not parse is left in the stream, so the caller sees it next.
func (t *Tokens) NextInt() (n int, tok string, ok bool) {
	tok, present := t.Peek()
	if !present {
		return 0, "", false
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, tok, false
	}
	t.has = false
	return n, tok, true
}

// Err returns the first non-EOF read error.
func (t *Tokens) Err() error {
	return t.sc.Err()
}
