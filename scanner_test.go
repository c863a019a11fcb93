package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanAll(source string) []token {
	ip := New()
	ip.source = append([]byte(source), 0)
	ip.scan()
	var toks []token
	for ip.tok.kind != tokEnd {
		toks = append(toks, ip.tok)
		ip.scan()
	}
	return toks
}

func TestScanDelimiters(t *testing.T) {
	toks := scanAll("<= >= <> < > = ( ) + - * / % ^ ; ,")
	var got []string
	for _, tk := range toks {
		got = append(got, tk.text)
	}
	assert.Equal(t, []string{
		"<=", ">=", "<>", "<", ">", "=", "(", ")", "+", "-", "*", "/", "%", "^", ";", ",",
	}, got)
}

func TestScanKeywordsAreCaseInsensitive(t *testing.T) {
	toks := scanAll("Print PRINT print")
	for _, tk := range toks {
		assert.Equal(t, tokPrint, tk.kind)
		assert.Equal(t, "print", tk.text)
	}
}

func TestScanIdentBecomesVariable(t *testing.T) {
	toks := scanAll("LETTER")
	assert.Len(t, toks, 1)
	assert.Equal(t, tokVariable, toks[0].kind)
	assert.Equal(t, "letter", toks[0].text)
}

func TestScanNumber(t *testing.T) {
	toks := scanAll("12345")
	assert.Len(t, toks, 1)
	assert.Equal(t, tokNumber, toks[0].kind)
	assert.Equal(t, "12345", toks[0].text)
}

func TestScanQuote(t *testing.T) {
	toks := scanAll(`"hello world"`)
	assert.Len(t, toks, 1)
	assert.Equal(t, tokQuote, toks[0].kind)
	assert.Equal(t, "hello world", toks[0].text)
}

func TestScanUnterminatedQuoteReportsUnbalancedParens(t *testing.T) {
	ip := New()
	ip.source = append([]byte(`"oops`), 0)
	ip.scan()
	assert.ErrorIs(t, ip.LastError(), errUnbalancedParens)
}

func TestScanEOL(t *testing.T) {
	toks := scanAll("A\nB")
	assert.Len(t, toks, 3)
	assert.Equal(t, tokEOL, toks[1].kind)
}
