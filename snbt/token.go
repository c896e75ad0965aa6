package snbt

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	TWord TokenType = iota
	TString
	TColon
	TSemi
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TWord:    "TWord",
		TString:  "TString",
		TColon:   "TColon",
		TSemi:    "TSemi",
		TComma:   "TComma",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
	}[t]
}

// Token is a lexical element.  For TString, Text holds the unquoted
// value; otherwise it holds the source bytes.
type Token struct {
	Type TokenType
	Pos  *Pos
	Text string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q %s", t.Type, t.Text, t.Pos)
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '.' || c == '_' || c == '+' || c == '-'
}

// Tokenize splits d into tokens, skipping white space.
func Tokenize(d []byte) ([]Token, error) {
	doc := newPosDoc(d)
	var res []Token
	i := 0
	for i < len(d) {
		c := d[i]
		var typ TokenType
		switch c {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		case ':':
			typ = TColon
		case ';':
			typ = TSemi
		case ',':
			typ = TComma
		case '{':
			typ = TLCurl
		case '}':
			typ = TRCurl
		case '[':
			typ = TLSquare
		case ']':
			typ = TRSquare
		case '"', '\'':
			s, n, err := unquote(d[i:])
			if err != nil {
				return nil, fmt.Errorf("%w: %w %s", ErrParse, err, doc.Pos(i))
			}
			res = append(res, Token{Type: TString, Pos: doc.Pos(i), Text: s})
			i += n
			continue
		default:
			if !isWordByte(c) {
				return nil, fmt.Errorf("%w: unexpected %q %s", ErrParse, c, doc.Pos(i))
			}
			j := i + 1
			for j < len(d) && isWordByte(d[j]) {
				j++
			}
			res = append(res, Token{Type: TWord, Pos: doc.Pos(i), Text: string(d[i:j])})
			i = j
			continue
		}
		res = append(res, Token{Type: typ, Pos: doc.Pos(i), Text: string(c)})
		i++
	}
	return res, nil
}

// unquote reads the quoted string at the start of d and returns its
// value and length.  A backslash escapes the next byte.
func unquote(d []byte) (string, int, error) {
	quote := d[0]
	var b strings.Builder
	for i := 1; i < len(d); i++ {
		switch d[i] {
		case '\\':
			i++
			if i == len(d) {
				return "", 0, fmt.Errorf("unterminated escape")
			}
			b.WriteByte(d[i])
		case quote:
			return b.String(), i + 1, nil
		default:
			b.WriteByte(d[i])
		}
	}
	return "", 0, fmt.Errorf("unterminated string")
}
