package snbt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/neworld-site/go-nbt/nbt"
)

const defaultMaxDepth = 512

// Parse reads the textual form of a tag.  Unquoted words which do not
// read as numbers or booleans are strings.
func Parse(d []byte, opts ...ParseOption) (nbt.Tag, error) {
	pOpts := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := Tokenize(d)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	p := &parser{toks: toks, opts: pOpts}
	res, err := p.value(0)
	if err != nil {
		return nil, err
	}
	if p.i < len(toks) {
		return nil, fmt.Errorf("%w: trailing %s", ErrParse, toks[p.i].Info())
	}
	return res, nil
}

// ParseCompound is like Parse but requires a compound.
func ParseCompound(d []byte, opts ...ParseOption) (*nbt.Compound, error) {
	t, err := Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	c, ok := t.(*nbt.Compound)
	if !ok {
		return nil, fmt.Errorf("%w: expected a compound, got %s", ErrParse, t.Type())
	}
	return c, nil
}

type parser struct {
	toks []Token
	i    int
	opts *parseOpts
}

func (p *parser) peek(off int) *Token {
	if p.i+off >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i+off]
}

func (p *parser) next() (*Token, error) {
	tok := p.peek(0)
	if tok == nil {
		return nil, fmt.Errorf("%w: unexpected end of document", ErrParse)
	}
	p.i++
	return tok, nil
}

func (p *parser) expect(typ TokenType) (*Token, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Type != typ {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrParse, typ, tok.Info())
	}
	return tok, nil
}

func (p *parser) value(depth int) (nbt.Tag, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case TString:
		return nbt.StringOf(tok.Text), nil
	case TWord:
		return scalar(tok.Text), nil
	case TLCurl:
		if depth > p.opts.maxDepth {
			return nil, fmt.Errorf("%w: depth %d > %d %s", nbt.ErrDepthExceeded, depth, p.opts.maxDepth, tok.Pos)
		}
		return p.compound(depth)
	case TLSquare:
		if a := p.peek(0); a != nil && a.Type == TWord && len(a.Text) == 1 {
			if s := p.peek(1); s != nil && s.Type == TSemi {
				p.i += 2
				return p.array(a)
			}
		}
		if depth > p.opts.maxDepth {
			return nil, fmt.Errorf("%w: depth %d > %d %s", nbt.ErrDepthExceeded, depth, p.opts.maxDepth, tok.Pos)
		}
		return p.list(depth)
	}
	return nil, fmt.Errorf("%w: unexpected %s", ErrParse, tok.Info())
}

// more consumes a comma or the closing token.  It reports whether
// another element follows.
func (p *parser) more(closing TokenType) (bool, error) {
	tok, err := p.next()
	if err != nil {
		return false, err
	}
	switch tok.Type {
	case TComma:
		return true, nil
	case closing:
		return false, nil
	}
	return false, fmt.Errorf("%w: expected %s or %s, got %s", ErrParse, TComma, closing, tok.Info())
}

func (p *parser) empty(closing TokenType) bool {
	if tok := p.peek(0); tok != nil && tok.Type == closing {
		p.i++
		return true
	}
	return false
}

func (p *parser) compound(depth int) (nbt.Tag, error) {
	c := nbt.NewCompound()
	if p.empty(TRCurl) {
		return c, nil
	}
	for {
		key, err := p.next()
		if err != nil {
			return nil, err
		}
		if key.Type != TWord && key.Type != TString {
			return nil, fmt.Errorf("%w: expected key, got %s", ErrParse, key.Info())
		}
		if _, err := p.expect(TColon); err != nil {
			return nil, err
		}
		v, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		if _, err := c.Put(key.Text, v); err != nil {
			return nil, fmt.Errorf("%w: %w %s", ErrParse, err, key.Pos)
		}
		more, err := p.more(TRCurl)
		if err != nil {
			return nil, err
		}
		if !more {
			return c, nil
		}
	}
}

func (p *parser) list(depth int) (nbt.Tag, error) {
	l := &nbt.List{}
	if p.empty(TRSquare) {
		return l, nil
	}
	for {
		pos := p.peek(0)
		v, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := l.Add(v); err != nil {
			return nil, fmt.Errorf("%w: %w %s", ErrParse, err, pos.Pos)
		}
		more, err := p.more(TRSquare)
		if err != nil {
			return nil, err
		}
		if !more {
			return l, nil
		}
	}
}

func (p *parser) array(kind *Token) (nbt.Tag, error) {
	var (
		bs []byte
		is []int32
		ls []int64
	)
	if !p.empty(TRSquare) {
		for {
			tok, err := p.expect(TWord)
			if err != nil {
				return nil, err
			}
			v, ok := scalar(tok.Text).(nbt.Numeric)
			if !ok {
				return nil, fmt.Errorf("%w: non numeric array element %s", ErrParse, tok.Info())
			}
			switch kind.Text {
			case "B":
				bs = append(bs, byte(v.AsByte()))
			case "I":
				is = append(is, v.AsInt())
			case "L":
				ls = append(ls, v.AsLong())
			}
			more, err := p.more(TRSquare)
			if err != nil {
				return nil, err
			}
			if !more {
				break
			}
		}
	}
	switch kind.Text {
	case "B":
		return nbt.NewByteArray(bs), nil
	case "I":
		return nbt.NewIntArray(is), nil
	case "L":
		return nbt.NewLongArray(ls), nil
	}
	return nil, fmt.Errorf("%w: unknown array type %s", ErrParse, kind.Info())
}

var (
	intRE    = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)([bBsSlL]?)$`)
	floatRE  = regexp.MustCompile(`^[-+]?(?:[0-9]+\.?|[0-9]*\.[0-9]+)(?:[eE][-+]?[0-9]+)?([fFdD]?)$`)
	specials = map[string]float64{
		"NaN":       math.NaN(),
		"Infinity":  math.Inf(1),
		"+Infinity": math.Inf(1),
		"-Infinity": math.Inf(-1),
	}
)

// scalar reads a bare word as a number, a boolean or else a string.
func scalar(w string) nbt.Tag {
	switch w {
	case "true":
		return nbt.BoolOf(true)
	case "false":
		return nbt.BoolOf(false)
	}
	if m := intRE.FindStringSubmatch(w); m != nil {
		digits := strings.TrimRight(w, "bBsSlL")
		var (
			bits int
			mk   func(int64) nbt.Tag
		)
		switch m[1] {
		case "b", "B":
			bits, mk = 8, func(v int64) nbt.Tag { return nbt.ByteOf(int8(v)) }
		case "s", "S":
			bits, mk = 16, func(v int64) nbt.Tag { return nbt.ShortOf(int16(v)) }
		case "l", "L":
			bits, mk = 64, func(v int64) nbt.Tag { return nbt.LongOf(v) }
		default:
			bits, mk = 32, func(v int64) nbt.Tag { return nbt.IntOf(int32(v)) }
		}
		if v, err := strconv.ParseInt(digits, 10, bits); err == nil {
			return mk(v)
		}
		return nbt.StringOf(w)
	}
	if m := floatRE.FindStringSubmatch(w); m != nil {
		num := strings.TrimRight(w, "fFdD")
		switch m[1] {
		case "f", "F":
			if v, err := strconv.ParseFloat(num, 32); err == nil {
				return nbt.FloatOf(float32(v))
			}
		case "d", "D":
			if v, err := strconv.ParseFloat(num, 64); err == nil {
				return nbt.DoubleOf(v)
			}
		default:
			if strings.ContainsAny(num, ".eE") {
				if v, err := strconv.ParseFloat(num, 64); err == nil {
					return nbt.DoubleOf(v)
				}
			}
		}
		return nbt.StringOf(w)
	}
	if len(w) > 1 {
		if v, ok := specials[w[:len(w)-1]]; ok {
			switch w[len(w)-1] {
			case 'f', 'F':
				return nbt.FloatOf(float32(v))
			case 'd', 'D':
				return nbt.DoubleOf(v)
			}
		}
	}
	return nbt.StringOf(w)
}
