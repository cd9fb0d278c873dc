// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pkl-swift Authors

package pkl

import (
	"fmt"
	"strings"
	"unicode"
)

// Resolver maps a type name appearing in a type expression to its
// declaration. The loader supplies one that checks the document's own
// declarations before the builtins.
type Resolver func(name string) (*Declaration, bool)

// ParseType parses a Pkl type expression such as "Mapping<String, Int?>",
// `"left"|"right"` or "(Person|unknown)?". Precedence, tightest first:
// generics, the "?" postfix, then "|".
func ParseType(src string, resolve Resolver) (Type, error) {
	p := &typeParser{src: src, resolve: resolve}
	t, err := p.union()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", rune(p.src[p.pos]))
	}
	return t, nil
}

type typeParser struct {
	src     string
	pos     int
	resolve Resolver
}

func (p *typeParser) errorf(format string, args ...any) error {
	return fmt.Errorf("type %q: offset %d: %s", p.src, p.pos, fmt.Sprintf(format, args...))
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *typeParser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *typeParser) union() (Type, error) {
	first, err := p.postfix()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != '|' {
		return first, nil
	}
	members := []Type{first}
	for {
		p.skipSpace()
		if p.peek() != '|' {
			return Union(members...), nil
		}
		p.pos++
		member, err := p.postfix()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
}

func (p *typeParser) postfix() (Type, error) {
	t, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.peek() != '?' {
			return t, nil
		}
		p.pos++
		t = Nullable(t)
	}
}

func (p *typeParser) primary() (Type, error) {
	p.skipSpace()
	switch {
	case p.peek() == '(':
		p.pos++
		t, err := p.union()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, p.errorf("missing closing parenthesis")
		}
		p.pos++
		return t, nil
	case p.peek() == '"':
		return p.stringLiteral()
	case p.pos >= len(p.src):
		return nil, p.errorf("expected a type")
	}

	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected a type name")
	}
	switch name {
	case "unknown":
		return &UnknownType{}, nil
	case "nothing":
		return &NothingType{}, nil
	case "module":
		return &ModuleType{}, nil
	}

	decl, ok := p.resolve(name)
	if !ok {
		return nil, p.errorf("unknown type name %q", name)
	}

	var args []Type
	p.skipSpace()
	if p.peek() == '<' {
		p.pos++
		for {
			arg, err := p.union()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			p.skipSpace()
			switch p.peek() {
			case ',':
				p.pos++
				continue
			case '>':
				p.pos++
			default:
				return nil, p.errorf("missing closing angle bracket")
			}
			break
		}
	}
	return Declared(decl, args...), nil
}

func (p *typeParser) stringLiteral() (Type, error) {
	p.pos++ // opening quote
	var sb strings.Builder
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; c {
		case '"':
			p.pos++
			return StringLiteral(sb.String()), nil
		case '\\':
			if p.pos+1 >= len(p.src) {
				return nil, p.errorf("unterminated escape")
			}
			p.pos++
			sb.WriteByte(p.src[p.pos])
			p.pos++
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return nil, p.errorf("unterminated string literal")
}

func (p *typeParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		r := rune(p.src[p.pos])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '.' {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}
