package surface

import (
	"fmt"
	"strconv"

	"github.com/sunholo/assocprove/internal/ir"
)

// Parser is a small recursive-descent/precedence-climbing parser over
// the reduced grammar surface: literals, variables, the standard
// arithmetic/comparison/boolean operators, min/max, select, let, cast,
// and calls of the form name(args) or name(args)[value_index]. It
// exists purely to get update-body text into ir.Expr form for the CLI
// and REPL; it is not, and does not try to be, a general-purpose
// language front end.
type Parser struct {
	lex      *Lexer
	cur      Token
	peek     Token
	selfName string
	errs     []error
}

// NewParser builds a parser for input whose indexed calls to selfName,
// selfName(args)[k], are self-references (Kind=CallInternal); every
// other call, including selfName(args) without an index, is treated as
// an external, pure reference.
func NewParser(input, selfName string) *Parser {
	p := &Parser{lex: NewLexer(input), selfName: selfName}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.Next()
}

func (p *Parser) Errors() []error { return p.errs }

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errs = append(p.errs, fmt.Errorf("surface: at %d: %s", p.cur.Pos, fmt.Sprintf(format, args...)))
}

// ParseExpr parses a single expression and reports a non-nil error
// slice if the input was malformed or left unconsumed trailing tokens.
func ParseExpr(input, selfName string) (ir.Expr, []error) {
	p := NewParser(input, selfName)
	e := p.parseExpr()
	if p.cur.Type != EOF {
		p.errorf("unexpected trailing token %s", p.cur)
	}
	return e, p.errs
}

func (p *Parser) expect(t TokenType, what string) bool {
	if p.cur.Type != t {
		p.errorf("expected %s, got %s", what, p.cur)
		return false
	}
	p.advance()
	return true
}

func (p *Parser) parseExpr() ir.Expr { return p.parseOr() }

func (p *Parser) parseOr() ir.Expr {
	left := p.parseAnd()
	for p.cur.Type == OR {
		p.advance()
		right := p.parseAnd()
		left = ir.NewBinOp(ir.OpOr, left, right)
	}
	return left
}

func (p *Parser) parseAnd() ir.Expr {
	left := p.parseCmp()
	for p.cur.Type == AND {
		p.advance()
		right := p.parseCmp()
		left = ir.NewBinOp(ir.OpAnd, left, right)
	}
	return left
}

var cmpOps = map[TokenType]ir.Op{
	EQ: ir.OpEQ, NEQ: ir.OpNE, LT: ir.OpLT, LTE: ir.OpLE, GT: ir.OpGT, GTE: ir.OpGE,
}

func (p *Parser) parseCmp() ir.Expr {
	left := p.parseAdd()
	if op, ok := cmpOps[p.cur.Type]; ok {
		p.advance()
		right := p.parseAdd()
		return ir.NewBinOp(op, left, right)
	}
	return left
}

func (p *Parser) parseAdd() ir.Expr {
	left := p.parseMul()
	for p.cur.Type == PLUS || p.cur.Type == MINUS {
		op := ir.OpAdd
		if p.cur.Type == MINUS {
			op = ir.OpSub
		}
		p.advance()
		right := p.parseMul()
		left = ir.NewBinOp(op, left, right)
	}
	return left
}

func (p *Parser) parseMul() ir.Expr {
	left := p.parseUnary()
	for p.cur.Type == STAR || p.cur.Type == SLASH || p.cur.Type == PERCENT {
		var op ir.Op
		switch p.cur.Type {
		case STAR:
			op = ir.OpMul
		case SLASH:
			op = ir.OpDiv
		default:
			op = ir.OpMod
		}
		p.advance()
		right := p.parseUnary()
		left = ir.NewBinOp(op, left, right)
	}
	return left
}

func (p *Parser) parseUnary() ir.Expr {
	if p.cur.Type == NOT {
		p.advance()
		return ir.NewUnOp(ir.OpNot, p.parseUnary())
	}
	if p.cur.Type == MINUS {
		p.advance()
		return ir.NewBinOp(ir.OpSub, ir.NewIntLit(ir.Int32, 0), p.parseUnary())
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ir.Expr {
	switch p.cur.Type {
	case INT:
		v, err := strconv.ParseInt(p.cur.Literal, 10, 64)
		if err != nil {
			p.errorf("invalid integer literal %q", p.cur.Literal)
		}
		p.advance()
		return ir.NewIntLit(ir.Int32, v)

	case MIN, MAX:
		op := ir.OpMin
		if p.cur.Type == MAX {
			op = ir.OpMax
		}
		p.advance()
		p.expect(LPAREN, "(")
		x := p.parseExpr()
		p.expect(COMMA, ",")
		y := p.parseExpr()
		p.expect(RPAREN, ")")
		return ir.NewBinOp(op, x, y)

	case SELECT:
		p.advance()
		p.expect(LPAREN, "(")
		cond := p.parseExpr()
		p.expect(COMMA, ",")
		t := p.parseExpr()
		p.expect(COMMA, ",")
		f := p.parseExpr()
		p.expect(RPAREN, ")")
		return ir.NewSelect(cond, t, f)

	case LET:
		p.advance()
		name := p.cur.Literal
		p.expect(IDENT, "identifier")
		p.expect(ASSIGN, "=")
		value := p.parseExpr()
		p.expect(IN, "in")
		body := p.parseExpr()
		return ir.NewLet(name, value, body)

	case CAST:
		p.advance()
		p.expect(LT, "<")
		typeName := p.cur.Literal
		p.expect(IDENT, "type name")
		p.expect(GT, ">")
		p.expect(LPAREN, "(")
		value := p.parseExpr()
		p.expect(RPAREN, ")")
		return ir.NewCast(parseTypeName(typeName), value)

	case LPAREN:
		p.advance()
		e := p.parseExpr()
		p.expect(RPAREN, ")")
		return e

	case IDENT:
		name := p.cur.Literal
		p.advance()
		if p.cur.Type != LPAREN {
			return ir.NewVariable(name, ir.Int32)
		}
		p.advance()
		var args []ir.Expr
		if p.cur.Type != RPAREN {
			args = append(args, p.parseExpr())
			for p.cur.Type == COMMA {
				p.advance()
				args = append(args, p.parseExpr())
			}
		}
		p.expect(RPAREN, ")")

		if p.cur.Type != LBRACKET {
			return ir.NewCall(ir.Int32, name, args, 0, ir.CallPureExtern)
		}
		p.advance()
		idxTok := p.cur
		p.expect(INT, "tuple index")
		p.expect(RBRACKET, "]")
		idx, _ := strconv.Atoi(idxTok.Literal)
		kind := ir.CallPureExtern
		if name == p.selfName {
			kind = ir.CallInternal
		}
		return ir.NewCall(ir.Int32, name, args, idx, kind)

	default:
		p.errorf("unexpected token %s", p.cur)
		p.advance()
		return ir.NewIntLit(ir.Int32, 0)
	}
}

func parseTypeName(name string) ir.Type {
	switch name {
	case "i8":
		return ir.Int(8)
	case "i16":
		return ir.Int(16)
	case "i32":
		return ir.Int32
	case "i64":
		return ir.Int64
	case "u32":
		return ir.UInt32
	case "f32":
		return ir.Float(32)
	case "f64":
		return ir.Float(64)
	case "bool":
		return ir.Bool()
	default:
		return ir.Int32
	}
}
