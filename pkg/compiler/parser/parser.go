// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/consensys/go-linkir/pkg/ir"
	"github.com/consensys/go-linkir/pkg/util/source"
	"github.com/consensys/go-linkir/pkg/util/source/lex"
)

// STATEMENTS captures the set of tokens which can begin a statement.
var STATEMENTS = []uint{IDENTIFIER, KEYWORD_IF, KEYWORD_WHILE, KEYWORD_FOR, KEYWORD_SWITCH, KEYWORD_INPUT,
	KEYWORD_OUTPUT}

// ARITH_OPS captures the set of arithmetic operators.
var ARITH_OPS = []uint{ADD, SUB, MUL, DIV}

// Generate translates the tokens of a program into its IR in a single pass.
// Malformed input never stops translation: each token expected is consumed
// regardless of whether it matches, and a syntax error is recorded instead.
// Hence, the program returned is the same whether or not there are errors, and
// it is for the caller to decide whether they are fatal.
func Generate(tokens TokenSource) (*ir.Program, []source.SyntaxError) {
	return NewParser(tokens).Parse()
}

// Parser translates a program into IR as it is parsed.  There is no syntax
// tree; instead, each production returns the fragment of IR it generates, with
// jump targets filled in once the nodes they refer to have been created.
type Parser struct {
	tokens TokenSource
	// Nodes generated so far
	code *ir.Arena
	// Slots allocated so far
	memory *ir.Memory
	// Values queued for input instructions
	inputs []int
	// Syntax errors encountered
	errors []source.SyntaxError
}

// NewParser constructs a new parser for a given source of tokens.
func NewParser(tokens TokenSource) *Parser {
	return &Parser{tokens, ir.NewArena(), ir.NewMemory(), nil, nil}
}

// Parse a complete program, consisting of declarations, a body and any
// trailing input values.
func (p *Parser) Parse() (*ir.Program, []source.SyntaxError) {
	p.parseDeclarations()
	//
	body := p.parseBlock()
	//
	p.parseInputs()
	//
	return ir.NewProgram(p.code, body.Head, p.memory, p.inputs), p.errors
}

// Declarations register variables (in order) but generate no code.
func (p *Parser) parseDeclarations() {
	for p.follows(IDENTIFIER) {
		p.parseVariable()
		//
		if !p.match(COMMA) && p.follows(IDENTIFIER) {
			p.syntaxError(p.tokens.Peek(), "expected ','")
		}
	}
	//
	p.expect(SEMICOLON)
}

func (p *Parser) parseBlock() ir.Fragment {
	p.expect(LCURLY)
	//
	body := p.parseStatementList()
	//
	p.expect(RCURLY)
	//
	return body
}

func (p *Parser) parseStatementList() ir.Fragment {
	list := p.parseStatement()
	//
	for p.follows(STATEMENTS...) {
		list = p.code.Append(list, p.parseStatement())
	}
	//
	return list
}

func (p *Parser) parseStatement() ir.Fragment {
	lookahead := p.tokens.Peek()
	//
	switch lookahead.Kind {
	case IDENTIFIER:
		return p.parseAssignment()
	case KEYWORD_IF:
		return p.parseIf()
	case KEYWORD_WHILE:
		return p.parseWhile()
	case KEYWORD_FOR:
		return p.parseFor()
	case KEYWORD_SWITCH:
		return p.parseSwitch()
	case KEYWORD_INPUT:
		return p.parseInput()
	case KEYWORD_OUTPUT:
		return p.parseOutput()
	case RCURLY:
		// empty block
	default:
		p.syntaxError(lookahead, "unknown statement")
	}
	//
	return ir.EmptyFragment()
}

func (p *Parser) parseAssignment() ir.Fragment {
	var (
		target = p.parseVariable()
		insn   = ir.NewCopy(target, ir.INVALID_SLOT)
	)
	//
	p.expect(EQUALS)
	//
	if p.follows(IDENTIFIER, NUMBER) {
		insn.Left = p.parsePrimary()
		//
		if p.follows(ARITH_OPS...) {
			insn.Op = p.parseOperator()
			insn.Right = p.parsePrimary()
		}
	} else {
		p.syntaxError(p.tokens.Peek(), "expected identifier or number")
	}
	//
	p.expect(SEMICOLON)
	//
	return ir.Single(p.code.Add(insn))
}

// An if statement becomes:
//
//	if !cond goto exit; body; exit: nop
func (p *Parser) parseIf() ir.Fragment {
	p.expect(KEYWORD_IF)
	//
	var (
		cond = p.parseCondition()
		head = p.code.Add(cond)
		body = p.parseBlock()
		exit = p.code.Noop()
	)
	//
	cond.Target = exit
	//
	return p.code.Append(ir.Single(head), body, ir.Single(exit))
}

// A while statement becomes:
//
//	head: if !cond goto exit; body; goto head; exit: nop
func (p *Parser) parseWhile() ir.Fragment {
	p.expect(KEYWORD_WHILE)
	//
	var (
		cond = p.parseCondition()
		head = p.code.Add(cond)
		body = p.parseBlock()
		back = p.code.Add(&ir.Jump{Target: head})
		exit = p.code.Noop()
	)
	//
	cond.Target = exit
	//
	return p.code.Append(ir.Single(head), body, ir.Single(back), ir.Single(exit))
}

// A for statement is a while statement whose body is followed by the update,
// and which is preceded by the initialiser:
//
//	init; head: if !cond goto exit; body; update; goto head; exit: nop
func (p *Parser) parseFor() ir.Fragment {
	p.expect(KEYWORD_FOR)
	p.expect(LBRACE)
	//
	var (
		init = p.parseAssignment()
		cond = p.parseCondition()
	)
	//
	p.expect(SEMICOLON)
	//
	update := p.parseAssignment()
	//
	p.expect(RBRACE)
	//
	var (
		head = p.code.Add(cond)
		body = p.parseBlock()
		back = p.code.Add(&ir.Jump{Target: head})
		exit = p.code.Noop()
	)
	//
	cond.Target = exit
	//
	return p.code.Append(init, ir.Single(head), body, update, ir.Single(back), ir.Single(exit))
}

// A switch statement becomes a chain of tests, one per case, where each test
// which matches jumps to its arm whilst a non-match falls through to the next
// test (or the default, or the exit):
//
//	if !(v != c1) goto arm1
//	...
//	if !(v != cn) goto armn
//	default; exit: nop
//	arm1: body1; goto exit
//	...
//
// The arms lie off the fall-through chain of the switch itself, and are
// reachable only as jump targets.
func (p *Parser) parseSwitch() ir.Fragment {
	p.expect(KEYWORD_SWITCH)
	//
	var (
		value = p.parseVariable()
		exit  = p.code.Noop()
		tests = ir.EmptyFragment()
		dflt  = ir.EmptyFragment()
	)
	//
	p.expect(LCURLY)
	//
	for p.match(KEYWORD_CASE) {
		var (
			constant = p.memory.Literal(p.number(p.expect(NUMBER)))
			test     = &ir.CondJump{Left: value, Op: ir.NEQ, Right: constant, Target: ir.NIL}
			head     = p.code.Add(test)
		)
		//
		p.expect(COLON)
		//
		arm := p.code.Append(p.parseBlock(), ir.Single(p.code.Add(&ir.Jump{Target: exit})))
		test.Target = arm.Head
		tests = p.code.Append(tests, ir.Single(head))
	}
	//
	if p.match(KEYWORD_DEFAULT) {
		p.expect(COLON)
		dflt = p.parseBlock()
	}
	//
	p.expect(RCURLY)
	//
	return p.code.Append(tests, dflt, ir.Single(exit))
}

func (p *Parser) parseInput() ir.Fragment {
	p.expect(KEYWORD_INPUT)
	//
	insn := &ir.Input{Target: p.parseVariable()}
	//
	p.expect(SEMICOLON)
	//
	return ir.Single(p.code.Add(insn))
}

func (p *Parser) parseOutput() ir.Fragment {
	p.expect(KEYWORD_OUTPUT)
	//
	insn := &ir.Output{Source: p.parseVariable()}
	//
	p.expect(SEMICOLON)
	//
	return ir.Single(p.code.Add(insn))
}

// Trailing inputs are numbers following the body, up to the first token which
// is not a number.
func (p *Parser) parseInputs() {
	for p.follows(NUMBER) {
		p.inputs = append(p.inputs, p.number(p.tokens.Next()))
	}
	//
	if !p.follows(END_OF) {
		p.syntaxError(p.tokens.Peek(), "unexpected text after program")
	}
}

func (p *Parser) parseCondition() *ir.CondJump {
	var (
		lhs = p.parsePrimary()
		op  = p.parseComparator()
		rhs = p.parsePrimary()
	)
	//
	return &ir.CondJump{Left: lhs, Op: op, Right: rhs, Target: ir.NIL}
}

// Parse a variable name, returning its slot.  If the next token is not an
// identifier, its text is used as the name regardless.
func (p *Parser) parseVariable() ir.Slot {
	token := p.expect(IDENTIFIER)
	//
	return p.memory.Variable(p.tokens.Text(token))
}

// Parse an identifier or number, returning its slot.  Anything else produces
// INVALID_SLOT.
func (p *Parser) parsePrimary() ir.Slot {
	token := p.tokens.Next()
	//
	switch token.Kind {
	case IDENTIFIER:
		return p.memory.Variable(p.tokens.Text(token))
	case NUMBER:
		return p.memory.Literal(p.number(token))
	default:
		p.syntaxError(token, "expected identifier or number")
		return ir.INVALID_SLOT
	}
}

func (p *Parser) parseOperator() ir.ArithOp {
	token := p.tokens.Next()
	//
	switch token.Kind {
	case ADD:
		return ir.ADD
	case SUB:
		return ir.SUB
	case MUL:
		return ir.MUL
	case DIV:
		return ir.DIV
	default:
		p.syntaxError(token, "unknown operator")
		return ir.NONE
	}
}

// Parse a relational operator.  Anything unrecognised is treated as ">".
func (p *Parser) parseComparator() ir.CmpOp {
	token := p.tokens.Next()
	//
	switch token.Kind {
	case GREATER_THAN:
		return ir.GT
	case LESS_THAN:
		return ir.LT
	case NOT_EQUALS:
		return ir.NEQ
	default:
		p.syntaxError(token, "unknown comparator")
		return ir.GT
	}
}

// Get the value of a numeric literal.  Tokens which are not numbers have value
// 0, and are assumed to have been reported already.
func (p *Parser) number(token lex.Token) int {
	if token.Kind != NUMBER {
		return 0
	}
	//
	val, err := strconv.Atoi(p.tokens.Text(token))
	//
	if err != nil {
		p.syntaxError(token, "malformed numeric literal")
		return 0
	}
	//
	return val
}

// Expect consumes the next token, recording an error if it is not what was
// expected.
func (p *Parser) expect(kind uint) lex.Token {
	token := p.tokens.Next()
	//
	if token.Kind != kind {
		p.syntaxError(token, fmt.Sprintf("expected %s", describe(kind)))
	}
	//
	return token
}

// Match consumes the next token only if it is of the given kind.
func (p *Parser) match(kind uint) bool {
	if p.tokens.Peek().Kind == kind {
		p.tokens.Next()
		return true
	}
	//
	return false
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.tokens.Peek().Kind)
}

func (p *Parser) syntaxError(token lex.Token, msg string) {
	p.errors = append(p.errors, *p.tokens.SyntaxError(token, msg))
}
