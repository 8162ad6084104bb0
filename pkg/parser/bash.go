// Package parser provides a Bash AST view of inline command input using mvdan.cc/sh
package parser

import (
	"strings"

	"github.com/cockroachdb/errors"
	"mvdan.cc/sh/v3/syntax"

	"github.com/smykla-skalski/packetguard/pkg/stringutil"
)

var (
	// ErrEmptyCommand is returned when trying to parse an empty command.
	ErrEmptyCommand = errors.New("empty command")
	// ErrParseFailed is returned when parsing fails.
	ErrParseFailed = errors.New("failed to parse command")
)

// BashParser parses Bash commands using mvdan.cc/sh.
type BashParser struct {
	parser *syntax.Parser
}

// NewBashParser creates a new BashParser instance.
func NewBashParser() *BashParser {
	return &BashParser{
		parser: syntax.NewParser(syntax.Variant(syntax.LangBash)),
	}
}

// View parses a Bash command string and lists every command name and every
// piece of inline input (heredocs, here-strings, process substitutions).
func (p *BashParser) View(command string) (*ShellView, error) {
	command = stringutil.Trim(command)
	if command == "" {
		return nil, ErrEmptyCommand
	}

	file, err := p.parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return nil, errors.Wrap(ErrParseFailed, err.Error())
	}

	walker := &astWalker{
		view: &ShellView{
			Commands: make([]string, 0),
			Inputs:   make([]InlineInput, 0),
		},
	}

	syntax.Walk(file, walker.visit)

	return walker.view, nil
}
