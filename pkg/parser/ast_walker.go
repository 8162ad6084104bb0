package parser

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// astWalker walks the AST and collects commands and inline input.
type astWalker struct {
	view *ShellView
}

// visit is called for each node in the AST.
func (w *astWalker) visit(node syntax.Node) bool {
	switch n := node.(type) {
	case *syntax.CallExpr:
		if name := callName(n); name != "" {
			w.view.Commands = append(w.view.Commands, name)
		}
	case *syntax.Stmt:
		w.extractRedirects(n)
	case *syntax.ProcSubst:
		w.view.Inputs = append(w.view.Inputs, InlineInput{
			Kind:     KindProcSubst,
			Command:  firstCallName(n.Stmts),
			Location: locationOf(n.Pos()),
		})
	}

	return true
}

// extractRedirects records heredocs and here-strings attached to a statement.
func (w *astWalker) extractRedirects(stmt *syntax.Stmt) {
	if len(stmt.Redirs) == 0 {
		return
	}

	command := ""
	if call, ok := stmt.Cmd.(*syntax.CallExpr); ok {
		command = callName(call)
	}

	for _, redir := range stmt.Redirs {
		var kind InputKind

		switch redir.Op {
		case syntax.Hdoc:
			kind = KindHeredoc
		case syntax.DashHdoc:
			kind = KindDashHeredoc
		case syntax.WordHdoc:
			kind = KindHereString
		default:
			continue
		}

		input := InlineInput{
			Kind:     kind,
			Command:  command,
			Marker:   wordToString(redir.Word),
			Quoted:   isQuoted(redir.Word),
			Location: locationOf(redir.Pos()),
		}

		if redir.Hdoc != nil {
			input.Lines = strings.Count(wordToString(redir.Hdoc), "\n")
		}

		w.view.Inputs = append(w.view.Inputs, input)
	}
}

func callName(call *syntax.CallExpr) string {
	if len(call.Args) == 0 {
		return ""
	}

	return wordToString(call.Args[0])
}

func firstCallName(stmts []*syntax.Stmt) string {
	for _, stmt := range stmts {
		if call, ok := stmt.Cmd.(*syntax.CallExpr); ok {
			return callName(call)
		}
	}

	return ""
}

func locationOf(pos syntax.Pos) Location {
	return Location{Line: pos.Line(), Column: pos.Col()}
}

// wordToString flattens the literal parts of a word. Expansions are dropped.
func wordToString(word *syntax.Word) string {
	if word == nil {
		return ""
	}

	var result strings.Builder

	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			result.WriteString(p.Value)
		case *syntax.SglQuoted:
			result.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, dqPart := range p.Parts {
				if lit, ok := dqPart.(*syntax.Lit); ok {
					result.WriteString(lit.Value)
				}
			}
		}
	}

	return result.String()
}

func isQuoted(word *syntax.Word) bool {
	if word == nil {
		return false
	}

	for _, part := range word.Parts {
		switch part.(type) {
		case *syntax.SglQuoted, *syntax.DblQuoted:
			return true
		}
	}

	return false
}
