package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/npillmayer/combo/ast"
	"github.com/npillmayer/combo/compiler"
	"github.com/npillmayer/combo/term"
	"github.com/npillmayer/combo/termlang"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

type command struct {
	args string
	help string
	run  func(intp *Intp, args []string) (bool, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"parse":     {"<term>", "parse a term and make it the current term", parseCmd},
		"simplify":  {"[<term>]", "simplify a term", transformCmd(simplify)},
		"decompile": {"[<term>]", "decompile into LAMBDA/LET form", transformCmd(stateless(compiler.Decompile))},
		"compile":   {"[<term>]", "compile a term", transformCmd(stateless(compiler.Compile))},
		"eliminate": {"[<term>]", "eliminate LAMBDA and LET binders", transformCmd(stateless(compiler.Eliminate))},
		"abstract":  {"<var> [<term>]", "abstract a variable from a term", abstractCmd},
		"load":      {"[<term>]", "load a term for editing, cursor at the root", loadCmd},
		"up":        {"", "move the cursor up", moveCmd(ast.Up)},
		"down":      {"", "move the cursor down", moveCmd(ast.Down)},
		"left":      {"", "move the cursor left", moveCmd(ast.Left)},
		"right":     {"", "move the cursor right", moveCmd(ast.Right)},
		"move":      {"<U|D|L|R>…", "move the cursor repeatedly", movesCmd},
		"hood":      {"", "list proposals for the term under the cursor", hoodCmd},
		"pick":      {"<n>", "replace the term under the cursor by proposal n", pickCmd},
		"show":      {"", "display the loaded term as a tree", showCmd},
		"validate":  {"[<term>]", "check if a term is TOP or BOT", validateCmd},
		"help":      {"", "list commands", helpCmd},
		"quit":      {"", "leave CREPL", func(*Intp, []string) (bool, error) { return true, nil }},
	}
}

func unknownCommand(cmd string) error {
	names := lo.Keys(commands)
	ranks := fuzzy.RankFindFold(cmd, names)
	sort.Sort(ranks)
	if len(ranks) > 0 {
		return fmt.Errorf("unknown command %q, did you mean %q?", cmd, ranks[0].Target)
	}
	return fmt.Errorf("unknown command %q, try 'help'", cmd)
}

func parseCmd(intp *Intp, args []string) (bool, error) {
	t, err := termlang.ParseTokens(args)
	if err != nil {
		return false, err
	}
	intp.show(t)
	return false, nil
}

type transform func(intp *Intp, t *term.Term) (*term.Term, error)

func stateless(f func(*term.Term) (*term.Term, error)) transform {
	return func(_ *Intp, t *term.Term) (*term.Term, error) {
		return f(t)
	}
}

func simplify(intp *Intp, t *term.Term) (*term.Term, error) {
	return compiler.Simplify(t, compiler.StepLimit(intp.steps))
}

func transformCmd(f transform) func(*Intp, []string) (bool, error) {
	return func(intp *Intp, args []string) (bool, error) {
		t, err := intp.termArg(args)
		if err != nil {
			return false, err
		}
		if t, err = f(intp, t); err != nil {
			return false, err
		}
		intp.show(t)
		return false, nil
	}
}

func abstractCmd(intp *Intp, args []string) (bool, error) {
	if len(args) == 0 {
		return false, fmt.Errorf("abstract needs a variable name")
	}
	t, err := intp.termArg(args[1:])
	if err != nil {
		return false, err
	}
	if t, err = compiler.Abstract(t, args[0]); err != nil {
		return false, err
	}
	intp.show(t)
	return false, nil
}

func loadCmd(intp *Intp, args []string) (bool, error) {
	t, err := intp.termArg(args)
	if err != nil {
		return false, err
	}
	arena := ast.NewArena(nil)
	root, err := arena.Load(t)
	if err != nil {
		return false, err
	}
	cursor := arena.NewCursor()
	if err = arena.InsertAbove(cursor, root); err != nil {
		return false, err
	}
	intp.arena, intp.cursor, intp.hood = arena, cursor, nil
	return showCmd(intp, nil)
}

func (intp *Intp) checkLoaded() error {
	if intp.cursor == ast.Nil {
		return fmt.Errorf("no term loaded; use 'load' first")
	}
	return nil
}

func moveCmd(d ast.Direction) func(*Intp, []string) (bool, error) {
	return func(intp *Intp, _ []string) (bool, error) {
		return intp.move(d)
	}
}

func movesCmd(intp *Intp, args []string) (bool, error) {
	for _, arg := range args {
		d, err := ast.ParseDirection(arg)
		if err != nil {
			return false, err
		}
		if _, err = intp.move(d); err != nil {
			return false, err
		}
	}
	return false, nil
}

func (intp *Intp) move(d ast.Direction) (bool, error) {
	if err := intp.checkLoaded(); err != nil {
		return false, err
	}
	if !intp.arena.TryMove(intp.cursor, d) {
		pterm.Warning.Printf("cannot move %s\n", d)
		return false, nil
	}
	intp.hood = nil
	pterm.Info.Println(termlang.Print(intp.arena.Dump(intp.arena.Root(intp.cursor))))
	return false, nil
}

func hoodCmd(intp *Intp, _ []string) (bool, error) {
	if err := intp.checkLoaded(); err != nil {
		return false, err
	}
	intp.hood = intp.arena.Neighborhood(intp.cursor)
	for i, t := range intp.hood {
		pterm.Printf("%3d  %s\n", i, termlang.Print(t))
	}
	return false, nil
}

func pickCmd(intp *Intp, args []string) (bool, error) {
	if err := intp.checkLoaded(); err != nil {
		return false, err
	}
	if len(args) != 1 {
		return false, fmt.Errorf("pick needs the number of a proposal")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n >= len(intp.hood) {
		return false, fmt.Errorf("no proposal %q; list proposals with 'hood'", args[0])
	}
	if _, err = intp.arena.Replace(intp.arena.Under(intp.cursor), intp.hood[n]); err != nil {
		return false, err
	}
	intp.hood = nil
	return showCmd(intp, nil)
}

var cursorStyle = pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)

func showCmd(intp *Intp, _ []string) (bool, error) {
	if err := intp.checkLoaded(); err != nil {
		return false, err
	}
	root := intp.arena.Root(intp.cursor)
	ll := leveledNodes(intp.arena, root, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	return false, nil
}

func leveledNodes(arena *ast.Arena, n ast.NodeID, ll pterm.LeveledList, level int) pterm.LeveledList {
	if n == ast.Nil {
		return append(ll, pterm.LeveledListItem{Level: level, Text: "∅"})
	}
	text := arena.Name(n)
	switch {
	case arena.IsCursor(n):
		text = cursorStyle.Sprint(text)
	case text == term.VAR:
		text += " " + arena.Ident(n)
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	for _, child := range arena.Below(n) {
		ll = leveledNodes(arena, child, ll, level+1)
	}
	return ll
}

func validateCmd(intp *Intp, args []string) (bool, error) {
	t, err := intp.termArg(args)
	if err != nil {
		return false, err
	}
	v, err := intp.client.Validate(intp.ctx(), []*term.Term{t})
	if err != nil {
		return false, err
	}
	pterm.Info.Println(v[0].String())
	return false, nil
}

func helpCmd(*Intp, []string) (bool, error) {
	names := lo.Keys(commands)
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		c := commands[name]
		fmt.Fprintf(&b, "%-10s %-16s %s\n", name, c.args, c.help)
	}
	pterm.Println(b.String())
	return false, nil
}
