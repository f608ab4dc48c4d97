package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p.Output, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the *Command; print each once under its primary name
	seen := make(map[*Command]bool)
	names := slices.Sorted(maps.Keys(commands))
	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if command == nil || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true
		line := indent + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
