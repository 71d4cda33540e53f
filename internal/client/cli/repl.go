package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Farms(ctx context.Context) error
	Select(ctx context.Context, id string) error
	NewDraft(ctx context.Context) error
	Clear(ctx context.Context) error
	Set(ctx context.Context, field, value string) error
	Area(ctx context.Context, query string) error
	Save(ctx context.Context) error
	Generate(ctx context.Context) error
	ExportReport(ctx context.Context) error
	Species(ctx context.Context, query string) error
}

// runREPL starts a simple read–eval–print loop for the planting CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current selection (from statusFn) and accepts:
//
//	help               — show available commands
//	farms              — list registered farms
//	select <id>        — activate a registered farm
//	new                — start a fresh profile draft
//	clear              — drop the current selection
//	set <field> <v>    — stage one draft field value
//	area <query>       — stage a mock environment for an area
//	save               — register the current draft
//	generate           — fetch species recommendations
//	export             — write the current results to a report
//	species [query]    — search the species catalogue
//	exit | quit        — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pot> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: farms, select <id>, new, clear, set <field> <value>, area <query>, save, generate, export, species [query], exit")

		case "farms":
			_ = a.Farms(ctx)

		case "select":
			if len(args) == 0 {
				printlnFn("Usage: select <id>")
				continue
			}
			_ = a.Select(ctx, args[0])

		case "new":
			_ = a.NewDraft(ctx)

		case "clear":
			_ = a.Clear(ctx)

		case "set":
			if len(args) < 2 {
				printlnFn("Usage: set <field> <value>")
				continue
			}
			_ = a.Set(ctx, args[0], strings.Join(args[1:], " "))

		case "area":
			_ = a.Area(ctx, strings.Join(args, " "))

		case "save":
			_ = a.Save(ctx)

		case "generate":
			_ = a.Generate(ctx)

		case "export":
			_ = a.ExportReport(ctx)

		case "species":
			_ = a.Species(ctx, strings.Join(args, " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
