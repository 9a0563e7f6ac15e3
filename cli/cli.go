// Package cli provides the plain line-oriented session loop: terminal I/O,
// output formatting, and meta-command dispatch for the labyrinth engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/labyrinth/engine"
	"github.com/nathoo/labyrinth/engine/events"
	"github.com/nathoo/labyrinth/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	return &CLI{
		Engine: eng,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run shows the welcome banner and the starting room, then loops:
// prompt → input → dispatch → output, until the game ends. End of input
// counts as quitting.
func (c *CLI) Run() {
	c.printLines(c.Engine.Welcome())

	scanner := bufio.NewScanner(c.In)
	for !c.Engine.State.GameOver {
		c.print(c.prompt())
		if !scanner.Scan() {
			c.printLine("")
			c.printLine("Leaving the game.")
			c.printResult(c.Engine.Quit())
			break
		}
		c.handle(scanner.Text())
	}

	c.printLine("")
	c.printLine(fmt.Sprintf("Game over! You took %d steps.", c.Engine.State.StepsTaken))
}

func (c *CLI) prompt() string {
	if p := c.Engine.Prompt(); p != "" {
		return p
	}
	return "> "
}

// handle processes one input line.
func (c *CLI) handle(line string) {
	input := strings.TrimSpace(line)

	// A pending question takes the line verbatim.
	if c.Engine.Prompt() != "" {
		if c.EchoInput {
			c.printLine(input)
		}
		c.step(input)
		return
	}

	if input == "" {
		return
	}
	// Skip comment lines (for script files).
	if strings.HasPrefix(input, "#") {
		return
	}
	if c.EchoInput {
		c.printLine(input)
	}

	// Meta-commands start with '/'.
	if strings.HasPrefix(input, "/") {
		c.handleMeta(input)
		return
	}

	// "again" / "g" repeats the last game command.
	lower := strings.ToLower(input)
	if lower == "again" || lower == "g" {
		if c.lastCmd == "" {
			c.printLine("Nothing to repeat.")
			return
		}
		input = c.lastCmd
	} else {
		c.lastCmd = input
	}

	c.step(input)
}

func (c *CLI) step(input string) {
	result := c.Engine.Step(input)
	c.printResult(result)
	if c.Trace {
		c.printTrace(result)
	}
}

// handleMeta dispatches meta-commands.
func (c *CLI) handleMeta(input string) {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printResult(c.Engine.Quit())

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit         — Leave the labyrinth",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"  /trace        — Toggle debug trace output",
		"  again (g)     — Repeat your last command",
		"",
	}
	c.printLines(help)
	c.printLines(engine.Help())
}

func (c *CLI) cmdState() {
	s := c.Engine.State
	c.printSystem(fmt.Sprintf("Steps: %d", s.StepsTaken))
	c.printSystem(fmt.Sprintf("Location: %s", s.Player.Location))
	c.printSystem(fmt.Sprintf("Inventory: %v", s.Player.Inventory))
	if room := c.Engine.World.Room(s.Player.Location); room != nil {
		c.printSystem(fmt.Sprintf("Room items: %v", room.ItemList()))
		c.printSystem(fmt.Sprintf("Riddle solved: %t", room.Solved()))
	}
}

func (c *CLI) printTrace(result types.Result) {
	if len(result.Events) == 0 {
		return
	}
	c.printSystem(fmt.Sprintf("[trace] Events: %d", len(result.Events)))
	for _, e := range result.Events {
		c.printSystem("[trace]   " + events.Format(e))
	}
}

func (c *CLI) printResult(result types.Result) {
	c.printLines(result.Output)
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
