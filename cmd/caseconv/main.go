package main

import (
	"fmt"
	"os"

	"github.com/mkelsey/caseconv"
	"github.com/mkelsey/caseconv/cmd/caseconv/commands"
	"github.com/mkelsey/caseconv/internal/cliutil"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("caseconv v%s\n", caseconv.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := commands.HandleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "keys":
		if err := commands.HandleKeys(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	out := os.Stdout
	cliutil.Writef(out, "caseconv - convert strings between casing conventions\n\n")
	cliutil.Writef(out, "Usage: caseconv <command> [flags] [args]\n\n")
	cliutil.Writef(out, "Commands:\n")
	cliutil.Writef(out, "  convert    Convert strings (arguments or stdin lines) to a convention\n")
	cliutil.Writef(out, "  keys       Rewrite object keys of a YAML/JSON document to a convention\n")
	cliutil.Writef(out, "  mcp        Serve conversions over MCP (stdio)\n")
	cliutil.Writef(out, "  version    Print the version\n")
	cliutil.Writef(out, "  help       Show this help\n\n")
	cliutil.Writef(out, "Conventions: kebab, camel, dot, snake, screaming-snake, pascal, title\n\n")
	cliutil.Writef(out, "Examples:\n")
	cliutil.Writef(out, "  caseconv convert -t kebab \"helloWorld\"\n")
	cliutil.Writef(out, "  echo \"HELLO_WORLD\" | caseconv convert -t dot -\n")
	cliutil.Writef(out, "  caseconv keys -t snake config.yaml\n\n")
	cliutil.Writef(out, "Run 'caseconv <command> -h' for command-specific flags.\n")
}
