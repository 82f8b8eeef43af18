package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/mkelsey/caseconv/internal/cliutil"
	"github.com/mkelsey/caseconv/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: caseconv mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve caseconv conversions over MCP (stdio).\n\n")
		cliutil.Writef(fs.Output(), "Tools: convert, segment, rename_keys\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  CASECONV_DEFAULT_CONVENTION   convention used when a call omits \"to\" (default: kebab)\n")
		cliutil.Writef(fs.Output(), "  CASECONV_NUMBER_BOUNDARY      split words between letters and digits (default: false)\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	return mcpserver.Run(context.Background())
}
