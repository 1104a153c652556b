package main

import (
	"fmt"
	"log"

	"github.com/bradenaw/juniper/xslices"
	"github.com/spf13/cobra"

	"github.com/bradenaw/sortedlist"
	"github.com/bradenaw/sortedlist/internal/shell"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var opts shell.Options

	cmd := &cobra.Command{
		Use:   "sortedlist [string...]",
		Short: "Maintain a sorted list of strings from commands on stdin",
		Long: `Reads commands from stdin and applies them to a sorted list of unique strings.

  i <s>  insert s
  d <s>  delete s
  m <s>  report whether s is in the list
  p      print the list
  f      remove everything from the list
  q      quit

Any strings given as arguments are inserted before reading commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := sortedlist.New()
			args = xslices.Map(args, opts.Truncate)
			for i, err := range list.InsertAll(args...) {
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipping %q: %v\n", args[i], err)
				}
			}
			return shell.New(list, cmd.InOrStdin(), cmd.OutOrStdout(), opts).Run()
		},
	}

	cmd.Flags().BoolVar(&opts.Prompt, "prompt", true, "print a prompt before each command and string")
	cmd.Flags().IntVar(&opts.MaxTokenLen, "max-token", 0, "truncate strings from arguments and stdin to this many bytes, 0 for no limit")
	return cmd
}
