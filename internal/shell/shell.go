// Package shell runs the interactive command loop over a sortedlist.List.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/bradenaw/sortedlist"
)

const (
	commandPrompt = "Please enter a command (i, d, m, p, f, q):  "
	stringPrompt  = "Please enter a string:  "
)

// Options configures a Shell.
type Options struct {
	// Prompt prints a prompt before reading each command and each string.
	Prompt bool
	// MaxTokenLen truncates strings longer than this many bytes. Zero means no limit.
	MaxTokenLen int
}

// Truncate cuts s down to MaxTokenLen bytes if it is longer.
func (o Options) Truncate(s string) string {
	if o.MaxTokenLen > 0 && len(s) > o.MaxTokenLen {
		return s[:o.MaxTokenLen]
	}
	return s
}

// Shell reads single-letter commands, each followed by a string where the command needs one, and
// applies them to a list:
//
//	i <s>  insert s
//	d <s>  delete s
//	m <s>  report whether s is in the list
//	p      print the list
//	f      remove everything from the list
//	q      quit
//
// A command is a single byte and may be followed directly by its string, as in "iapple".
// Otherwise commands and strings are separated by any whitespace. Commands are case-insensitive,
// and every byte that is not a command is reported on its own.
type Shell struct {
	list *sortedlist.List
	in   *bufio.Reader
	out  io.Writer
	opts Options
}

func New(list *sortedlist.List, in io.Reader, out io.Writer, opts Options) *Shell {
	return &Shell{
		list: list,
		in:   bufio.NewReader(in),
		out:  out,
		opts: opts,
	}
}

// Run executes commands until q or the end of input, then clears the list. It returns an error
// only if reading or writing fails.
func (sh *Shell) Run() error {
	defer sh.list.Clear()

	for {
		cmd, ok, err := sh.command()
		if err != nil {
			return err
		}
		if !ok || cmd == 'q' || cmd == 'Q' {
			return nil
		}
		if err := sh.exec(cmd); err != nil {
			return err
		}
	}
}

func (sh *Shell) exec(cmd byte) error {
	switch cmd {
	case 'i', 'I':
		s, ok, err := sh.token()
		if !ok || err != nil {
			return err
		}
		if errors.Is(sh.list.Insert(s), sortedlist.ErrAlreadyPresent) {
			return sh.printf("The string %s is already in the list.\n", s)
		}
	case 'p', 'P':
		return sh.printf("%s\n", sh.list)
	case 'm', 'M':
		s, ok, err := sh.token()
		if !ok || err != nil {
			return err
		}
		if sh.list.Member(s) {
			return sh.printf("%s is in the list\n", s)
		}
		return sh.printf("%s is not in the list\n", s)
	case 'd', 'D':
		s, ok, err := sh.token()
		if !ok || err != nil {
			return err
		}
		if errors.Is(sh.list.Delete(s), sortedlist.ErrNotFound) {
			return sh.printf("The string %s is not in the list.\n", s)
		}
	case 'f', 'F':
		sh.list.Clear()
	default:
		return sh.printf("There is no %c command\nPlease try again\n", cmd)
	}
	return nil
}

// command returns the next non-space byte. Whatever follows it is left for the next read, so
// "iapple" is the command i followed by the string apple.
func (sh *Shell) command() (byte, bool, error) {
	if sh.opts.Prompt {
		if err := sh.printf(commandPrompt); err != nil {
			return 0, false, err
		}
	}
	return sh.skipSpace()
}

// token returns the next run of non-space bytes, truncated to MaxTokenLen.
func (sh *Shell) token() (string, bool, error) {
	if sh.opts.Prompt {
		if err := sh.printf(stringPrompt); err != nil {
			return "", false, err
		}
	}
	c, ok, err := sh.skipSpace()
	if !ok || err != nil {
		return "", false, err
	}
	var sb strings.Builder
	sb.WriteByte(c)
	for {
		c, err := sh.in.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", false, errors.Wrap(err, "reading input")
		}
		if isSpace(c) {
			break
		}
		sb.WriteByte(c)
	}
	return sh.opts.Truncate(sb.String()), true, nil
}

// skipSpace returns the first non-space byte, or false at the end of input.
func (sh *Shell) skipSpace() (byte, bool, error) {
	for {
		c, err := sh.in.ReadByte()
		if err == io.EOF {
			return 0, false, nil
		} else if err != nil {
			return 0, false, errors.Wrap(err, "reading input")
		}
		if !isSpace(c) {
			return c, true, nil
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (sh *Shell) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(sh.out, format, args...)
	return errors.Wrap(err, "writing output")
}
