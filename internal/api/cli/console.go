package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"carrental-desk/internal/domain"
)

// maxLineLength bounds a single answer. Longer lines are drained and
// rejected.
const maxLineLength = 4096

// console is the line-oriented terminal the desk talks through. Write errors
// are sticky: after the first failure every write is dropped and err reports
// it.
type console struct {
	reader *bufio.Reader
	out    io.Writer
	err    error
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (c *console) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.out, format, args...)
}

func (c *console) println(line string) {
	c.printf("%s\n", line)
}

// prompt writes label and reads one line of input. A whole line is consumed
// even when only part of it is used, so a bad answer never leaks into the
// next prompt. It returns io.EOF once the input is exhausted.
func (c *console) prompt(label string) (string, error) {
	c.printf("%s", label)
	if c.err != nil {
		return "", c.err
	}
	return c.readLine()
}

func (c *console) readLine() (string, error) {
	var line []byte
	read, overlong := false, false
	for {
		chunk, more, err := c.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if read {
					break
				}
				return "", io.EOF
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		read = true
		if !overlong {
			if len(line)+len(chunk) > maxLineLength {
				overlong, line = true, nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !more {
			break
		}
	}
	if overlong {
		return "", domain.NewInvalidInputError(
			fmt.Sprintf("Invalid input! Please keep answers under %d characters.", maxLineLength))
	}
	return string(line), nil
}
