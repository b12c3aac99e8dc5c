package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

var (
	// ErrNoChoices is returned when a menu has nothing to choose from.
	ErrNoChoices = errors.New("no choices to select from")
	// ErrNotANumber is returned by ParseSelection for non-numeric input.
	ErrNotANumber = errors.New("selection is not a number")
	// ErrOutOfRange is returned by ParseSelection for a number outside the menu.
	ErrOutOfRange = errors.New("selection out of range")
)

// Choice is one entry of a menu. Its position in the menu gives its selection number.
type Choice struct {
	Key   string
	Label string
}

// Console reads answers line by line from in and writes prompts to out.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	invalid *color.Color
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		invalid: color.New(color.FgRed),
	}
}

// ParseSelection evaluates one answer to a menu of n choices and returns the 1-based selection.
func ParseSelection(line string, n int) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, ErrNotANumber
	}
	if idx < 1 || idx > n {
		return 0, ErrOutOfRange
	}
	return idx, nil
}

// Choose prints the numbered labels and asks until a valid number is entered,
// then returns the key of that choice. Invalid answers are never returned,
// only a read error ends the loop early.
func (c *Console) Choose(options []Choice, prompt string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoChoices
	}

	for i, o := range options {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, o.Label)
	}

	for attempt := 1; ; attempt++ {
		fmt.Fprintf(c.out, "%s (between 1 and %d): ", prompt, len(options))

		line, err := c.readLine()
		if err != nil {
			return "", err
		}

		idx, err := ParseSelection(line, len(options))
		if err != nil {
			zap.S().Named("console").Debugw("invalid selection", "input", line, "attempt", attempt, "error", err)
			c.invalid.Fprintln(c.out, "Invalid selection")
			continue
		}

		return options[idx-1].Key, nil
	}
}

// Confirm asks a yes/no question. Only "y" and "yes", in any case, are affirmative.
func (c *Console) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.out, "%s (yes/no) ", prompt)

	line, err := c.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Ask prints the prompt and returns the answer trimmed of surrounding whitespace.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine returns the next line without its terminator. A last line without
// a newline is still returned, io.EOF is only reported once input is exhausted.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
