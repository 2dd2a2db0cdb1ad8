package backend

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/ambler289/ada-ui/template"
)

// Console is the line-oriented tier for terminals that cannot host a
// full-screen program. Every dialog becomes a numbered prompt sequence; an
// EOF at any point dismisses the session.
type Console struct {
	in      io.Reader
	out     io.Writer
	scanner *bufio.Scanner
	isStdin bool
}

// NewConsole builds a console backend over the given streams. Intended for
// tests; hosts use DefaultConsole.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// DefaultConsole reads from stdin and prompts on stderr, keeping stdout free
// for whatever the host process pipes through it.
func DefaultConsole() *Console {
	c := NewConsole(os.Stdin, os.Stderr)
	c.isStdin = true
	return c
}

// ID implements Adapter.
func (c *Console) ID() string { return "console" }

// Probe implements Adapter. The stdin-backed console requires an interactive
// stdin; consoles over injected streams are always available.
func (c *Console) Probe() error {
	if !c.isStdin {
		return nil
	}
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fmt.Errorf("%w: stdin is not interactive", ErrUnavailable)
	}
	return nil
}

// Run implements Adapter.
func (c *Console) Run(ctx context.Context, s *Session) (Signal, error) {
	if err := ctx.Err(); err != nil {
		return Dismissed(), err
	}

	c.header(s)
	switch s.Kind {
	case template.KindConfirm:
		return c.confirm(s), nil
	case template.KindInput:
		return c.input(s), nil
	case template.KindSelect:
		return c.selectList(s), nil
	case template.KindBigButtons:
		return c.bigButtons(s), nil
	case template.KindBulkEdit:
		return c.bulkEdit(s), nil
	default:
		return c.alert(s), nil
	}
}

func (c *Console) header(s *Session) {
	if s.Title != "" {
		fmt.Fprintf(c.out, "\n== %s ==\n", s.Title)
	}
	if s.Message != "" {
		fmt.Fprintln(c.out, s.Message)
	}
}

// readLine returns the next input line. ok is false on EOF or read error,
// which callers treat as dismissal.
func (c *Console) readLine() (string, bool) {
	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.in)
	}
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

func (c *Console) alert(s *Session) Signal {
	if len(s.Buttons) <= 1 {
		label := "OK"
		if len(s.Buttons) == 1 {
			label = s.Buttons[0]
		}
		fmt.Fprintf(c.out, "[%s] press enter: ", label)
		if _, ok := c.readLine(); !ok {
			return Dismissed()
		}
		return Signal{Kind: SignalAccepted, Button: label}
	}

	idx, ok := c.chooseOne(s.Buttons)
	if !ok {
		return Dismissed()
	}
	return Signal{Kind: SignalAccepted, Button: s.Buttons[idx]}
}

func (c *Console) confirm(s *Session) Signal {
	yes := "Yes"
	if len(s.Buttons) > 0 {
		yes = s.Buttons[0]
	}
	fmt.Fprint(c.out, "[y/N]: ")
	line, ok := c.readLine()
	if !ok {
		return Dismissed()
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return Signal{Kind: SignalAccepted, Button: yes}
	default:
		return Dismissed()
	}
}

func (c *Console) input(s *Session) Signal {
	prompt := s.Prompt
	if prompt == "" {
		prompt = "Value"
	}
	if s.Default != "" {
		fmt.Fprintf(c.out, "%s [%s]: ", prompt, s.Default)
	} else {
		fmt.Fprintf(c.out, "%s: ", prompt)
	}
	line, ok := c.readLine()
	if !ok {
		return Dismissed()
	}
	if line == "" {
		line = s.Default
	}
	return Signal{Kind: SignalAccepted, Text: line}
}

func (c *Console) selectList(s *Session) Signal {
	for i, item := range s.Items {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, item)
	}
	if !s.Multi {
		idx, ok := c.chooseIndex(len(s.Items))
		if !ok {
			return Dismissed()
		}
		return Signal{Kind: SignalAccepted, Indices: []int{idx}}
	}

	hint := "numbers (comma separated)"
	if s.AllButton {
		hint += ", or 'a' for all"
	}
	fmt.Fprintf(c.out, "Select %s: ", hint)
	line, ok := c.readLine()
	if !ok || line == "" {
		return Dismissed()
	}
	if s.AllButton && strings.EqualFold(line, "a") {
		all := make([]int, len(s.Items))
		for i := range all {
			all[i] = i
		}
		return Signal{Kind: SignalAccepted, Indices: all}
	}
	indices, err := parseIndexList(line, len(s.Items))
	if err != nil {
		fmt.Fprintln(c.out, err)
		return Dismissed()
	}
	return Signal{Kind: SignalAccepted, Indices: indices}
}

func (c *Console) bigButtons(s *Session) Signal {
	if !s.Multi {
		idx, ok := c.chooseOne(s.Items)
		if !ok {
			return Dismissed()
		}
		return Signal{Kind: SignalAccepted, Indices: []int{idx}}
	}
	return c.selectList(s)
}

func (c *Console) bulkEdit(s *Session) Signal {
	fields := map[string]string{}
	for _, p := range s.Params {
		label := p.DisplayName
		if label == "" {
			label = p.Name
		}
		switch p.Type {
		case "bool":
			fmt.Fprintf(c.out, "%s [%s] (yes/no, blank keeps): ", label, p.Current)
		default:
			fmt.Fprintf(c.out, "%s [%s] (blank keeps): ", label, p.Current)
		}
		line, ok := c.readLine()
		if !ok {
			return Dismissed()
		}
		if line != "" {
			fields[p.Name] = line
		}
	}
	fmt.Fprint(c.out, "Apply changes? [Y/n]: ")
	line, ok := c.readLine()
	if !ok {
		return Dismissed()
	}
	switch strings.ToLower(line) {
	case "", "y", "yes":
		return Signal{Kind: SignalAccepted, Fields: fields}
	default:
		return Dismissed()
	}
}

// chooseOne prints a numbered menu over labels and reads a single choice.
func (c *Console) chooseOne(labels []string) (int, bool) {
	for i, label := range labels {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, label)
	}
	return c.chooseIndex(len(labels))
}

func (c *Console) chooseIndex(n int) (int, bool) {
	fmt.Fprintf(c.out, "Choose [1-%d]: ", n)
	line, ok := c.readLine()
	if !ok || line == "" {
		return 0, false
	}
	idx, err := strconv.Atoi(line)
	if err != nil || idx < 1 || idx > n {
		fmt.Fprintln(c.out, "invalid choice")
		return 0, false
	}
	return idx - 1, true
}

func parseIndexList(line string, n int) ([]int, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' '
	})
	seen := map[int]bool{}
	indices := []int{}
	for _, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 1 || idx > n {
			return nil, fmt.Errorf("invalid choice %q", part)
		}
		if !seen[idx-1] {
			seen[idx-1] = true
			indices = append(indices, idx-1)
		}
	}
	sort.Ints(indices)
	return indices, nil
}
