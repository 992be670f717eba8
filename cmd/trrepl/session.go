package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/delaneyj/turnsignal/tr"
)

var errUsage = errors.New("usage")

type command struct {
	usage   string
	minArgs int
	maxArgs int // -1 for no limit
	run     func(s *session, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"set":     {"set NAME INT      create or write a cell", 2, 2, (*session).set},
		"inc":     {"inc NAME          add one to a cell", 1, 1, (*session).inc},
		"sum":     {"sum NAME SRC...   derive NAME as the sum of sources", 2, -1, (*session).sum},
		"mul":     {"mul NAME SRC...   derive NAME as the product of sources", 2, -1, (*session).mul},
		"get":     {"get NAME          print a cell", 1, 1, (*session).get},
		"watch":   {"watch NAME        print every change of a cell", 1, 1, (*session).watch},
		"unwatch": {"unwatch NAME      stop printing changes", 1, 1, (*session).unwatch},
		"bind":    {"bind SRC DST      make DST follow SRC", 2, 2, (*session).bind},
		"unbind":  {"unbind SRC DST    stop DST following SRC", 2, 2, (*session).unbind},
		"dispose": {"dispose NAME      tear a cell down and forget it", 1, 1, (*session).dispose},
		"list":    {"list              print every cell", 0, 0, (*session).list},
		"help":    {"help              show this help", 0, 0, (*session).help},
		"quit":    {"quit              leave", 0, 0, nil},
	}
}

// session holds the cells created from the command line, keyed by name.
type session struct {
	out      io.Writer
	reg      *tr.Registry
	watchers map[string]*tr.Listener[int]
}

func newSession(out io.Writer) *session {
	return &session{
		out:      out,
		reg:      tr.NewRegistry(),
		watchers: map[string]*tr.Listener[int]{},
	}
}

func (s *session) close() {
	s.reg.Dispose()
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *session) onError(key string, err error) {
	s.printf("error: %s: %v\n", key, err)
}

// exec runs one line and reports whether the session should continue.
func (s *session) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return true
	}

	name, args := fields[0], fields[1:]
	if name == "exit" {
		name = "quit"
	}
	cmd, ok := commands[name]
	if !ok {
		s.printf("unknown command %q, try help\n", name)
		return true
	}
	if cmd.run == nil {
		return false
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		s.printf("%v: %s\n", errUsage, cmd.usage)
		return true
	}
	if err := cmd.run(s, args); err != nil {
		s.printf("error: %v\n", err)
	}
	return true
}

// complete offers command names for liner.
func (s *session) complete(line string) []string {
	var out []string
	for name := range commands {
		if strings.HasPrefix(name, line) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

func (s *session) cell(name string) (*tr.Cell[int], error) {
	return tr.Lookup[int](s.reg, name)
}

func (s *session) cells(names []string) ([]*tr.Cell[int], error) {
	cells := make([]*tr.Cell[int], len(names))
	for i, name := range names {
		c, err := s.cell(name)
		if err != nil {
			return nil, err
		}
		cells[i] = c
	}
	return cells, nil
}

func parseValue(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q", raw)
	}
	return v, nil
}

func (s *session) set(args []string) error {
	name := args[0]
	v, err := parseValue(args[1])
	if err != nil {
		return err
	}

	c, err := s.cell(name)
	if errors.Is(err, tr.ErrUnknownKey) {
		c = tr.Atom(tr.AtomConfig[int]{
			Key:      name,
			Default:  v,
			Registry: s.reg,
			OnError:  s.onError,
		})
	} else if err != nil {
		return err
	} else {
		c.Set(v)
	}
	s.printf("%s = %d\n", name, c.Get())
	return nil
}

func (s *session) inc(args []string) error {
	c, err := s.cell(args[0])
	if err != nil {
		return err
	}
	c.Update(func(v int) int { return v + 1 })
	s.printf("%s = %d\n", args[0], c.Get())
	return nil
}

func (s *session) derive(args []string, fn func(...int) int) error {
	name := args[0]
	if _, err := s.cell(name); err == nil {
		return fmt.Errorf("%w: %q", tr.ErrDuplicateKey, name)
	}
	sources, err := s.cells(args[1:])
	if err != nil {
		return err
	}
	c := tr.Selector(tr.SelectorConfig[int, int]{
		Key:      name,
		Get:      fn,
		Registry: s.reg,
		OnError:  s.onError,
	})(sources...)
	s.printf("%s = %d\n", name, c.Get())
	return nil
}

func (s *session) sum(args []string) error {
	return s.derive(args, func(values ...int) int {
		total := 0
		for _, v := range values {
			total += v
		}
		return total
	})
}

func (s *session) mul(args []string) error {
	return s.derive(args, func(values ...int) int {
		product := 1
		for _, v := range values {
			product *= v
		}
		return product
	})
}

func (s *session) get(args []string) error {
	c, err := s.cell(args[0])
	if err != nil {
		return err
	}
	s.printf("%s = %d\n", args[0], c.Get())
	return nil
}

func (s *session) watch(args []string) error {
	name := args[0]
	c, err := s.cell(name)
	if err != nil {
		return err
	}
	if _, ok := s.watchers[name]; ok {
		return nil
	}
	l := tr.Listen(func(v int) {
		s.printf("%s -> %d\n", name, v)
	})
	s.watchers[name] = l
	c.Bind(l)
	return nil
}

func (s *session) unwatch(args []string) error {
	name := args[0]
	c, err := s.cell(name)
	if err != nil {
		return err
	}
	if l, ok := s.watchers[name]; ok {
		c.Unbind(l)
		delete(s.watchers, name)
	}
	return nil
}

func (s *session) bind(args []string) error {
	cells, err := s.cells(args)
	if err != nil {
		return err
	}
	cells[0].Bind(cells[1])
	s.printf("%s = %d\n", args[1], cells[1].Get())
	return nil
}

func (s *session) unbind(args []string) error {
	cells, err := s.cells(args)
	if err != nil {
		return err
	}
	cells[0].Unbind(cells[1])
	return nil
}

func (s *session) dispose(args []string) error {
	name := args[0]
	c, err := s.cell(name)
	if err != nil {
		return err
	}
	c.Dispose()
	s.reg.Remove(name)
	delete(s.watchers, name)
	s.printf("disposed %s\n", name)
	return nil
}

func (s *session) list(args []string) error {
	for _, name := range s.reg.Keys() {
		c, err := s.cell(name)
		if err != nil {
			return err
		}
		s.printf("%s = %d\n", name, c.Get())
	}
	return nil
}

func (s *session) help(args []string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		s.printf("  %s\n", commands[name].usage)
	}
	return nil
}
