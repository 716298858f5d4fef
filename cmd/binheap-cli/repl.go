package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"github.com/contribsys/binheap"
)

const helpMsg = `Valid commands:

insert K [VALUE]	insert key K with an optional string value, prints the new item id
min			show the current minimum item
pop			delete the minimum item
decrease ID BY		lower item ID's key by BY
delete ID		remove item ID, wherever it is
fill N			insert N random keys
size			number of elements
trees			number of binomial trees
flush			throw the heap away and start empty
version
help
exit`

type session struct {
	heap   *binheap.Heap
	items  map[int64]*binheap.Item
	ids    map[*binheap.Item]int64
	nextID int64
	out    io.Writer
}

func newSession(out io.Writer) *session {
	return &session{
		heap:  binheap.New(),
		items: map[int64]*binheap.Item{},
		ids:   map[*binheap.Item]int64{},
		out:   out,
	}
}

func repl() {
	s := newSession(os.Stdout)

	completer := readline.NewPrefixCompleter(
		readline.PcItem("insert"),
		readline.PcItem("min"),
		readline.PcItem("pop"),
		readline.PcItem("decrease"),
		readline.PcItem("delete"),
		readline.PcItem("fill"),
		readline.PcItem("size"),
		readline.PcItem("trees"),
		readline.PcItem("flush"),
		readline.PcItem("version"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFilePath(),
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			fmt.Println("")
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cmd := strings.Fields(line)
		if cmd[0] == "exit" || cmd[0] == "quit" {
			break
		}

		if err := s.execute(cmd); err != nil {
			fmt.Println(err)
		}
	}
}

func (s *session) execute(cmd []string) error {
	switch cmd[0] {
	case "exit", "quit":
		return nil
	case "version":
		fmt.Fprintf(s.out, "%s %s\n", binheap.Name, binheap.Version)
	case "help":
		fmt.Fprintln(s.out, helpMsg)
	case "insert":
		return s.insert(cmd[1:])
	case "min":
		return s.min()
	case "pop":
		return s.pop()
	case "decrease":
		return s.decrease(cmd[1:])
	case "delete":
		return s.delete(cmd[1:])
	case "fill":
		return s.fill(cmd[1:])
	case "size":
		fmt.Fprintln(s.out, s.heap.Size())
	case "trees":
		fmt.Fprintln(s.out, s.heap.NumTrees())
	case "flush":
		s.heap = binheap.New()
		s.items = map[int64]*binheap.Item{}
		s.ids = map[*binheap.Item]int64{}
		fmt.Fprintln(s.out, "OK")
	default:
		return errors.Errorf("unknown command %q, try help", cmd[0])
	}
	return nil
}

func (s *session) track(it *binheap.Item) int64 {
	s.nextID++
	s.items[s.nextID] = it
	s.ids[it] = s.nextID
	return s.nextID
}

func (s *session) forget(it *binheap.Item) {
	id := s.ids[it]
	delete(s.items, id)
	delete(s.ids, it)
}

func (s *session) lookup(arg string) (*binheap.Item, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return nil, errors.Errorf("%q is not an item id", arg)
	}
	it, ok := s.items[id]
	if !ok {
		return nil, errors.Errorf("no item %d", id)
	}
	return it, nil
}

func (s *session) insert(args []string) error {
	if len(args) == 0 {
		return errors.New("insert needs a key")
	}
	key, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Errorf("%q is not an integer key", args[0])
	}
	var value any
	if len(args) > 1 {
		value = strings.Join(args[1:], " ")
	}
	id := s.track(s.heap.Insert(key, value))
	fmt.Fprintf(s.out, "item %d\n", id)
	return nil
}

func (s *session) min() error {
	it := s.heap.FindMin()
	if it == nil {
		fmt.Fprintln(s.out, "heap is empty")
		return nil
	}
	s.show(it)
	return nil
}

func (s *session) pop() error {
	it, err := s.heap.DeleteMin()
	if err != nil {
		return err
	}
	s.show(it)
	s.forget(it)
	return nil
}

func (s *session) decrease(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: decrease ID BY")
	}
	it, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	by, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Errorf("%q is not an integer amount", args[1])
	}
	if err := s.heap.DecreaseKey(it, by); err != nil {
		return err
	}
	s.show(it)
	return nil
}

func (s *session) delete(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: delete ID")
	}
	it, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	if err := s.heap.Delete(it); err != nil {
		return err
	}
	s.forget(it)
	fmt.Fprintln(s.out, "OK")
	return nil
}

func (s *session) fill(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: fill N")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return errors.Errorf("%q is not a positive count", args[0])
	}
	for i := 0; i < n; i++ {
		s.track(s.heap.Insert(rand.Intn(1_000_000), nil)) //nolint:gosec
	}
	fmt.Fprintf(s.out, "inserted %d items, %d total in %d trees\n",
		n, s.heap.Size(), s.heap.NumTrees())
	return nil
}

func (s *session) show(it *binheap.Item) {
	if it.Value() == nil {
		fmt.Fprintf(s.out, "item %d: key=%d\n", s.ids[it], it.Key())
		return
	}
	fmt.Fprintf(s.out, "item %d: key=%d value=%v\n", s.ids[it], it.Key(), it.Value())
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".binheap_history")
}
