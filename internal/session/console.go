package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ironsheep/image-script/internal/script"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "Commands available:")
	fmt.Fprintln(w, "  open <path>      - load an image and make it current")
	fmt.Fprintln(w, "  save <path>      - save the current image")
	fmt.Fprintln(w, "  brighten <n>     - brighten (or darken) the current image")
	fmt.Fprintf(w, "  <action>         - one of: %s\n", strings.Join(Actions(), ", "))
	fmt.Fprintln(w, "  use <id>         - switch to a stored image")
	fmt.Fprintln(w, "  list             - list stored images")
	fmt.Fprintln(w, "  info             - describe the current image")
	fmt.Fprintln(w, "  help             - show this help message")
	fmt.Fprintln(w, "  quit             - exit")
}

// RunConsole reads one command per line from r until "quit" or end of input.
// Errors are printed to w and the loop continues.
func (s *Session) RunConsole(r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "Image Script Console")
	usage(w)

	sc := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !sc.Scan() {
			fmt.Fprintln(w)
			return sc.Err()
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "q" {
			return nil
		}
		if err := s.dispatch(w, fields[0], fields[1:]); err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		}
	}
}

func (s *Session) dispatch(w io.Writer, cmd string, args []string) error {
	arg := func() (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("%s requires 1 arg", cmd)
		}
		return args[0], nil
	}

	switch cmd {
	case "help", "h":
		usage(w)
		return nil
	case "open", "o":
		path, err := arg()
		if err != nil {
			return err
		}
		id, err := s.Open(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "current: %s\n", id)
		return nil
	case "save", "s":
		path, err := arg()
		if err != nil {
			return err
		}
		if err := s.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(w, "saved %s\n", path)
		return nil
	case "brighten":
		v, err := arg()
		if err != nil {
			return err
		}
		delta, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("brighten amount must be an integer, got %q", v)
		}
		id, err := s.Brighten(delta)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "current: %s\n", id)
		return nil
	case "use":
		id, err := arg()
		if err != nil {
			return err
		}
		if err := s.Select(id); err != nil {
			return err
		}
		fmt.Fprintf(w, "current: %s\n", id)
		return nil
	case "list":
		for _, id := range s.store.IDs() {
			marker := " "
			if id == s.current {
				marker = "*"
			}
			fmt.Fprintf(w, "%s %s\n", marker, id)
		}
		return nil
	case "info":
		id, img, err := s.Current()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, script.Describe(id, img))
		return nil
	}

	if _, ok := actions[cmd]; !ok {
		return fmt.Errorf("unknown command: %s (type help)", cmd)
	}
	id, err := s.Apply(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "current: %s\n", id)
	return nil
}
