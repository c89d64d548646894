package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-script/internal/rasterio"
	"github.com/ironsheep/image-script/internal/store"
)

// FileToken introduces a script file path inside a command stream.
const FileToken = "-file"

// Interpreter executes command scripts against an image store.
//
// A failing command never stops the stream: its error is written to the
// output as one diagnostic line and execution resumes at the next token.
// Unknown command names are reported the same way.
type Interpreter struct {
	env      Env
	log      logrus.FieldLogger
	commands map[string]Command
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(in *Interpreter) { in.log = log }
}

// WithCodec sets the codec used by load and save.
func WithCodec(c *rasterio.Codec) Option {
	return func(in *Interpreter) { in.env.Codec = c }
}

// WithStore sets the image store. The default is a new empty store.
func WithStore(s *store.Store) Option {
	return func(in *Interpreter) { in.env.Store = s }
}

// New creates an interpreter writing diagnostics and command output to out.
func New(out io.Writer, opts ...Option) *Interpreter {
	in := &Interpreter{
		env:      Env{Out: out},
		commands: Commands(),
	}
	for _, opt := range opts {
		opt(in)
	}
	if in.log == nil {
		in.log = logrus.StandardLogger()
	}
	if in.env.Store == nil {
		in.env.Store = store.New()
	}
	if in.env.Codec == nil {
		in.env.Codec = &rasterio.Codec{Log: in.log}
	}
	return in
}

// Store returns the interpreter's image store.
func (in *Interpreter) Store() *store.Store {
	return in.env.Store
}

// Run executes commands from r until it is exhausted.
//
// Parameters:
//   - r: The command stream. Commands and arguments are separated by any
//     whitespace.
//
// Returns:
//   - error: nil at end of input, the read error if r fails, or *ExitError
//     if the stream contained a "-file" token. Command failures are written
//     to the output and never returned.
func (in *Interpreter) Run(r io.Reader) error {
	tokens := NewTokens(r)
	for {
		name, ok := tokens.Next()
		if !ok {
			return tokens.Err()
		}

		if name == FileToken {
			path, ok := tokens.Next()
			if !ok {
				err := &ParseError{Command: FileToken, Msg: "missing script file path"}
				in.log.WithField("command", FileToken).Error(err.Msg)
				return &ExitError{Code: ExitUsage, Err: err}
			}
			return in.RunFile(path)
		}

		cmd, ok := in.commands[name]
		if !ok {
			in.diagnose("Invalid command: %s", name)
			in.log.WithField("command", name).Warn("invalid command")
			continue
		}

		start := time.Now()
		if err := cmd(&in.env, tokens); err != nil {
			in.diagnose("%s: %v", name, err)
			in.log.WithFields(logrus.Fields{
				"command": name,
				"error":   err,
			}).Warn("command failed")
			continue
		}
		in.log.WithFields(logrus.Fields{
			"command": name,
			"elapsed": time.Since(start),
		}).Debug("command executed")
	}
}

// RunFile executes the script at path.
//
// Parameters:
//   - path: Script file to open and run.
//
// Returns:
//   - error: Always *ExitError. Code 0 after the last command, Code 1 if the
//     file cannot be opened or read. A nested "-file" token ends the run
//     with the nested script's result.
func (in *Interpreter) RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		in.log.WithField("path", path).Error("cannot open script file")
		return &ExitError{Code: ExitOpenFailed, Err: fmt.Errorf("failed to open script: %w", err)}
	}
	defer f.Close()

	in.log.WithField("path", path).Debug("running script file")
	if err := in.Run(f); err != nil {
		var exit *ExitError
		if errors.As(err, &exit) {
			return exit
		}
		return &ExitError{Code: ExitOpenFailed, Err: fmt.Errorf("failed to read script: %w", err)}
	}
	return &ExitError{Code: ExitOK}
}

func (in *Interpreter) diagnose(format string, args ...any) {
	fmt.Fprintf(in.env.Out, format+"\n", args...)
}
