package script

import (
	"fmt"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-script/internal/raster"
	"github.com/ironsheep/image-script/internal/rasterio"
	"github.com/ironsheep/image-script/internal/store"
	"github.com/ironsheep/image-script/internal/transform"
)

// Env is the state a command operates on.
type Env struct {
	Store *store.Store
	Codec *rasterio.Codec
	Out   io.Writer
}

// Command consumes its own arguments from args and executes against env.
type Command func(env *Env, args *Tokens) error

// Commands returns the full command table: load, save, brighten, info, and
// one entry per transformation catalog name.
func Commands() map[string]Command {
	cmds := map[string]Command{
		"load":     load,
		"save":     save,
		"brighten": brighten,
		"info":     info,
	}
	for _, name := range transform.Names() {
		fn, _ := transform.Lookup(name)
		cmds[name] = apply(name, fn)
	}
	return cmds
}

// word consumes one argument token.
func word(args *Tokens, cmd, what string) (string, error) {
	tok, ok := args.Next()
	if !ok {
		return "", &ParseError{Command: cmd, Msg: "missing " + what}
	}
	return tok, nil
}

// integer consumes one integer argument. A non-integer token is not consumed.
func integer(args *Tokens, cmd, what string) (int, error) {
	n, tok, ok := args.NextInt()
	if !ok {
		if tok == "" {
			return 0, &ParseError{Command: cmd, Msg: "missing " + what}
		}
		return 0, &ParseError{Command: cmd, Msg: fmt.Sprintf("%s must be an integer, got %q", what, tok)}
	}
	return n, nil
}

// srcDest reads the source and destination ids shared by every
// transformation command.
func srcDest(args *Tokens, cmd string) (src, dest string, err error) {
	if src, err = word(args, cmd, "source image id"); err != nil {
		return "", "", err
	}
	if dest, err = word(args, cmd, "destination image id"); err != nil {
		return "", "", err
	}
	return src, dest, nil
}

// load <path> <id>
func load(env *Env, args *Tokens) error {
	path, err := word(args, "load", "file path")
	if err != nil {
		return err
	}
	id, err := word(args, "load", "image id")
	if err != nil {
		return err
	}
	img, err := env.Codec.Load(path)
	if err != nil {
		return err
	}
	return env.Store.Put(id, img)
}

// save <path> <id>
func save(env *Env, args *Tokens) error {
	path, err := word(args, "save", "file path")
	if err != nil {
		return err
	}
	id, err := word(args, "save", "image id")
	if err != nil {
		return err
	}
	img, err := env.Store.Get(id)
	if err != nil {
		return err
	}
	return env.Codec.Save(path, img)
}

// brighten <delta> <src> <dest>
func brighten(env *Env, args *Tokens) error {
	delta, err := integer(args, "brighten", "brightness amount")
	if err != nil {
		return err
	}
	return run(env, args, "brighten", transform.Brighten(delta))
}

func apply(name string, fn transform.Func) Command {
	return func(env *Env, args *Tokens) error {
		return run(env, args, name, fn)
	}
}

func run(env *Env, args *Tokens, cmd string, fn transform.Func) error {
	src, dest, err := srcDest(args, cmd)
	if err != nil {
		return err
	}
	img, err := env.Store.Get(src)
	if err != nil {
		return err
	}
	return env.Store.Put(dest, fn(img))
}

// info <id> prints dimensions and the mean color.
func info(env *Env, args *Tokens) error {
	id, err := word(args, "info", "image id")
	if err != nil {
		return err
	}
	img, err := env.Store.Get(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, Describe(id, img))
	return nil
}

// Describe summarizes an image as "<id>: WxH mean #rrggbb hsl(h,s%,l%)".
func Describe(id string, img *raster.Image) string {
	m := img.Mean()
	c := colorful.Color{
		R: float64(m.R) / 255,
		G: float64(m.G) / 255,
		B: float64(m.B) / 255,
	}
	h, s, l := c.Hsl()
	return fmt.Sprintf("%s: %dx%d mean %s hsl(%d,%d%%,%d%%)",
		id, img.Width(), img.Height(), c.Hex(), int(h+0.5), int(s*100+0.5), int(l*100+0.5))
}
