// Package session tracks a "current image" the way an interactive editor
// does: every action transforms the current image, stores the result under a
// derived name and makes it current.
package session

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-script/internal/raster"
	"github.com/ironsheep/image-script/internal/rasterio"
	"github.com/ironsheep/image-script/internal/store"
	"github.com/ironsheep/image-script/internal/transform"
)

// ErrNoImage is returned by actions that need a current image when none has
// been opened.
var ErrNoImage = errors.New("no image loaded")

// actions maps each editor action to its catalog entry. The action name is
// also the suffix of the derived image id.
var actions = map[string]string{
	"value":     transform.ValueComponent,
	"intensity": transform.IntensityComponent,
	"luma":      transform.LumaComponent,
	"red":       transform.RedComponent,
	"green":     transform.GreenComponent,
	"blue":      transform.BlueComponent,
	"blur":      transform.Blur,
	"sharpen":   transform.Sharpen,
	"grayscale": transform.Grayscale,
	"sepia":     transform.Sepia,
}

// Actions returns the names accepted by Apply, sorted.
func Actions() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Session is a single-user editing session.
type Session struct {
	store   *store.Store
	codec   *rasterio.Codec
	log     logrus.FieldLogger
	current string
}

// New creates a session over s using codec for file access.
func New(s *store.Store, codec *rasterio.Codec, log logrus.FieldLogger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{store: s, codec: codec, log: log}
}

// Current returns the id and image currently being edited.
func (s *Session) Current() (string, *raster.Image, error) {
	if s.current == "" {
		return "", nil, ErrNoImage
	}
	img, err := s.store.Get(s.current)
	if err != nil {
		return "", nil, err
	}
	return s.current, img, nil
}

// Select makes a stored image current.
func (s *Session) Select(id string) error {
	if _, err := s.store.Get(id); err != nil {
		return err
	}
	s.current = id
	return nil
}

// Open loads path and makes it current.
//
// Parameters:
//   - path: Image file to load.
//
// Returns:
//   - string: The new id, the file name without its extension, so
//     "pics/koala.ppm" becomes "koala".
//   - error: The codec's *rasterio.IOError. The current image is unchanged
//     on failure.
func (s *Session) Open(path string) (string, error) {
	img, err := s.codec.Load(path)
	if err != nil {
		return "", err
	}
	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))
	if id == "" {
		id = base
	}
	if err := s.store.Put(id, img); err != nil {
		return "", err
	}
	s.current = id
	s.log.WithFields(logrus.Fields{"id": id, "path": path}).Info("image opened")
	return id, nil
}

// Apply runs a named action on the current image.
//
// Parameters:
//   - action: One of Actions(), e.g. "blur" or "red".
//
// Returns:
//   - string: The id of the result, "<current>-<action>", which becomes
//     current.
//   - error: ErrNoImage if nothing is open, or an error for an unknown
//     action.
func (s *Session) Apply(action string) (string, error) {
	name, ok := actions[action]
	if !ok {
		return "", fmt.Errorf("unknown action: %s", action)
	}
	fn, _ := transform.Lookup(name)
	return s.derive(action, fn)
}

// Brighten adds delta to every channel of the current image. The result is
// stored as "<current>-brighten".
func (s *Session) Brighten(delta int) (string, error) {
	return s.derive("brighten", transform.Brighten(delta))
}

func (s *Session) derive(suffix string, fn transform.Func) (string, error) {
	cur, img, err := s.Current()
	if err != nil {
		return "", err
	}
	id := cur + "-" + suffix
	if err := s.store.Put(id, fn(img)); err != nil {
		return "", err
	}
	s.current = id
	s.log.WithFields(logrus.Fields{"from": cur, "id": id}).Debug("action applied")
	return id, nil
}

// Save writes the current image to path.
func (s *Session) Save(path string) error {
	_, img, err := s.Current()
	if err != nil {
		return err
	}
	return s.codec.Save(path, img)
}
