// Package content loads layouts and the shared content store and resolves
// content keys.
//
// A layout is either a bare list of sections or a mapping with "sections"
// and an optional document "config" (the footer). A section may name a
// content_key; Merge fills that block's config from the store entry of the
// same name, with the block's own keys winning on conflicts.
package content

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/filesystem"
	"github.com/seanlgirgis/folio/pkg/logging"
)

// KeyField is the block config key naming a store entry.
const KeyField = "content_key"

// Store maps content keys to block config fragments.
type Store map[string]document.Config

type rawBlock struct {
	Type   string          `yaml:"type" toml:"type"`
	Config document.Config `yaml:"config" toml:"config"`
}

type rawFooter struct {
	Text      string `yaml:"text" toml:"text"`
	ShowPages bool   `yaml:"show_pages" toml:"show_pages"`
}

type rawLayout struct {
	Sections []rawBlock `yaml:"sections" toml:"sections"`
	Config   struct {
		Footer *rawFooter `yaml:"footer" toml:"footer"`
	} `yaml:"config" toml:"config"`
}

// Loader reads layouts and stores from a filesystem.
type Loader struct {
	fs     filesystem.FS
	logger zerolog.Logger
}

// NewLoader creates a Loader over fsys.
func NewLoader(fsys filesystem.FS) *Loader {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Loader{fs: fsys, logger: logging.GetLogger("content")}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func (l *Loader) read(path string, code errors.ErrorCode) ([]byte, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "file not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, code, "cannot read %s", path)
	}
	return data, nil
}

// Layout loads a layout file (YAML, or TOML by extension) into a document.
func (l *Loader) Layout(path string) (*document.Document, error) {
	data, err := l.read(path, errors.ErrLayoutLoad)
	if err != nil {
		return nil, err
	}

	var raw rawLayout
	if isTOML(path) {
		err = toml.Unmarshal(data, &raw)
	} else {
		err = decodeYAMLLayout(data, &raw)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLayoutLoad, "invalid layout %s", path).
			WithDetail("path", path)
	}

	doc := &document.Document{Sections: make([]document.Block, 0, len(raw.Sections))}
	for _, b := range raw.Sections {
		if b.Config == nil {
			b.Config = document.Config{}
		}
		doc.Sections = append(doc.Sections, document.Block{Type: document.BlockType(b.Type), Config: b.Config})
	}
	if f := raw.Config.Footer; f != nil {
		doc.Config.Footer = &document.Footer{Text: f.Text, ShowPages: f.ShowPages}
	}

	l.logger.Debug().Str("path", path).Int("sections", len(doc.Sections)).Msg("loaded layout")
	return doc, nil
}

// decodeYAMLLayout accepts a bare section list or a {sections, config} map.
func decodeYAMLLayout(data []byte, raw *rawLayout) error {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	if len(node.Content) == 0 {
		return nil
	}
	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		return root.Decode(&raw.Sections)
	}
	return root.Decode(raw)
}

// Store loads the content store (YAML, or TOML by extension).
func (l *Loader) Store(path string) (Store, error) {
	data, err := l.read(path, errors.ErrStoreLoad)
	if err != nil {
		return nil, err
	}

	store := Store{}
	if isTOML(path) {
		err = toml.Unmarshal(data, &store)
	} else {
		err = yaml.Unmarshal(data, &store)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreLoad, "invalid content store %s", path).
			WithDetail("path", path)
	}

	l.logger.Debug().Str("path", path).Int("entries", len(store)).Msg("loaded content store")
	return store, nil
}

// Merge returns a copy of sections with every content key resolved: the
// store entry provides defaults and the block's own config wins. A key that
// is not in the store is logged and the block is kept as written. Neither
// input is modified.
func Merge(sections []document.Block, store Store, logger zerolog.Logger) []document.Block {
	out := make([]document.Block, len(sections))
	for i, b := range sections {
		cfg := b.Config.Clone()
		key := cfg.String(KeyField)
		if key != "" {
			entry, ok := store[key]
			if !ok {
				logger.Warn().Str("content_key", key).Str("block", string(b.Type)).Msg("content key not found in store")
			} else {
				merged := entry.Clone()
				for k, v := range cfg {
					if k == KeyField {
						continue
					}
					merged[k] = v
				}
				cfg = merged
			}
		}
		out[i] = document.Block{Type: b.Type, Config: cfg}
	}
	return out
}

// Resolve returns doc with its sections merged against store.
func Resolve(doc *document.Document, store Store, logger zerolog.Logger) *document.Document {
	out := &document.Document{Config: doc.Config}
	if doc.Config.Footer != nil {
		f := *doc.Config.Footer
		out.Config.Footer = &f
	}
	out.Sections = Merge(doc.Sections, store, logger)
	return out
}
