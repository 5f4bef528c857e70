package config

import (
	"bytes"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/filesystem"
	"github.com/seanlgirgis/folio/pkg/theme"
)

// StarterStyle renders the built-in theme under a "theme" key, as YAML or
// TOML.
func StarterStyle(format string) ([]byte, error) {
	doc := map[string]theme.Theme{"theme": theme.Default()}
	switch format {
	case "yaml", "yml", "":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode starter style")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode starter style")
		}
		return buf.Bytes(), nil
	case "toml":
		data, err := toml.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode starter style")
		}
		return data, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown style format %q", format)
}

// WriteStarter writes a starter folio.yaml and style file into dir and
// returns the written paths. Existing files are kept unless force is set.
func WriteStarter(fsys filesystem.FS, dir, styleFormat string, force bool) ([]string, error) {
	style, err := StarterStyle(styleFormat)
	if err != nil {
		return nil, err
	}
	ext := styleFormat
	if ext == "" || ext == "yml" {
		ext = "yaml"
	}

	project := starterConfig
	if ext != "yaml" {
		project = bytes.Replace(project, []byte("style: style.yaml"), []byte("style: style."+ext), 1)
	}

	files := []struct {
		path string
		data []byte
	}{
		{filepath.Join(dir, ProjectFiles[0]), project},
		{filepath.Join(dir, "style."+ext), style},
	}

	if !force {
		for _, f := range files {
			if _, err := fsys.Stat(f.path); err == nil {
				return nil, errors.Newf(errors.ErrInvalidInput, "%s already exists", f.path).
					WithDetail("path", f.path)
			}
		}
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := filesystem.WriteFileAtomic(fsys, f.path, f.data); err != nil {
			return written, err
		}
		written = append(written, f.path)
	}
	return written, nil
}
