package theme

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/logging"
)

// themeKey is the top-level key the theme lives under in a style file. A file
// without it is read as a bare theme.
const themeKey = "theme"

// Load reads a YAML or TOML style file and returns its theme merged over
// Default. The parser is chosen by file extension.
func Load(path string) (Theme, error) {
	logger := logging.GetLogger("theme")

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Theme{}, errors.Newf(errors.ErrNotFound, "style file not found: %s", path).
				WithDetail("path", path)
		}
		return Theme{}, errors.Wrapf(err, errors.ErrThemeLoad, "cannot stat style file %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return Theme{}, errors.Wrapf(err, errors.ErrThemeLoad, "failed to parse style file %s", path).
			WithDetail("path", path)
	}

	prefix := ""
	if k.Exists(themeKey) {
		prefix = themeKey
	}

	t := Default()
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &t,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf(prefix, &t, unmarshalConf); err != nil {
		return Theme{}, errors.Wrapf(err, errors.ErrThemeLoad, "invalid theme in %s", path).
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Str("primary", t.PrimaryColor).Msg("theme loaded")
	return t, nil
}

// parserFor picks the koanf parser for a file; YAML is the default.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser()
	default:
		return yaml.Parser()
	}
}
