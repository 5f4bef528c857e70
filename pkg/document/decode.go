package document

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Decode decodes a block's configuration into the typed record for its kind.
// Absent sequences decode as empty, scalar values are lifted where a record is
// expected (a plain string becomes a PlainItem, a ProjectItem, ...).
func Decode[T any](c Config) (T, error) {
	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			liftScalarHookFunc(),
		),
	})
	if err != nil {
		return out, err
	}
	if err := decoder.Decode(map[string]any(c)); err != nil {
		return out, fmt.Errorf("decode %T: %w", out, err)
	}
	return out, nil
}

// DecodeBlock decodes b's configuration into the record matching b.Type.
func DecodeBlock(b Block) (any, error) {
	switch b.Type {
	case HeaderBlockType:
		return Decode[HeaderBlock](b.Config)
	case SectionTitleBlockType:
		return Decode[SectionTitleBlock](b.Config)
	case CompoundTextBlockType:
		return Decode[CompoundTextBlock](b.Config)
	case TextBlockType:
		return Decode[TextBlock](b.Config)
	case GridBlockType:
		return Decode[GridBlock](b.Config)
	case ListBlockType:
		return Decode[ListBlock](b.Config)
	case PlainListBlockType:
		return Decode[PlainListBlock](b.Config)
	case CompactListBlockType:
		return Decode[CompactListBlock](b.Config)
	case TextGridBlockType:
		return Decode[TextGridBlock](b.Config)
	case ProjectBlockType:
		return Decode[ProjectBlock](b.Config)
	case StripeBlockType:
		return Decode[StripeBlock](b.Config)
	}
	return nil, fmt.Errorf("unknown block type %q", b.Type)
}

var scalarLifts = map[reflect.Type]func(string) any{
	reflect.TypeOf(PlainItem{}):    func(s string) any { return PlainItem{Text: s} },
	reflect.TypeOf(ProjectItem{}):  func(s string) any { return ProjectItem{Text: s} },
	reflect.TypeOf(CompoundItem{}): func(s string) any { return CompoundItem{Text: s} },
	reflect.TypeOf(CompactItem{}):  func(s string) any { return CompactItem{Content: s} },
	reflect.TypeOf(ListItem{}):     func(s string) any { return ListItem{LeftText: s} },
	reflect.TypeOf(GridItem{}):     func(s string) any { return GridItem{Content: []string{s}} },
	reflect.TypeOf(TextGridItem{}): func(s string) any { return TextGridItem{Content: []string{s}} },
}

func liftScalarHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if lift, ok := scalarLifts[t]; ok {
			return lift(reflect.ValueOf(data).String()), nil
		}
		return data, nil
	}
}
