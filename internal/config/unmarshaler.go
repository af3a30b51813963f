package config

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/smykla-skalski/benchtimer/pkg/config"
)

// DecoderConfig returns a mapstructure decoder config decoding into result,
// with hooks for the Representation and Format enums.
func DecoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToRepresentationHookFunc(),
			stringToFormatHookFunc(),
		),
		WeaklyTypedInput: true,
		TagName:          "koanf",
		Result:           result,
	}
}

//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToRepresentationHookFunc() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeFor[config.Representation]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return config.ParseRepresentation(v)
		case int:
			return config.Representation(v), nil
		case int64:
			return config.Representation(v), nil
		default:
			return data, nil
		}
	}
}

//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToFormatHookFunc() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeFor[config.Format]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return config.ParseFormat(v)
		case int:
			return config.Format(v), nil
		case int64:
			return config.Format(v), nil
		default:
			return data, nil
		}
	}
}
