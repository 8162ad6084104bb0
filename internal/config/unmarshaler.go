package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/smykla-skalski/packetguard/pkg/config"
)

// CustomDecoderConfig returns a mapstructure decoder config with custom type
// hooks for LogLevel.
func CustomDecoderConfig() *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToLogLevelHookFunc(),
		),
		WeaklyTypedInput: true,
		Result:           nil, // Set by caller
	}
}

// stringToLogLevelHookFunc returns a decode hook that accepts level names in
// any case and with surrounding whitespace.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToLogLevelHookFunc() mapstructure.DecodeHookFunc {
	return func(
		_ reflect.Type,
		t reflect.Type,
		data any,
	) (any, error) {
		if t != reflect.TypeFor[config.LogLevel]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return config.LogLevel(strings.ToLower(strings.TrimSpace(v))), nil
		case config.LogLevel:
			return config.LogLevel(strings.ToLower(strings.TrimSpace(string(v)))), nil
		default:
			return data, nil
		}
	}
}
