package config

import (
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

func stringToAddress(
	f reflect.Type,
	t reflect.Type,
	data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}

	if t != reflect.TypeOf(common.Address{}) {
		return data, nil
	}

	hex := data.(string)
	if !common.IsHexAddress(hex) {
		return nil, errors.Errorf("%s is not a hex address", hex)
	}

	return common.HexToAddress(hex), nil
}

// AddDecodeHooks adds decode hooks to the given config to correctly translate strings into addresses
func AddDecodeHooks(cfg *mapstructure.DecoderConfig) {
	hooks := []mapstructure.DecodeHookFunc{
		stringToAddress,
		mapstructure.StringToTimeDurationHookFunc(),
	}
	if cfg.DecodeHook != nil {
		hooks = append(hooks, cfg.DecodeHook)
	}

	cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(hooks...)
}
