package pipeline

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/gallifreyan/pkg/errors"
)

// LoadConfig reads pipeline defaults from a TOML file:
//
//	radius  = 8.0
//	style   = "chalk"
//	formats = ["svg", "png"]
//	vowels  = "skip"
//
// Unknown keys are rejected so typos do not pass silently. A missing file is
// reported with os.ErrNotExist in the chain.
func LoadConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config")
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML configuration. See [LoadConfig].
func ParseConfig(data []byte) (Options, error) {
	var opts Options
	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return Options{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, errs.New(errs.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return opts, nil
}
