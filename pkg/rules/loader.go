package rules

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dom-json-toolkit/domtrim/pkg/errors"
)

// Load reads a rule-table source from a YAML or JSON file (YAML being a
// superset, one parser covers both) and builds the table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IOError(fmt.Sprintf("opening rule file %s", path), err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader reads a rule-table source from r and builds the table.
func LoadReader(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.IOError("reading rule source", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.ConfigError("parsing rule source", err)
	}

	source := make(Source, len(raw))
	for category, v := range raw {
		entries, ok := v.([]interface{})
		if !ok {
			return nil, errors.ConfigError(
				fmt.Sprintf("category %q: expected a list of entries, got %T", category, v), nil)
		}
		source[category] = entries
	}
	return Build(source)
}
