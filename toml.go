package fireblocks

import (
	"os"

	"github.com/BurntSushi/toml"
)

// loadTOMLFile reads and parses one configuration source into a nested key
// tree. A missing file is a ConfigNotFoundError, any other read failure an
// IOError, and a malformed document a ParseError; all three carry the path.
func loadTOMLFile(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigNotFoundError{Path: path}
		}
		return nil, &IOError{Path: path, Err: err}
	}

	var tree map[string]any
	if err := toml.Unmarshal(raw, &tree); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return tree, nil
}
