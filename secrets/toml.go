package secrets

import (
	gotoml "github.com/pelletier/go-toml/v2"
)

// TOML is a koanf.Parser for TOML documents.
type TOML struct{}

// TOMLParser returns a TOML parser for koanf.
func TOMLParser() *TOML {
	return &TOML{}
}

// Unmarshal parses the given TOML bytes.
func (p *TOML) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := gotoml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Marshal encodes the given map as TOML.
func (p *TOML) Marshal(o map[string]interface{}) ([]byte, error) {
	return gotoml.Marshal(o)
}
