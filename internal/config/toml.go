package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

func decodeTOML(data []byte, v any) error {
	md, err := toml.Decode(string(data), v)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		if _, ok := v.(*Config); ok {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	}
	return nil
}

func encodeTOML(w io.Writer, v any) error {
	return toml.NewEncoder(w).Encode(v)
}
