package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jaspreet-dot-casa/parentpaths/pkg/parentpaths"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("invalid format %q (expected text, json or yaml)", format)
}

// render writes a resolution result. In text format every slot gets its
// own line, so an unresolved each-mode slot is an empty line. The
// structured formats encode unresolved slots as null.
func render(w io.Writer, format string, paths []string) error {
	switch format {
	case formatJSON:
		return json.NewEncoder(w).Encode(slots(paths))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(slots(paths)); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

// slots maps unresolved entries to nil pointers.
func slots(paths []string) []*string {
	out := make([]*string, len(paths))
	for i := range paths {
		if paths[i] != parentpaths.Unresolved {
			out[i] = &paths[i]
		}
	}
	return out
}
