// Package yaml loads CLI configuration files with gopkg.in/yaml.v3.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// Ensure Loader is a kong.ConfigurationLoader at compile time.
var _ kong.ConfigurationLoader = Loader

// Loader reads a YAML mapping and resolves kong flags from it. A flag is
// looked up under a mapping named after its command first, then at the top
// level. Keys may use the flag name as-is or with dashes replaced by
// underscores.
//
//	verbose: true
//	parse:
//	  format: json
//	  concurrency: 8
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml config: %w", err)
	}

	var f kong.ResolverFunc = func(_ *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if section, ok := values[parent.Command.Name].(map[string]any); ok {
				if v, ok := lookup(section, flag.Name); ok {
					return v, nil
				}
			}
		}
		if v, ok := lookup(values, flag.Name); ok {
			return v, nil
		}
		return nil, nil
	}
	return f, nil
}

// lookup returns the scalar value stored under name as a string, the form
// every kong mapper accepts. Lists are joined with commas.
func lookup(values map[string]any, name string) (any, bool) {
	for _, key := range []string{name, strings.ReplaceAll(name, "-", "_")} {
		switch v := values[key].(type) {
		case nil, map[string]any:
			continue
		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				items = append(items, fmt.Sprint(item))
			}
			return strings.Join(items, ","), true
		default:
			return fmt.Sprint(v), true
		}
	}
	return nil, false
}
