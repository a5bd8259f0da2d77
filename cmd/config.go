package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// applyConfigFile sets every flag named in the yaml file at path, unless it
// was given on the command line. Keys are flag names:
//
//	tiles: 30
//	interval: 100ms
//	director: pathfind
func applyConfigFile(cmd *cobra.Command, path string) error {
	if path == "" {
		return nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}

	values := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}

	flags := cmd.Flags()
	for name, value := range values {
		flag := flags.Lookup(name)
		if flag == nil {
			return errors.Errorf("config %s: unknown setting %q for %s", path, name, cmd.CommandPath())
		}
		if name == "config" || flag.Changed {
			continue
		}
		if err := flags.Set(name, fmt.Sprint(value)); err != nil {
			return errors.Wrapf(err, "config %s: %s", path, name)
		}
	}
	return nil
}
