package soshiki

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	nt "soshiki/entity"
)

// Layout is the filter definition file of a source.
type Layout struct {
	Source  string        `yaml:"source"`
	Filters nt.FilterList `yaml:"filters"`
}

func LoadLayout(path string) (layout *Layout, err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read layout from %s", path)
		return
	}

	layout = &Layout{}
	err = yaml.Unmarshal(data, layout)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal layout from %s", path)
		return
	}

	return
}

// Merge overlays saved filters onto their definitions.
// A saved filter replaces the definition with the same label and kind;
// definitions decide which filters exist and in what order.
func Merge(defined, saved nt.FilterList) nt.FilterList {

	type key struct {
		label string
		kind  nt.Kind
	}

	byKey := make(map[key]nt.Filter, len(saved))
	for _, f := range saved {
		byKey[key{f.Label(), f.Kind()}] = f
	}

	merged := make(nt.FilterList, len(defined))
	for i, f := range defined {
		if s, ok := byKey[key{f.Label(), f.Kind()}]; ok {
			merged[i] = s
			continue
		}
		merged[i] = f
	}
	return merged
}
