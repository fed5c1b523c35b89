package i18n

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/HKKoho/DocumentHub/internal/domain/facet"
	"github.com/HKKoho/DocumentHub/internal/domain/locale"
)

// dictionaryFile is the YAML shape of a locale dictionary.
type dictionaryFile struct {
	Locale string                       `yaml:"locale"`
	Labels map[string]map[string]string `yaml:"labels"`
	Titles map[string]string            `yaml:"titles"`
}

// LoadFiles builds a registry from YAML dictionary files. A registry built
// from zero paths is valid and renders everything as identity.
func LoadFiles(paths ...string) (*Registry, error) {
	r := NewRegistry()
	for _, path := range paths {
		d, err := readDictionary(path)
		if err != nil {
			return nil, err
		}
		if err := r.Add(d); err != nil {
			return nil, fmt.Errorf("dictionary %s: %w", path, err)
		}
	}
	return r, nil
}

func readDictionary(path string) (Dictionary, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Dictionary{}, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	var file dictionaryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Dictionary{}, fmt.Errorf("failed to parse dictionary %s: %w", path, err)
	}
	if file.Locale == "" {
		return Dictionary{}, fmt.Errorf("dictionary %s: locale is required", path)
	}

	d := Dictionary{
		Locale: locale.Locale(file.Locale),
		Titles: file.Titles,
	}
	if len(file.Labels) > 0 {
		d.Labels = make(map[facet.Category]map[string]string, len(file.Labels))
		for cat, m := range file.Labels {
			d.Labels[facet.Category(cat)] = m
		}
	}
	return d, nil
}
