package prism

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// PresetFormat is the encoding of a preset file.
type PresetFormat string

const (
	PresetYAML PresetFormat = "yaml"
	PresetTOML PresetFormat = "toml"
)

// Preset describes one Material: its name, its type name (i.e. "MeshPhongMaterial"), and the values patch applied to it.
type Preset struct {
	Name   string         `yaml:"name" toml:"name"`
	Type   string         `yaml:"type" toml:"type"`
	Values map[string]any `yaml:"values" toml:"values"`
}

type presetFile struct {
	Materials []Preset `yaml:"materials" toml:"materials"`
}

// PresetFormatOf returns the PresetFormat matching the file's extension (.yaml, .yml or .toml).
func PresetFormatOf(path string) (PresetFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return PresetYAML, nil
	case ".toml":
		return PresetTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPresetFormat, filepath.Ext(path))
}

// LoadPresetFile loads the Material presets in the file at path into a new Library, picking the format from the extension.
func LoadPresetFile(path string) (*Library, error) {

	format, err := PresetFormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return LoadPresets(data, format)

}

// LoadPresets decodes Material presets and creates a Material for each, returning them in a new Library.
// A preset file holds a "materials" list, each entry with a name, a type and a values table:
//
//	materials:
//	  - name: brick
//	    type: MeshPhongMaterial
//	    values:
//	      color: 0xaa4422
//	      shininess: 12
//	      normalScale: [0.5, 0.5]
//
// Lists of numbers are turned into Vectors, Vector2s or colors to match the field they're assigned to.
// Unnamed presets are named by their position ("material2"); two presets with the same name are an error.
func LoadPresets(data []byte, format PresetFormat) (*Library, error) {

	file := presetFile{}

	switch format {
	case PresetYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("error decoding YAML presets: %w", err)
		}
	case PresetTOML:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&file); err != nil {
			return nil, fmt.Errorf("error decoding TOML presets: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPresetFormat, format)
	}

	library := NewLibrary()

	for i, preset := range file.Materials {

		material, err := preset.Material()
		if err != nil {
			return nil, fmt.Errorf("preset %d (%q): %w", i, preset.Name, err)
		}

		base := material.Base()
		if base.Name == "" {
			base.Name = fmt.Sprintf("material%d", i)
		}

		if library.FindMaterial(base.Name) != nil {
			return nil, fmt.Errorf("preset %d: %w: %q", i, ErrDuplicatePreset, base.Name)
		}

		library.AddMaterial(material)

	}

	return library, nil

}

// Material creates the Material the Preset describes.
func (preset Preset) Material() (IMaterial, error) {

	kind, ok := ParseMaterialKind(preset.Type)
	if !ok {
		return nil, unknownTypeError(preset.Type)
	}

	material := NewMaterialOfKind(kind, nil)
	material.SetValues(presetValues(material, preset.Values))

	if preset.Name != "" {
		material.Base().Name = preset.Name
	}

	return material, nil

}

// presetValues converts the generic values a decoder produces into the types the Material's fields hold.
func presetValues(material IMaterial, raw map[string]any) Values {

	values := Values{}
	schema := schemaOf(reflect.TypeOf(material).Elem())

	for key, value := range raw {

		field, exists := schema[key]
		list, isList := numberList(value)

		if !exists || !isList {
			values[key] = value
			continue
		}

		switch {
		case field.typ == vectorType && len(list) == 3:
			values[key] = NewVector(list[0], list[1], list[2])
		case field.typ == vector2Type && len(list) == 2:
			values[key] = NewVector2(list[0], list[1])
		case field.typ == colorPtrType && (len(list) == 3 || len(list) == 4):
			values[key] = list
		default:
			values[key] = value
		}

	}

	return values

}
