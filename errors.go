package prism

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMaterialType = errors.New("unknown material type")
	ErrInvalidMetadata     = errors.New("invalid material metadata")
	ErrUnsupportedVersion  = errors.New("unsupported material format version")
	ErrInvalidFace         = errors.New("invalid face")
	ErrUnknownPresetFormat = errors.New("unknown preset format")
	ErrDuplicatePreset     = errors.New("duplicate preset name")
)

func unknownTypeError(typeName string) error {
	return fmt.Errorf("%w: %q", ErrUnknownMaterialType, typeName)
}
