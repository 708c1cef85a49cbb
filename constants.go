package prism

import (
	"reflect"
	"strconv"
	"strings"
)

// Side indicates which faces of a mesh a Material renders.
type Side int

const (
	FrontSide  Side = iota // FrontSide renders faces facing the camera. This is the default.
	BackSide               // BackSide renders faces turned away from the camera.
	DoubleSide             // DoubleSide renders both.
)

// ShadingMode indicates how normals are interpolated across a face.
type ShadingMode int

const (
	NoShading     ShadingMode = iota
	FlatShading               // FlatShading uses the face normal for the whole face.
	SmoothShading             // SmoothShading interpolates vertex normals. This is the default for most Materials.
)

// VertexColorMode indicates where vertex colors come from, if anywhere.
type VertexColorMode int

const (
	NoColors     VertexColorMode = iota // NoColors ignores vertex colors entirely.
	FaceColors                          // FaceColors uses each Face's aggregate Color.
	VertexColors                        // VertexColors uses each Face's per-vertex colors.
)

// BlendMode is the blending preset used when drawing a Material.
type BlendMode int

const (
	NoBlending BlendMode = iota
	NormalBlending
	AdditiveBlending
	SubtractiveBlending
	MultiplyBlending
	CustomBlending // CustomBlending uses the Material's BlendSrc, BlendDst and BlendEquation fields.
)

// BlendEquation is the equation combining source and destination when blending is custom.
type BlendEquation int

const (
	AddEquation BlendEquation = iota + 100
	SubtractEquation
	ReverseSubtractEquation
	MinEquation
	MaxEquation
)

// BlendFactor is a source or destination factor used when blending is custom.
type BlendFactor int

const (
	ZeroFactor BlendFactor = iota + 200
	OneFactor
	SrcColorFactor
	OneMinusSrcColorFactor
	SrcAlphaFactor
	OneMinusSrcAlphaFactor
	DstAlphaFactor
	OneMinusDstAlphaFactor
	DstColorFactor
	OneMinusDstColorFactor
	SrcAlphaSaturateFactor
)

// CombineOperation is how an environment map is combined with the surface color.
type CombineOperation int

const (
	MultiplyOperation CombineOperation = iota
	MixOperation
	AddOperation
)

var sideNames = enumNames[Side]{
	FrontSide:  "FrontSide",
	BackSide:   "BackSide",
	DoubleSide: "DoubleSide",
}

var shadingNames = enumNames[ShadingMode]{
	NoShading:     "NoShading",
	FlatShading:   "FlatShading",
	SmoothShading: "SmoothShading",
}

var vertexColorNames = enumNames[VertexColorMode]{
	NoColors:     "NoColors",
	FaceColors:   "FaceColors",
	VertexColors: "VertexColors",
}

var blendModeNames = enumNames[BlendMode]{
	NoBlending:          "NoBlending",
	NormalBlending:      "NormalBlending",
	AdditiveBlending:    "AdditiveBlending",
	SubtractiveBlending: "SubtractiveBlending",
	MultiplyBlending:    "MultiplyBlending",
	CustomBlending:      "CustomBlending",
}

var blendEquationNames = enumNames[BlendEquation]{
	AddEquation:             "AddEquation",
	SubtractEquation:        "SubtractEquation",
	ReverseSubtractEquation: "ReverseSubtractEquation",
	MinEquation:             "MinEquation",
	MaxEquation:             "MaxEquation",
}

var blendFactorNames = enumNames[BlendFactor]{
	ZeroFactor:             "ZeroFactor",
	OneFactor:              "OneFactor",
	SrcColorFactor:         "SrcColorFactor",
	OneMinusSrcColorFactor: "OneMinusSrcColorFactor",
	SrcAlphaFactor:         "SrcAlphaFactor",
	OneMinusSrcAlphaFactor: "OneMinusSrcAlphaFactor",
	DstAlphaFactor:         "DstAlphaFactor",
	OneMinusDstAlphaFactor: "OneMinusDstAlphaFactor",
	DstColorFactor:         "DstColorFactor",
	OneMinusDstColorFactor: "OneMinusDstColorFactor",
	SrcAlphaSaturateFactor: "SrcAlphaSaturateFactor",
}

var combineNames = enumNames[CombineOperation]{
	MultiplyOperation: "MultiplyOperation",
	MixOperation:      "MixOperation",
	AddOperation:      "AddOperation",
}

func (s Side) String() string             { return sideNames.name(s) }
func (s ShadingMode) String() string      { return shadingNames.name(s) }
func (v VertexColorMode) String() string  { return vertexColorNames.name(v) }
func (b BlendMode) String() string        { return blendModeNames.name(b) }
func (b BlendEquation) String() string    { return blendEquationNames.name(b) }
func (b BlendFactor) String() string      { return blendFactorNames.name(b) }
func (c CombineOperation) String() string { return combineNames.name(c) }

type enumNames[E ~int] map[E]string

func (names enumNames[E]) name(value E) string {
	if n, ok := names[value]; ok {
		return n
	}
	return strconv.Itoa(int(value))
}

// parse matches a name case-insensitively; "double", "DoubleSide" and "doubleside" all work for DoubleSide.
func (names enumNames[E]) parse(text string) (E, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	for value, n := range names {
		lower := strings.ToLower(n)
		if lower == text || strings.HasPrefix(lower, text) && len(text) >= 3 && names.uniquePrefix(text) {
			return value, true
		}
	}
	return 0, false
}

func (names enumNames[E]) uniquePrefix(prefix string) bool {
	count := 0
	for _, n := range names {
		if strings.HasPrefix(strings.ToLower(n), prefix) {
			count++
		}
	}
	return count == 1
}

func (names enumNames[E]) parser() func(string) (int64, bool) {
	return func(text string) (int64, bool) {
		v, ok := names.parse(text)
		return int64(v), ok
	}
}

// enumParsers maps each enum type to a function parsing its names, so configuration patches can use names
// instead of raw numbers.
var enumParsers = map[reflect.Type]func(string) (int64, bool){
	reflect.TypeOf(FrontSide):         sideNames.parser(),
	reflect.TypeOf(SmoothShading):     shadingNames.parser(),
	reflect.TypeOf(NoColors):          vertexColorNames.parser(),
	reflect.TypeOf(NormalBlending):    blendModeNames.parser(),
	reflect.TypeOf(AddEquation):       blendEquationNames.parser(),
	reflect.TypeOf(SrcAlphaFactor):    blendFactorNames.parser(),
	reflect.TypeOf(MultiplyOperation): combineNames.parser(),
}
