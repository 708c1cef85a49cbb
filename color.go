package prism

import (
	"encoding/json"
	"fmt"
	imgcolor "image/color"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/colornames"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) *Color {
	return &Color{r, g, b, a}
}

// NewColorFromHex returns a new, opaque Color from a packed 24-bit RGB value (i.e. 0xff8800).
func NewColorFromHex(hex uint32) *Color {
	c := NewColor(0, 0, 0, 1)
	c.SetHex(hex)
	return c
}

// Clone returns a copy of the Color; cloning a nil Color returns nil.
func (color *Color) Clone() *Color {
	if color == nil {
		return nil
	}
	return NewColor(color.R, color.G, color.B, color.A)
}

// Copy sets the calling Color's components to the other Color's components.
func (color *Color) Copy(other *Color) *Color {
	color.R = other.R
	color.G = other.G
	color.B = other.B
	color.A = other.A
	return color
}

// Equals returns true if all four components of both Colors match.
func (color *Color) Equals(other *Color) bool {
	if color == nil || other == nil {
		return color == other
	}
	return color.R == other.R && color.G == other.G && color.B == other.B && color.A == other.A
}

// SetRGB sets the RGB components of the Color, leaving alpha alone, and returns the Color.
func (color *Color) SetRGB(r, g, b float32) *Color {
	color.R = r
	color.G = g
	color.B = b
	return color
}

// SetRGBA sets all four components of the Color.
func (color *Color) SetRGBA(r, g, b, a float32) {
	color.R = r
	color.G = g
	color.B = b
	color.A = a
}

// AddRGB adds value to each of the RGB components.
func (color *Color) AddRGB(value float32) {
	color.R += value
	color.G += value
	color.B += value
}

// SetHex sets the RGB components from a packed 24-bit value; alpha is left alone.
func (color *Color) SetHex(hex uint32) *Color {
	color.R = float32((hex>>16)&255) / 255
	color.G = float32((hex>>8)&255) / 255
	color.B = float32(hex&255) / 255
	return color
}

// Hex returns the RGB components packed into a 24-bit integer. Components are clamped and rounded to the
// nearest 8-bit step.
func (color *Color) Hex() uint32 {
	return uint32(channelByte(color.R))<<16 | uint32(channelByte(color.G))<<8 | uint32(channelByte(color.B))
}

// HexString returns the Color as a six-digit lowercase hex string, without a leading "#".
func (color *Color) HexString() string {
	return fmt.Sprintf("%06x", color.Hex())
}

func channelByte(v float32) uint8 {
	return uint8(math32.Round(clamp(v, 0, 1) * 255))
}

// SetHSL sets the RGB components from hue, saturation and lightness, each ranging from 0 to 1.
func (color *Color) SetHSL(h, s, l float32) *Color {
	h = h - math32.Floor(h)
	if s == 0 {
		color.R, color.G, color.B = l, l, l
		return color
	}
	var q float32
	if l <= 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - (l * s)
	}
	p := 2*l - q
	color.R = hueToRGB(p, q, h+1.0/3.0)
	color.G = hueToRGB(p, q, h)
	color.B = hueToRGB(p, q, h-1.0/3.0)
	return color
}

// HSL returns the hue, saturation and lightness of the Color, each ranging from 0 to 1.
func (color *Color) HSL() (h, s, l float32) {
	r, g, b := color.R, color.G, color.B
	max := math32.Max(math32.Max(r, g), b)
	min := math32.Min(math32.Min(r, g), b)

	l = (min + max) / 2

	if min == max {
		return 0, 0, l
	}

	delta := max - min
	if l <= 0.5 {
		s = delta / (max + min)
	} else {
		s = delta / (2 - max - min)
	}

	switch max {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h /= 6
	return h, s, l
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 0.5 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*6*(2.0/3.0-t)
	}
	return p
}

// SetStyle sets the Color from a CSS-like style string: "#rgb", "#rrggbb", "rgb(255, 0, 0)", "rgb(100%, 0%, 0%)",
// "hsl(120, 50%, 50%)", or a CSS color keyword like "skyblue". It returns false if the string couldn't be parsed,
// in which case the Color is left unchanged.
func (color *Color) SetStyle(style string) bool {

	style = strings.ToLower(strings.TrimSpace(style))

	if strings.HasPrefix(style, "#") {
		hex := style[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return false
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return false
		}
		color.SetHex(uint32(v))
		return true
	}

	if args, ok := styleArgs(style, "rgb"); ok && len(args) == 3 {
		var rgb [3]float32
		for i, a := range args {
			if strings.HasSuffix(a, "%") {
				v, err := strconv.ParseFloat(strings.TrimSuffix(a, "%"), 32)
				if err != nil {
					return false
				}
				rgb[i] = math32.Min(100, float32(v)) / 100
			} else {
				v, err := strconv.ParseFloat(a, 32)
				if err != nil {
					return false
				}
				rgb[i] = math32.Min(255, float32(v)) / 255
			}
		}
		color.SetRGB(rgb[0], rgb[1], rgb[2])
		return true
	}

	if args, ok := styleArgs(style, "hsl"); ok && len(args) == 3 {
		h, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			return false
		}
		s, err := strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 32)
		if err != nil {
			return false
		}
		l, err := strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 32)
		if err != nil {
			return false
		}
		color.SetHSL(float32(h)/360, float32(s)/100, float32(l)/100)
		return true
	}

	if named, exists := colornames.Map[style]; exists {
		color.SetRGB(float32(named.R)/255, float32(named.G)/255, float32(named.B)/255)
		return true
	}

	return false

}

func styleArgs(style, fn string) ([]string, bool) {
	if !strings.HasPrefix(style, fn+"(") || !strings.HasSuffix(style, ")") {
		return nil, false
	}
	inner := style[len(fn)+1 : len(style)-1]
	args := strings.Split(inner, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, true
}

// Set sets the Color's RGB components from a shorthand value. Accepted values are another *Color or Color
// (alpha is copied too), an integer or float holding a packed hex value, a style string (see SetStyle),
// a [3]float32, [3]float64, or []float64 of RGB components, a Vector (X, Y, Z as R, G, B), or an image/color.Color.
// Set returns false if the value's type isn't supported.
func (color *Color) Set(value any) bool {

	switch v := value.(type) {
	case *Color:
		if v == nil {
			return false
		}
		color.Copy(v)
	case Color:
		color.Copy(&v)
	case int:
		color.SetHex(uint32(v))
	case int32:
		color.SetHex(uint32(v))
	case int64:
		color.SetHex(uint32(v))
	case uint:
		color.SetHex(uint32(v))
	case uint32:
		color.SetHex(v)
	case uint64:
		color.SetHex(uint32(v))
	case float64:
		color.SetHex(uint32(v))
	case float32:
		color.SetHex(uint32(v))
	case string:
		return color.SetStyle(v)
	case [3]float32:
		color.SetRGB(v[0], v[1], v[2])
	case [3]float64:
		color.SetRGB(float32(v[0]), float32(v[1]), float32(v[2]))
	case []float64:
		if len(v) < 3 {
			return false
		}
		color.SetRGB(float32(v[0]), float32(v[1]), float32(v[2]))
	case Vector:
		color.SetRGB(float32(v.X), float32(v.Y), float32(v.Z))
	case imgcolor.Color:
		r, g, b, _ := v.RGBA()
		color.SetRGB(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff)
	default:
		return false
	}

	return true

}

// RGBA64 returns the components as float64s.
func (color Color) RGBA64() (float64, float64, float64, float64) {
	return float64(color.R), float64(color.G), float64(color.B), float64(color.A)
}

// ToNRGBA64 converts the Color to an image/color.NRGBA64.
func (color Color) ToNRGBA64() imgcolor.NRGBA64 {
	return imgcolor.NRGBA64{
		R: uint16(clamp(color.R, 0, 1) * 0xffff),
		G: uint16(clamp(color.G, 0, 1) * 0xffff),
		B: uint16(clamp(color.B, 0, 1) * 0xffff),
		A: uint16(clamp(color.A, 0, 1) * 0xffff),
	}
}

// ConvertTosRGB converts the Color from linear to sRGB in place.
func (color *Color) ConvertTosRGB() {

	if color.R <= 0.0031308 {
		color.R *= 12.92
	} else {
		color.R = 1.055*math32.Pow(color.R, 1/2.4) - 0.055
	}

	if color.G <= 0.0031308 {
		color.G *= 12.92
	} else {
		color.G = 1.055*math32.Pow(color.G, 1/2.4) - 0.055
	}

	if color.B <= 0.0031308 {
		color.B *= 12.92
	} else {
		color.B = 1.055*math32.Pow(color.B, 1/2.4) - 0.055
	}

}

// ConvertToLinear is the inverse of ConvertTosRGB.
func (color *Color) ConvertToLinear() {
	color.R = sRGBToLinear(color.R)
	color.G = sRGBToLinear(color.G)
	color.B = sRGBToLinear(color.B)
}

func sRGBToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}

// MarshalJSON writes the Color as its packed hex integer.
func (color *Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(color.Hex())
}

// String returns the Color's components in a readable form.
func (color *Color) String() string {
	return fmt.Sprintf("Color{%.3f, %.3f, %.3f, %.3f}", color.R, color.G, color.B, color.A)
}
