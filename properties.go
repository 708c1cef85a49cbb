package prism

// Properties is an unordered set of property names to values, representing custom data carried on Nodes
// (for example, the "extras" of an imported glTF node).
type Properties struct {
	props map[string]*Property
}

// NewProperties returns a new Properties object.
func NewProperties() *Properties {
	return &Properties{map[string]*Property{}}
}

// Clone returns a copy of the Properties. Property values are copied the way uniform values are: colors, vectors and
// slices are duplicated, anything else is shared.
func (props *Properties) Clone() *Properties {
	newProps := NewProperties()
	for k, v := range props.props {
		newProps.Get(k).Set(cloneUniformValue(v.Value))
	}
	return newProps
}

// Clear clears the Properties object of all properties.
func (props *Properties) Clear() {
	props.props = map[string]*Property{}
}

// Remove removes the property specified from the Properties object.
func (props *Properties) Remove(propName string) {
	delete(props.props, propName)
}

// Has returns true if the Properties object has properties by all of the names specified, and false otherwise.
func (props *Properties) Has(propNames ...string) bool {
	for _, t := range propNames {
		if _, exists := props.props[t]; !exists {
			return false
		}
	}
	return true
}

// Get returns the Property associated with the specified property name, creating an empty one if it doesn't exist.
func (props *Properties) Get(propName string) *Property {
	if _, ok := props.props[propName]; !ok {
		props.props[propName] = &Property{}
	}
	return props.props[propName]
}

// Names returns the names of all properties, sorted.
func (props *Properties) Names() []string {
	return sortedKeys(props.props)
}

// Len returns how many properties there are.
func (props *Properties) Len() int {
	return len(props.props)
}

// Property represents a custom property on a Node.
type Property struct {
	Value any
}

// Set sets the property's value to the given value.
func (prop *Property) Set(value any) {
	prop.Value = value
}

// IsBool returns true if the Property is a boolean value.
func (prop *Property) IsBool() bool {
	_, ok := prop.Value.(bool)
	return ok
}

// AsBool returns the value associated with the Property as a bool.
// Note that this does not sanity check to ensure the Property is a bool first.
func (prop *Property) AsBool() bool {
	return prop.Value.(bool)
}

// IsString returns true if the Property is a string.
func (prop *Property) IsString() bool {
	_, ok := prop.Value.(string)
	return ok
}

// AsString returns the value associated with the Property as a string.
// Note that this does not sanity check to ensure the Property is a string first.
func (prop *Property) AsString() string {
	return prop.Value.(string)
}

// IsNumber returns true if the Property is any kind of number. Numbers decoded from JSON are float64s, so
// AsFloat64 and AsInt convert between them.
func (prop *Property) IsNumber() bool {
	switch prop.Value.(type) {
	case int, int32, int64, uint, uint32, uint64, float32, float64:
		return true
	}
	return false
}

// AsFloat64 returns the Property's numeric value as a float64, or 0 if it isn't a number.
func (prop *Property) AsFloat64() float64 {
	if !prop.IsNumber() {
		return 0
	}
	n, _ := toNumber(prop.Value)
	return n
}

// AsInt returns the Property's numeric value as an int, truncating any fraction, or 0 if it isn't a number.
func (prop *Property) AsInt() int {
	return int(prop.AsFloat64())
}

// IsColor returns true if the Property can be read as a color: a *Color, a Color, or a list of 3 or 4 numbers.
func (prop *Property) IsColor() bool {
	switch v := prop.Value.(type) {
	case *Color, Color:
		return true
	case []any:
		return (len(v) == 3 || len(v) == 4) && allNumbers(v)
	case []float64:
		return len(v) == 3 || len(v) == 4
	}
	return false
}

// AsColor returns the value associated with the Property as a new Color. Lists of numbers are read as R, G, B(, A).
// It returns nil if the Property isn't a color.
func (prop *Property) AsColor() *Color {
	switch v := prop.Value.(type) {
	case *Color:
		return v.Clone()
	case Color:
		return v.Clone()
	}
	nums, ok := numberList(prop.Value)
	if !ok || (len(nums) != 3 && len(nums) != 4) {
		return nil
	}
	c := NewColor(float32(nums[0]), float32(nums[1]), float32(nums[2]), 1)
	if len(nums) == 4 {
		c.A = float32(nums[3])
	}
	return c
}

// IsVector returns true if the Property can be read as a Vector: a Vector or a list of 3 numbers.
func (prop *Property) IsVector() bool {
	if _, ok := prop.Value.(Vector); ok {
		return true
	}
	nums, ok := numberList(prop.Value)
	return ok && len(nums) == 3
}

// AsVector returns the value associated with the Property as a Vector.
// Note that this does not sanity check to ensure the Property is a vector first.
func (prop *Property) AsVector() Vector {
	if v, ok := prop.Value.(Vector); ok {
		return v
	}
	nums, _ := numberList(prop.Value)
	v := Vector{}
	if len(nums) >= 3 {
		v = Vector{nums[0], nums[1], nums[2], 0}
	}
	return v
}

func allNumbers(values []any) bool {
	for _, v := range values {
		switch v.(type) {
		case float64, float32, int, int64, int32, uint64:
		default:
			return false
		}
	}
	return true
}

// numberList reads a list of numbers from a []float64 or a []any of numbers.
func numberList(value any) ([]float64, bool) {
	switch v := value.(type) {
	case []float64:
		return v, true
	case []any:
		if !allNumbers(v) {
			return nil, false
		}
		out := make([]float64, len(v))
		for i, e := range v {
			out[i], _ = toNumber(e)
		}
		return out, true
	}
	return nil, false
}
