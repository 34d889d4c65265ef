// Package tensor provides the core flat tensor storage for the TensorGrid library.
package tensor

// Element is a constraint for supported flat tensor element types.
// The grid layer stores tile data as int8 and transition data as int16;
// uint8 is available for raw byte payloads.
type Element interface {
	~int8 | ~uint8 | ~int16
}

// ElementType represents runtime type information for flat tensors.
type ElementType int

// Supported element types.
const (
	Int8 ElementType = iota
	Uint8
	Int16
)

// Size returns the byte size of the element type.
func (et ElementType) Size() int {
	switch et {
	case Int8, Uint8:
		return 1
	case Int16:
		return 2
	default:
		panic("unknown element type")
	}
}

// String returns a human-readable name for the element type.
func (et ElementType) String() string {
	switch et {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	default:
		return "unknown"
	}
}

// ElementTypeOf infers the ElementType for a generic element type T.
func ElementTypeOf[T Element]() ElementType {
	var dummy T
	switch any(dummy).(type) {
	case int8:
		return Int8
	case uint8:
		return Uint8
	case int16:
		return Int16
	default:
		panic("unsupported element type")
	}
}
