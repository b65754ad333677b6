package format

type (
	Arity      uint8
	DigestKind uint8
)

const (
	// ArityLiteral marks a passthrough header: the seed carries no value and
	// raw, externally length-specified data follows the tag bits.
	ArityLiteral Arity = 0

	ArityOne   Arity = 1 // ArityOne represents a single-block seed header.
	ArityTwo   Arity = 2 // ArityTwo represents a two-block seed header.
	ArityThree Arity = 3 // ArityThree represents a three-block seed header.
	ArityFour  Arity = 4 // ArityFour represents a four-block seed header.
	ArityFive  Arity = 5 // ArityFive represents a five-block seed header.

	DigestSHA256 DigestKind = 0x1 // DigestSHA256 selects the SHA-256 digest chain.
	DigestXXHash DigestKind = 0x2 // DigestXXHash selects the fast xxHash64-based digest chain.
)

// Valid reports whether a is one of the six defined arities.
func (a Arity) Valid() bool {
	return a <= ArityFive
}

// IsLiteral reports whether a marks a literal passthrough header.
func (a Arity) IsLiteral() bool {
	return a == ArityLiteral
}

func (a Arity) String() string {
	switch a {
	case ArityLiteral:
		return "Literal"
	case ArityOne:
		return "One"
	case ArityTwo:
		return "Two"
	case ArityThree:
		return "Three"
	case ArityFour:
		return "Four"
	case ArityFive:
		return "Five"
	default:
		return "Unknown"
	}
}

func (d DigestKind) String() string {
	switch d {
	case DigestSHA256:
		return "SHA256"
	case DigestXXHash:
		return "XXHash"
	default:
		return "Unknown"
	}
}
