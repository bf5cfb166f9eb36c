package token

// Primitive is a built-in scalar type named by a TYPE token.
type Primitive int

const (
	PrimF32 Primitive = iota
	PrimF64
	PrimI8
	PrimI16
	PrimI32
	PrimI64
	PrimI128
	PrimU8
	PrimU16
	PrimU32
	PrimU64
	PrimU128
	PrimBool
	PrimChar
)

var primitives = [...]struct {
	label    string
	spelling string
}{
	PrimF32:  {"F32", "f32"},
	PrimF64:  {"F64", "f64"},
	PrimI8:   {"I8", "i8"},
	PrimI16:  {"I16", "i16"},
	PrimI32:  {"I32", "i32"},
	PrimI64:  {"I64", "i64"},
	PrimI128: {"I128", "i128"},
	PrimU8:   {"U8", "u8"},
	PrimU16:  {"U16", "u16"},
	PrimU32:  {"U32", "u32"},
	PrimU64:  {"U64", "u64"},
	PrimU128: {"U128", "u128"},
	PrimBool: {"BOOL", "bool"},
	PrimChar: {"CHAR", "char"},
}

func (p Primitive) valid() bool { return p >= 0 && int(p) < len(primitives) }

// String returns the uppercase label, e.g. "U8".
func (p Primitive) String() string {
	if !p.valid() {
		return "UNKNOWN"
	}
	return primitives[p].label
}

// Spelling returns the canonical source keyword, e.g. "u8" for both u8 and
// its alias byte.
func (p Primitive) Spelling() string {
	if !p.valid() {
		return ""
	}
	return primitives[p].spelling
}
