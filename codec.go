package restcore

import (
	"encoding/json"

	"github.com/bytedance/sonic"
)

// EncoderFunc encodes a Go value to its wire representation. Handler
// success values go through the router's Codec; Error records are
// always encoded with SonicCodec (see errorResponse).
type EncoderFunc func(v any) ([]byte, error)

// DecoderFunc decodes a wire representation into a Go value, used to
// deserialize request bodies.
type DecoderFunc func(data []byte, v any) error

// Codec bundles the two JSON capabilities spec.md §1 treats as
// pluggable rather than hard-wired: deserialize(bytes) -> T | Error and
// serialize(T) -> bytes | Error.
type Codec struct {
	Encode EncoderFunc
	Decode DecoderFunc
}

// SonicCodec is the default Codec, backed by bytedance/sonic, grounded
// on Abhishek2010dev/zeno's codec wiring (sonic.Marshal/Unmarshal
// behind the same function-type signatures as encoding/json).
var SonicCodec = Codec{
	Encode: sonic.Marshal,
	Decode: sonic.Unmarshal,
}

// StdCodec is the encoding/json-backed alternative, offered so a user
// can opt out of sonic without touching any other component.
var StdCodec = Codec{
	Encode: json.Marshal,
	Decode: json.Unmarshal,
}
