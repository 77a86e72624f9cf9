package keycache

import "github.com/fxamacker/cbor/v2"

// Record is the persisted outcome of one solved instance. Key holds
// the big-endian bytes of the recovered log, Seed the seed that found
// it.
type Record struct {
	Key   []byte
	Seed  []byte
	Found bool
}

// record shadows Record without its method set so cbor encodes the
// struct fields instead of calling back into MarshalBinary.
type record Record

func (r *Record) MarshalBinary() ([]byte, error) {
	return cbor.Marshal((*record)(r))
}

func (r *Record) UnmarshalBinary(buf []byte) error {
	return cbor.Unmarshal(buf, (*record)(r))
}
