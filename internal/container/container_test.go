package container

import (
	"errors"
	"testing"
)

func TestRoundTripPrimitives(t *testing.T) {
	w := NewWriter()
	w.WriteUint32(42)
	w.WriteUint64(1 << 40)
	w.WriteInt32(-7)
	w.WriteFloat64(3.5)
	w.WriteComplex128(complex(1.5, -2.5))
	w.WriteString("hello")
	w.WriteBytes([]byte{1, 2, 3})

	r := NewReader(w.Bytes())

	if v, err := r.ReadUint32(); err != nil || v != 42 {
		t.Fatalf("ReadUint32 = %v, %v; want 42, nil", v, err)
	}
	if v, err := r.ReadUint64(); err != nil || v != 1<<40 {
		t.Fatalf("ReadUint64 = %v, %v", v, err)
	}
	if v, err := r.ReadInt32(); err != nil || v != -7 {
		t.Fatalf("ReadInt32 = %v, %v; want -7, nil", v, err)
	}
	if v, err := r.ReadFloat64(); err != nil || v != 3.5 {
		t.Fatalf("ReadFloat64 = %v, %v; want 3.5, nil", v, err)
	}
	if v, err := r.ReadComplex128(); err != nil || v != complex(1.5, -2.5) {
		t.Fatalf("ReadComplex128 = %v, %v", v, err)
	}
	if v, err := r.ReadString(); err != nil || v != "hello" {
		t.Fatalf("ReadString = %q, %v; want hello, nil", v, err)
	}
	if v, err := r.ReadBytes(3); err != nil || v[0] != 1 || v[1] != 2 || v[2] != 3 {
		t.Fatalf("ReadBytes = %v, %v", v, err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after consuming everything, want 0", r.Len())
	}
}

func TestReadPastEndReturnsErrShortBuffer(t *testing.T) {
	r := NewReader([]byte{1, 2})
	if _, err := r.ReadUint32(); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("ReadUint32 on short buffer error = %v, want ErrShortBuffer", err)
	}
}
