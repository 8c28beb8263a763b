package epaper

import (
	"errors"
	"testing"
)

func TestFromByte(t *testing.T) {
	tests := []struct {
		in   byte
		want Color
	}{
		{0, Black},
		{1, White},
		{2, Red},
	}
	for _, test := range tests {
		if v := FromByte(test.in); v != test.want {
			t.Errorf("expected byte %d to decode to %s, got %s", test.in, test.want, v)
		}
	}
}

func TestFromBytePanic(t *testing.T) {
	for v := 3; v <= 0xff; v++ {
		err := catchPanic(func() { FromByte(byte(v)) })
		if err == nil {
			t.Fatalf("expected byte %d to panic", v)
		}
		var invalid InvalidByteError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected byte %d to panic with %T, got %T", v, invalid, err)
		}
		if byte(invalid) != byte(v) {
			t.Errorf("expected panic value %d, got %d", v, byte(invalid))
		}
	}
}

func TestFromRawBit(t *testing.T) {
	if v := FromRawBit(0); v != Black {
		t.Errorf("expected raw bit 0 to decode to %s, got %s", Black, v)
	}
	for n := 1; n <= 0xff; n++ {
		if v := FromRawBit(uint8(n)); v != White {
			t.Errorf("expected raw bit %d to decode to %s, got %s", n, White, v)
		}
	}
}

func TestByte(t *testing.T) {
	for _, c := range []Color{Black, White, Red} {
		if v := FromByte(c.Byte()); v != c {
			t.Errorf("expected %s to round trip, got %s", c, v)
		}
	}
	if err := catchPanic(func() { Color(3).Byte() }); err == nil {
		t.Error("expected encoding an unknown color to panic")
	}
}

func TestDefault(t *testing.T) {
	var c Color
	if c != White {
		t.Errorf("expected zero value to be %s, got %s", White, c)
	}
}

func TestEquality(t *testing.T) {
	colors := []Color{Black, White, Red}
	for i, a := range colors {
		for j, b := range colors {
			if (a == b) != (i == j) {
				t.Errorf("expected %s == %s to be %t", a, b, i == j)
			}
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Black, "Black"},
		{White, "White"},
		{Red, "Red"},
		{Color(7), "Color(7)"},
	}
	for _, test := range tests {
		if v := test.c.String(); v != test.want {
			t.Errorf("expected %q, got %q", test.want, v)
		}
	}
}

func TestDecodeSequence(t *testing.T) {
	var (
		in   = []byte{0, 1, 2, 0, 1, 2}
		want = []Color{Black, White, Red, Black, White, Red}
	)
	for i, b := range in {
		if v := FromByte(b); v != want[i] {
			t.Errorf("expected pixel %d to be %s, got %s", i, want[i], v)
		}
	}
}

func catchPanic(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if err, _ = r.(error); err == nil {
				err = errors.New("panic")
			}
		}
	}()
	f()
	return nil
}
