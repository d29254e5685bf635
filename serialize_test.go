package w65c816

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	c, bus := newNativeCPU(false, true)
	setRegs(c, func(r *Registers) {
		r.A = 0x1234
		r.X = 0x56
		r.Y = 0x78
		r.S = 0x01F0
		r.D = 0xABCD
		r.PC = 0x9000
		r.PB = 0x01
		r.DB = 0x02
		r.FlagC = true
		r.FlagV = true
		r.FlagD = true
	})
	c.Cycles = 123456
	c.NextEvent = 999
	c.RaiseIRQ()

	buf := make([]byte, c.SerializeSize())
	require.NoError(t, c.Serialize(buf))

	restored := New(bus, Options{})
	require.NoError(t, restored.Deserialize(buf))

	require.Equal(t, c.Registers(), restored.Registers(), "registers mismatch after round trip")
	require.Equal(t, c.Cycles, restored.Cycles, "Cycles mismatch")
	require.Equal(t, c.NextEvent, restored.NextEvent, "NextEvent mismatch")
	require.Equal(t, c.flags, restored.flags, "pending-interrupt flags mismatch")
}

func TestDeserializeRejectsShortBuffer(t *testing.T) {
	c, _ := newNativeCPU(true, true)
	buf := make([]byte, 4)
	if err := c.Deserialize(buf); err == nil {
		t.Fatalf("expected error on short buffer")
	}
}

func TestDeserializeRejectsWrongVersion(t *testing.T) {
	c, _ := newNativeCPU(true, true)
	buf := make([]byte, c.SerializeSize())
	if err := c.Serialize(buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	buf[0] = 0xFF
	if err := c.Deserialize(buf); err == nil {
		t.Fatalf("expected error on version mismatch")
	}
}
