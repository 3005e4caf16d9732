package pool

import (
	"bytes"
	"testing"

	"github.com/geohier/ghier/internal/constants"
)

func TestBytesBufferStartsEmpty(t *testing.T) {
	b := BytesBuffer.Get().(*bytes.Buffer)
	defer RecycleBytesBuffer(b)

	if b.Len() != 0 {
		t.Errorf("expected empty buffer but got length %d", b.Len())
	}
	if b.Cap() < constants.LineBufferInitialCapacity {
		t.Errorf("expected capacity of at least %d but got %d",
			constants.LineBufferInitialCapacity, b.Cap())
	}
}

func TestRecycleBytesBufferResets(t *testing.T) {
	b := BytesBuffer.Get().(*bytes.Buffer)
	b.WriteString("123 {\"kind\":\"locality\"}")
	RecycleBytesBuffer(b)

	recycled := BytesBuffer.Get().(*bytes.Buffer)
	defer RecycleBytesBuffer(recycled)
	if recycled.Len() != 0 {
		t.Errorf("expected recycled buffer to be empty but got length %d", recycled.Len())
	}
}
