package ngdpbuf

import "testing"

func TestStringBuilderAppendOperations(t *testing.T) {
	buf := NewBuffer(nil)
	sb := NewStringBuilder(buf)

	sb.AppendString("http://")
	sb.AppendString("h1.example")
	sb.AppendChar('/')
	sb.AppendHexByte(0xAB)
	sb.AppendChar('/')
	sb.AppendInt(-42)

	want := "http://h1.example/ab/-42"
	if got := sb.View().String(); got != want {
		t.Errorf("builder produced %q, want %q", got, want)
	}
}

func TestStringBuilderCStringDoesNotGrowLen(t *testing.T) {
	buf := NewBuffer(nil)
	sb := NewStringBuilder(buf)
	sb.AppendString("abc")

	cstr := sb.CString()
	if buf.Len() != 3 {
		t.Errorf("Len() after CString() = %d, want 3", buf.Len())
	}
	if len(cstr) != 3 {
		t.Errorf("CString() view len = %d, want 3", len(cstr))
	}
	if buf.storage[3] != 0 {
		t.Errorf("byte at Len() = %d, want 0", buf.storage[3])
	}
}
