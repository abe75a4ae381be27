package integrity

import (
	"bytes"
	"testing"
)

func TestSumIsDeterministic(t *testing.T) {
	a := Sum([]byte("hello world"))
	b := Sum([]byte("hello world"))
	if a != b {
		t.Error("Sum is not deterministic")
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	data := []byte("the quick brown fox")
	want := Sum(data)

	if !Verify(data, want) {
		t.Error("Verify rejected matching data")
	}

	corrupted := append([]byte(nil), data...)
	corrupted[0] ^= 0xff
	if Verify(corrupted, want) {
		t.Error("Verify accepted corrupted data")
	}
}

func TestSumReaderMatchesSum(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 200*1024)
	want := Sum(data)

	got, err := SumReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("SumReader: %v", err)
	}
	if got != want {
		t.Error("SumReader digest does not match Sum digest over same data")
	}
}
