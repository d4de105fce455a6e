package store

import "testing"

func TestMemoryStore_BasicOperations(t *testing.T) {
	st := NewMemoryStore()

	if st.Exists("가") {
		t.Error("Exists reported true on empty store")
	}

	if err := st.Write("가", []byte("audio")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !st.Exists("가") {
		t.Error("Exists reported false after write")
	}

	data, ok := st.Get("가")
	if !ok {
		t.Fatal("Get failed: key not found")
	}
	if string(data) != "audio" {
		t.Errorf("Get = %q, want %q", data, "audio")
	}

	count, err := st.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d, want 1", count)
	}
}

func TestMemoryStore_WriteCopiesData(t *testing.T) {
	st := NewMemoryStore()

	buf := []byte("original")
	if err := st.Write("나", buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	buf[0] = 'X'

	data, _ := st.Get("나")
	if string(data) != "original" {
		t.Errorf("stored data aliases caller buffer: got %q", data)
	}
}
