package recording

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"
)

// mockBackend records into an embedded Recorder and writes the command
// count as its output.
type mockBackend struct {
	*Recorder
	beginCalls int
	endCalls   int
}

func newMockBackend() *mockBackend {
	return &mockBackend{Recorder: NewRecorder(0, 0)}
}

func (b *mockBackend) Begin(width, height int) error {
	b.beginCalls++
	b.Recorder = NewRecorder(width, height)
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte{byte(b.Len())})
	return int64(n), err
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]BackendFactory)
	extensions = make(map[string]string)
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", func() Backend { return newMockBackend() }, "tst")

	b, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend() error = %v", err)
	}
	if _, ok := b.(*mockBackend); !ok {
		t.Errorf("NewBackend() = %T, want *mockBackend", b)
	}
	name, err := BackendFor("out/frame.TST")
	if err != nil || name != "test" {
		t.Errorf("BackendFor() = %q, %v, want test", name, err)
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	if _, err := NewBackend("nope"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("NewBackend(nope) error = %v, want ErrUnknownBackend", err)
	}
	if _, err := BackendFor("board.gif"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("BackendFor(gif) error = %v, want ErrUnknownBackend", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
	}{
		{"nil factory", func() { Register("nil", nil) }},
		{"duplicate name", func() {
			Register("dup", func() Backend { return newMockBackend() })
			Register("dup", func() Backend { return newMockBackend() })
		}},
		{"duplicate extension", func() {
			Register("a", func() Backend { return newMockBackend() }, "x")
			Register("b", func() Backend { return newMockBackend() }, "x")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetRegistry()
			defer resetRegistry()
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			tt.setup()
		})
	}
}

func TestUnregister(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("gone", func() Backend { return newMockBackend() }, "gn")
	Unregister("gone")
	Unregister("never")

	if IsRegistered("gone") {
		t.Error("IsRegistered(gone) = true after Unregister")
	}
	if _, err := BackendFor("a.gn"); err == nil {
		t.Error("extension survived Unregister")
	}
}

func TestBackendsSorted(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	for _, n := range []string{"svg", "raster", "pdf"} {
		Register(n, func() Backend { return newMockBackend() })
	}
	got := Backends()
	want := []string{"pdf", "raster", "svg"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Backends() = %v, want %v", got, want)
			break
		}
	}
}

func TestMustBackendPanic(t *testing.T) {
	resetRegistry()
	defer resetRegistry()
	defer func() {
		if recover() == nil {
			t.Error("MustBackend(unknown) did not panic")
		}
	}()
	MustBackend("unknown")
}

func TestRecordingExport(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	var made *mockBackend
	Register("mock", func() Backend {
		made = newMockBackend()
		return made
	})

	rec := NewRecorder(30, 20)
	rec.FillRect(0, 0, 10, 10)
	rec.StrokeRect(0, 0, 10, 10)

	var buf bytes.Buffer
	if err := rec.FinishRecording().Export("mock", &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if made.beginCalls != 1 || made.endCalls != 1 {
		t.Errorf("lifecycle = %d begins, %d ends, want 1 and 1", made.beginCalls, made.endCalls)
	}
	if made.Width() != 30 || made.Height() != 20 {
		t.Errorf("backend size = %dx%d, want 30x20", made.Width(), made.Height())
	}
	if got := buf.Bytes(); len(got) != 1 || got[0] != 2 {
		t.Errorf("output = %v, want [2]", got)
	}
}

func TestConcurrentRegistration(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	var wg sync.WaitGroup
	for _, n := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			Register(name, func() Backend { return newMockBackend() })
			_ = IsRegistered(name)
			_ = Backends()
		}(n)
	}
	wg.Wait()

	if got := len(Backends()); got != len(names) {
		t.Errorf("Backends() len = %d, want %d", got, len(names))
	}
}
