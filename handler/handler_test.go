package handler

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/safelog/core"
	"github.com/philipp01105/safelog/formatter"
)

func newEntry(level core.Level, msg string) *core.Entry {
	e := core.GetEntry()
	e.Site = core.Site{Level: level}
	e.Message = msg
	return e
}

func TestConsole_Write(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsole(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defer h.Close()

	e := newEntry(core.InfoLevel, "hello console")
	if err := h.Handle(e); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	core.PutEntry(e)

	if !strings.Contains(buf.String(), "hello console") {
		t.Errorf("Expected message in output, got: %s", buf.String())
	}
	if h.Stats().Processed() != 1 {
		t.Errorf("Processed = %d, want 1", h.Stats().Processed())
	}
	if !h.CanRecycleEntry() {
		t.Error("console handler must allow recycling")
	}
}

func TestConsole_DefaultFormatter(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsole(ConsoleConfig{Writer: &buf})
	defer h.Close()

	e := newEntry(core.WarnLevel, "default format")
	if err := h.Handle(e); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	core.PutEntry(e)

	if !strings.Contains(buf.String(), "[WARN]") {
		t.Errorf("Expected level bracket in output, got: %s", buf.String())
	}
}

func TestAsync_DeliversAndDrainsOnClose(t *testing.T) {
	var buf bytes.Buffer
	inner := NewConsole(ConsoleConfig{Writer: &buf})
	h := NewAsync(inner, AsyncConfig{BufferSize: 16})

	for i := 0; i < 10; i++ {
		h.Handle(newEntry(core.InfoLevel, "msg "+strconv.Itoa(i)))
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	out := buf.String()
	for i := 0; i < 10; i++ {
		if !strings.Contains(out, "msg "+strconv.Itoa(i)) {
			t.Errorf("missing 'msg %d' in output", i)
		}
	}
	if h.CanRecycleEntry() {
		t.Error("async handler must not allow caller-side recycling")
	}
}

func TestAsync_HandleAfterClose(t *testing.T) {
	inner := NewConsole(ConsoleConfig{Writer: &bytes.Buffer{}})
	h := NewAsync(inner, AsyncConfig{})
	h.Close()

	if err := h.Handle(newEntry(core.InfoLevel, "late")); err != nil {
		t.Errorf("Handle after Close should be a silent drop, got %v", err)
	}
	if h.Stats().Dropped() == 0 {
		t.Error("late entry should count as dropped")
	}
}

// blockingHandler holds Handle until released, to fill the async queue.
type blockingHandler struct {
	release chan struct{}
}

func (b *blockingHandler) Handle(*core.Entry) error {
	<-b.release
	return nil
}

func (b *blockingHandler) CanRecycleEntry() bool { return true }
func (b *blockingHandler) Close() error          { return nil }

func TestAsync_DropNewestOnOverflow(t *testing.T) {
	inner := &blockingHandler{release: make(chan struct{})}
	h := NewAsync(inner, AsyncConfig{
		BufferSize:     2,
		OverflowPolicy: map[core.Level]OverflowPolicy{core.InfoLevel: DropNewest},
	})

	// One entry occupies the worker, two fill the queue; the rest must
	// be dropped without blocking.
	for i := 0; i < 10; i++ {
		h.Handle(newEntry(core.InfoLevel, "overflow"))
	}

	deadline := time.Now().Add(time.Second)
	for h.Stats().Dropped() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if h.Stats().Dropped() == 0 {
		t.Error("expected dropped entries under DropNewest")
	}

	close(inner.release)
	h.Close()
}

func TestAsync_BlockTimesOut(t *testing.T) {
	inner := &blockingHandler{release: make(chan struct{})}
	h := NewAsync(inner, AsyncConfig{
		BufferSize:     1,
		BlockTimeout:   10 * time.Millisecond,
		OverflowPolicy: map[core.Level]OverflowPolicy{core.ErrorLevel: Block},
	})

	start := time.Now()
	for i := 0; i < 4; i++ {
		h.Handle(newEntry(core.ErrorLevel, "blocked"))
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Block policy took %v, timeout not honored", elapsed)
	}
	if h.Stats().Blocked() == 0 {
		t.Error("expected blocked count under Block policy")
	}

	close(inner.release)
	h.Close()
}

func TestFile_WriteAndFlushOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	h, err := NewFile(FileConfig{Filename: path})
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}

	e := newEntry(core.InfoLevel, "to file")
	if err := h.Handle(e); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	core.PutEntry(e)

	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("Expected message in file, got: %s", data)
	}
}

func TestFile_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rotate.log")
	h, err := NewFile(FileConfig{
		Filename:   path,
		MaxSize:    128,
		MaxBackups: 2,
	})
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}

	long := strings.Repeat("x", 64)
	for i := 0; i < 20; i++ {
		e := newEntry(core.InfoLevel, long)
		if err := h.Handle(e); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		core.PutEntry(e)
	}
	h.Close()

	matches, err := filepath.Glob(path + ".*")
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	if len(matches) == 0 {
		t.Error("expected rotated backup files")
	}
	if len(matches) > 2 {
		t.Errorf("MaxBackups not honored: %d backups", len(matches))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("current log file missing after rotation: %v", err)
	}
}

func TestFile_RequiresFilename(t *testing.T) {
	if _, err := NewFile(FileConfig{}); err == nil {
		t.Error("expected error for missing filename")
	}
}

func TestMultiHandler_FanOut(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h1 := NewConsole(ConsoleConfig{Writer: &buf1})
	h2 := NewConsole(ConsoleConfig{Writer: &buf2})
	m := NewMultiHandler(h1, h2)
	defer m.Close()

	e := newEntry(core.InfoLevel, "fan out")
	if err := m.Handle(e); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	core.PutEntry(e)

	if !strings.Contains(buf1.String(), "fan out") {
		t.Error("first handler did not receive the entry")
	}
	if !strings.Contains(buf2.String(), "fan out") {
		t.Error("second handler did not receive the entry")
	}
	if !m.CanRecycleEntry() {
		t.Error("all-sync multi handler must allow recycling")
	}
}

func TestMultiHandler_RecyclingGated(t *testing.T) {
	sync := NewConsole(ConsoleConfig{Writer: &bytes.Buffer{}})
	async := NewAsync(NewConsole(ConsoleConfig{Writer: &bytes.Buffer{}}), AsyncConfig{})
	defer async.Close()

	m := NewMultiHandler(sync, async)
	if m.CanRecycleEntry() {
		t.Error("multi handler with an async child must not allow recycling")
	}
}
