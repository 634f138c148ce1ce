package handler

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/philipp01105/safelog/core"
	"github.com/philipp01105/safelog/formatter"
)

// fileBufPool holds scratch buffers for the BufferFormatter path.
var fileBufPool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getFileBuf() *bytes.Buffer {
	buf := fileBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putFileBuf(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 {
		return
	}
	fileBufPool.Put(buf)
}

// FileConfig configures a File handler.
type FileConfig struct {
	// Filename is the log file path (required)
	Filename string
	// Formatter serializes entries; defaults to a plain text formatter
	Formatter formatter.Formatter
	// MaxSize triggers rotation when the file reaches this many bytes (0 disables)
	MaxSize int64
	// MaxBackups limits how many rotated files are kept (0 keeps all)
	MaxBackups int
	// FlushInterval controls periodic buffer flushing; defaults to 1s
	FlushInterval time.Duration
	// BufferSize is the write buffer size; defaults to 32KiB
	BufferSize int
}

// File is a synchronous file handler with buffered writes and
// size-based rotation. Rotated files carry a timestamp suffix.
type File struct {
	mu              sync.Mutex
	filename        string
	file            *os.File
	bufWriter       *bufio.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	maxSize         int64
	maxBackups      int
	currentSize     int64
	stats           *Stats
	flushDone       chan struct{}
	closeOnce       sync.Once
}

// NewFile creates a file handler, opening (or creating) the file in
// append mode.
func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("file handler: filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 32 * 1024
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("file handler: open %s: %w", cfg.Filename, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("file handler: stat %s: %w", cfg.Filename, err)
	}

	h := &File{
		filename:    cfg.Filename,
		file:        file,
		bufWriter:   bufio.NewWriterSize(file, cfg.BufferSize),
		formatter:   cfg.Formatter,
		maxSize:     cfg.MaxSize,
		maxBackups:  cfg.MaxBackups,
		currentSize: info.Size(),
		stats:       NewStats(),
		flushDone:   make(chan struct{}),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	go h.flushLoop(cfg.FlushInterval)
	return h, nil
}

// Handle formats the entry and writes it to the file.
func (h *File) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.rotateIfNeeded(); err != nil {
		return err
	}

	var n int
	var err error
	if h.bufferFormatter != nil {
		buf := getFileBuf()
		h.bufferFormatter.FormatEntry(entry, buf)
		n, err = h.bufWriter.Write(buf.Bytes())
		putFileBuf(buf)
	} else {
		var data []byte
		data, err = h.formatter.Format(entry)
		if err != nil {
			return err
		}
		n, err = h.bufWriter.Write(data)
	}
	if err == nil {
		h.currentSize += int64(n)
		h.stats.IncrementProcessed()
	}
	return err
}

// rotateIfNeeded performs size-based rotation. Callers hold mu.
func (h *File) rotateIfNeeded() error {
	if h.maxSize <= 0 || h.currentSize < h.maxSize {
		return nil
	}
	return h.rotate()
}

// rotate renames the current file with a timestamp suffix and reopens a
// fresh one. Callers hold mu.
func (h *File) rotate() error {
	if err := h.bufWriter.Flush(); err != nil {
		return err
	}
	if err := h.file.Sync(); err != nil {
		return err
	}
	if err := h.file.Close(); err != nil {
		return err
	}

	timestamp := time.Now().Format("2006-01-02T15-04-05.000")
	rotatedName := fmt.Sprintf("%s.%s", h.filename, timestamp)

	if err := os.Rename(h.filename, rotatedName); err != nil {
		// If rename fails, try to reopen the original file
		file, openErr := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		h.file = file
		h.bufWriter.Reset(file)
		return err
	}

	if h.maxBackups > 0 {
		h.cleanupOldBackups()
	}

	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	h.file = file
	h.bufWriter.Reset(file)
	h.currentSize = 0
	return nil
}

// cleanupOldBackups removes rotated files beyond MaxBackups, oldest first.
func (h *File) cleanupOldBackups() {
	matches, err := filepath.Glob(h.filename + ".*")
	if err != nil {
		return
	}
	sort.Strings(matches) // timestamp suffixes sort chronologically
	if len(matches) > h.maxBackups {
		for _, old := range matches[:len(matches)-h.maxBackups] {
			os.Remove(old)
		}
	}
}

// flushLoop periodically flushes the write buffer so lines are not held
// indefinitely during quiet periods.
func (h *File) flushLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			h.mu.Lock()
			h.bufWriter.Flush()
			h.mu.Unlock()
		case <-h.flushDone:
			return
		}
	}
}

// CanRecycleEntry returns true because entries are consumed before Handle returns.
func (h *File) CanRecycleEntry() bool {
	return true
}

// Stats returns the handler's counters.
func (h *File) Stats() *Stats {
	return h.stats
}

// Close flushes remaining output and closes the file.
func (h *File) Close() error {
	var err error
	h.closeOnce.Do(func() {
		close(h.flushDone)
		h.mu.Lock()
		defer h.mu.Unlock()
		if ferr := h.bufWriter.Flush(); ferr != nil {
			err = ferr
		}
		if serr := h.file.Sync(); serr != nil && err == nil {
			err = serr
		}
		if cerr := h.file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	})
	return err
}
