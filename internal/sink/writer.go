package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Abderrahmane-Najib/KG-project/internal/metrics"
)

// Writer appends rows to the declared tables. It is a single sequential
// writer: no locking, no rewriting, no deduplication.
type Writer struct {
	nodeDir string
	relDir  string
	tables  map[string]Table
	files   map[string]*os.File
	logger  *zap.Logger
}

// NewWriter creates both output directories, initializes every declared
// header, and returns a ready Writer. Header initialization is
// idempotent: a sink that already holds data is left untouched.
func NewWriter(nodeDir, relDir string, logger *zap.Logger) (*Writer, error) {
	w := &Writer{
		nodeDir: nodeDir,
		relDir:  relDir,
		tables:  make(map[string]Table, len(Tables)),
		files:   make(map[string]*os.File, len(Tables)),
		logger:  logger,
	}
	for _, dir := range []string{nodeDir, relDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create sink dir %s: %w", dir, err)
		}
	}
	for _, table := range Tables {
		w.tables[table.Name] = table
		if err := w.initHeader(table); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func (w *Writer) initHeader(table Table) error {
	path := w.path(table)
	info, err := os.Stat(path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("stat sink %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(table.Header+"\n"), 0o600); err != nil {
		return fmt.Errorf("write header for %s: %w", table.Name, err)
	}
	return nil
}

// Append writes exactly one row to the named sink. Fields are already
// normalized by the extractor; the row format is a byte-level contract,
// so fields are joined verbatim.
func (w *Writer) Append(sink string, fields ...string) error {
	table, ok := w.tables[sink]
	if !ok {
		return fmt.Errorf("unknown sink %q", sink)
	}
	f, err := w.open(table)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
		return fmt.Errorf("append to %s: %w", sink, err)
	}
	metrics.RowAppended(sink)
	return nil
}

func (w *Writer) open(table Table) (*os.File, error) {
	if f, ok := w.files[table.Name]; ok {
		return f, nil
	}
	f, err := os.OpenFile(w.path(table), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open sink %s: %w", table.Name, err)
	}
	w.files[table.Name] = f
	return f, nil
}

// Close flushes and closes every open sink file.
func (w *Writer) Close() error {
	var firstErr error
	for name, f := range w.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close sink %s: %w", name, err)
		}
		delete(w.files, name)
	}
	return firstErr
}

func (w *Writer) path(table Table) string {
	dir := w.nodeDir
	if table.Kind == Relationship {
		dir = w.relDir
	}
	return filepath.Join(dir, table.Name+".csv")
}
