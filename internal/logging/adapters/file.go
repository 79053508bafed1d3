package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"talentscout/internal/logging/types"
)

// FileAdapter implements the LogAdapter interface for file output with
// size-based rotation.
type FileAdapter struct {
	name        string
	config      FileConfig
	currentFile *os.File
	currentSize int64
	mu          sync.Mutex
}

// FileConfig represents configuration for the file adapter
type FileConfig struct {
	FilePath   string      `yaml:"file_path"`   // path to log file
	Format     string      `yaml:"format"`      // json or text
	MaxSize    int64       `yaml:"max_size"`    // max file size in bytes (0 = no limit)
	CreateDirs bool        `yaml:"create_dirs"` // create parent directories if missing
	FileMode   os.FileMode `yaml:"file_mode"`   // file permissions
}

// NewFileAdapter creates a new file adapter
func NewFileAdapter(name string, config FileConfig) (*FileAdapter, error) {
	if config.FilePath == "" {
		return nil, fmt.Errorf("file_path is required for file adapter")
	}
	if config.FileMode == 0 {
		config.FileMode = 0644
	}
	if config.Format == "" {
		config.Format = "json"
	}

	adapter := &FileAdapter{
		name:   name,
		config: config,
	}

	if config.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directories: %w", err)
		}
	}

	if err := adapter.openFile(); err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return adapter, nil
}

// Write writes a log entry to the file
func (a *FileAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.config.MaxSize > 0 && a.currentSize >= a.config.MaxSize {
		if err := a.rotate(); err != nil {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	var output string
	var err error
	switch strings.ToLower(a.config.Format) {
	case "text":
		output = formatText(entry)
	default:
		output, err = formatJSON(entry)
	}
	if err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	n, err := fmt.Fprintln(a.currentFile, output)
	a.currentSize += int64(n)
	return err
}

// Close closes the underlying file
func (a *FileAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.currentFile != nil {
		err := a.currentFile.Close()
		a.currentFile = nil
		return err
	}
	return nil
}

// Name returns the name of the adapter
func (a *FileAdapter) Name() string {
	return a.name
}

func (a *FileAdapter) openFile() error {
	file, err := os.OpenFile(a.config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, a.config.FileMode)
	if err != nil {
		return err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}

	a.currentFile = file
	a.currentSize = info.Size()
	return nil
}

// rotate renames the current file with a timestamp suffix and opens a fresh one.
func (a *FileAdapter) rotate() error {
	if a.currentFile != nil {
		a.currentFile.Close()
		a.currentFile = nil
	}

	rotated := fmt.Sprintf("%s.%s", a.config.FilePath, time.Now().Format("20060102_150405"))
	if err := os.Rename(a.config.FilePath, rotated); err != nil && !os.IsNotExist(err) {
		return err
	}
	return a.openFile()
}
