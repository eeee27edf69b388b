package common

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"resumatch/internal/errors"
	"resumatch/internal/utils"
)

// FileProcessor reads inputs and writes outputs for CLI commands, reporting
// failures as typed IO and validation errors
type FileProcessor struct {
	logger *errors.Logger
}

// NewFileProcessor creates a new file processor instance
func NewFileProcessor(logger *errors.Logger) *FileProcessor {
	if logger == nil {
		logger = errors.NewNopLogger()
	}
	return &FileProcessor{logger: logger}
}

// ReadFile returns the whole file as a string. A missing file is reported
// with ErrCodeFileNotFound, any other failure with ErrCodeFileNotReadable.
func (fp *FileProcessor) ReadFile(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return "", errors.NewIOError(errors.ErrCodeFileNotFound,
			fmt.Sprintf("File not found: %s", filename), err)
	case err != nil:
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read file: %s", filename), err)
	}

	fp.logger.Debug("File read", "filename", filename, "bytes", len(content))
	return string(content), nil
}

// ReadSkillList reads a skill list file. Skills are separated by commas or
// newlines; lines starting with # are ignored.
func (fp *FileProcessor) ReadSkillList(filename string) ([]string, error) {
	content, err := fp.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var names []string
	for line := range strings.Lines(content) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for name := range strings.SplitSeq(line, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

// WriteFile writes content to filename, creating missing parent directories.
func (fp *FileProcessor) WriteFile(filename, content string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return errors.NewIOError("DIRECTORY_CREATE_FAILED",
				fmt.Sprintf("Cannot create directory: %s", dir), err)
		}
	}

	if err := os.WriteFile(filename, []byte(content), 0600); err != nil {
		return errors.NewIOError("FILE_WRITE_FAILED",
			fmt.Sprintf("Cannot write file: %s", filename), err)
	}
	return nil
}

// ValidateInputFiles checks that every file exists and, when extensions is
// not empty, carries one of them
func (fp *FileProcessor) ValidateInputFiles(extensions []string, filenames ...string) error {
	for _, filename := range filenames {
		if err := utils.ValidateInputFile(filename); err != nil {
			return errors.NewValidationError("INVALID_INPUT_FILE",
				fmt.Sprintf("Invalid file %s", filename), err)
		}

		if len(extensions) > 0 && !utils.HasExtension(filename, extensions...) {
			return errors.NewUnsupportedFormatError(strings.TrimPrefix(utils.GetFileExtension(filename), "."))
		}

		fp.logger.Debug("Input file validated", "filename", filename)
	}

	return nil
}

// ValidateOutputFile validates output file path
func (fp *FileProcessor) ValidateOutputFile(filename string) error {
	if filename == "" {
		return nil // stdout is valid
	}

	if err := utils.ValidateOutputFile(filename); err != nil {
		return errors.NewValidationError("INVALID_OUTPUT_FILE",
			fmt.Sprintf("Invalid output file: %s", filename), err)
	}

	return nil
}
