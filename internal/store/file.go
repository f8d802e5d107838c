// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-app-config/internal/logger"
)

type localFileReader struct {
	workingDir string

	logger *logger.Logger
}

// NewLocalFileReader returns a [FileReader] that resolves file names against
// workingDir. An empty workingDir means the process working directory at
// construction time.
func NewLocalFileReader(workingDir string, logger *logger.Logger) (FileReader, error) {
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		workingDir = wd
	}

	return &localFileReader{workingDir: workingDir, logger: logger}, nil
}

func (f *localFileReader) Read(fileName string) ([]byte, bool) {
	path := filepath.Join(f.workingDir, fileName)

	content, err := os.ReadFile(path)
	if err != nil {
		f.logger.Error().Err(err).Str("file", path).Msg("failed to load file")
		return nil, false
	}
	if len(content) == 0 {
		f.logger.Error().Str("file", path).Msg("file is empty")
		return nil, false
	}

	f.logger.Debug().Str("file", path).Int("size", len(content)).Msg("file loaded")
	return content, true
}
