package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"lectern/internal/session"
)

// Canonical file names inside a bundle directory.
const (
	MetadataFile   = "session.json"
	TranscriptFile = "transcript.json"
	ChatsFile      = "chats.json"
	PollsFile      = "polls.json"
	ActivitiesFile = "activities.json"
	StudentsFile   = "students.json"
)

// LoadBundle reads every telemetry stream under dir into a bundle. The six
// files are independent, so they are read and decoded concurrently; each
// stream writes only its own bundle field.
func LoadBundle(dir string) (*session.Bundle, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("ingest: open bundle directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("ingest: %s is not a directory", dir)
	}

	bundle := &session.Bundle{}
	streams := []struct {
		name   string
		decode func([]byte) error
	}{
		{MetadataFile, func(data []byte) error {
			meta := &session.Metadata{}
			if err := json.Unmarshal(data, meta); err != nil {
				return err
			}
			bundle.Metadata = meta
			return nil
		}},
		{TranscriptFile, func(data []byte) error { return json.Unmarshal(data, &bundle.Transcript) }},
		{ChatsFile, func(data []byte) error { return json.Unmarshal(data, &bundle.Chats) }},
		{PollsFile, func(data []byte) error { return json.Unmarshal(data, &bundle.Polls) }},
		{ActivitiesFile, func(data []byte) error { return json.Unmarshal(data, &bundle.Activities) }},
		{StudentsFile, func(data []byte) error { return json.Unmarshal(data, &bundle.Students) }},
	}

	var wg sync.WaitGroup
	errs := make([]error, len(streams))
	for i, stream := range streams {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = loadStream(filepath.Join(dir, stream.name), stream.decode)
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return bundle, nil
}

func loadStream(path string, decode func([]byte) error) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ingest: read %s: %w", filepath.Base(path), err)
	}
	if err := decode(data); err != nil {
		return fmt.Errorf("ingest: decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
