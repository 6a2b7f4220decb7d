package source

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"logpanel/internal/config"
	"logpanel/internal/config/logger"
)

// skipDirs are never watched
var skipDirs = []string{".git", "node_modules", "vendor", ".idea", ".vscode"}

// followed is the read position of one file
type followed struct {
	offset  int64
	partial []byte
}

// Tail follows matching files under a directory and logs every new line
type Tail struct {
	dir     string
	matcher Matcher
	files   map[string]*followed
	log     logger.Logger
}

// NewTail creates a file follower for the tail config
func NewTail(cfg *config.Tail, log logger.Logger) (*Tail, error) {
	matcher, err := NewMatcher(cfg.Include, cfg.Ignore)
	if err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, err
	}

	return &Tail{
		dir:     dir,
		matcher: matcher,
		files:   make(map[string]*followed),
		log:     log,
	}, nil
}

// Name identifies the source in logs
func (t *Tail) Name() string {
	return "tail"
}

// Run watches the directory until ctx is done. Existing content is skipped.
func (t *Tail) Run(ctx context.Context, sink Sink) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := t.addDirRecursive(fsw, t.dir); err != nil {
		return err
	}

	t.log.Info().Msgf("Following files in %s", t.dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if err := t.handleEvent(fsw, event, sink); err != nil {
				return err
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			t.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

func (t *Tail) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event, sink Sink) error {
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		delete(t.files, event.Name)
		return nil
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			return t.addDirRecursive(fsw, event.Name)
		}
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return nil
	}

	rel, ok := t.relative(event.Name)
	if !ok || !t.matcher.Match(rel) {
		return nil
	}

	return t.readNew(event.Name, rel, sink)
}

// readNew logs every complete line written since the last read
func (t *Tail) readNew(path, rel string, sink Sink) error {
	f, ok := t.files[path]
	if !ok {
		f = &followed{}
		t.files[path] = f
	}

	file, err := os.Open(path)
	if err != nil {
		t.log.Warn().Err(err).Msgf("Failed to open %s", rel)
		return nil
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil
	}

	if info.Size() < f.offset {
		t.log.Debug().Msgf("File %s truncated, reading from start", rel)
		f.offset = 0
		f.partial = nil
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return nil
	}

	data, err := io.ReadAll(file)
	if err != nil {
		t.log.Warn().Err(err).Msgf("Failed to read %s", rel)
		return nil
	}

	f.offset += int64(len(data))
	data = append(f.partial, data...)

	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}

		line := strings.TrimRight(string(data[:i]), "\r")
		data = data[i+1:]

		if line == "" {
			continue
		}

		if err := sink.Log(InferSeverity(line), rel+": "+line); err != nil {
			return err
		}
	}

	f.partial = append([]byte(nil), data...)

	return nil
}

// skipExisting starts following a file at its current end
func (t *Tail) skipExisting(path string) {
	rel, ok := t.relative(path)
	if !ok || !t.matcher.Match(rel) {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		return
	}

	t.files[path] = &followed{offset: info.Size()}
}

func (t *Tail) relative(path string) (string, bool) {
	rel, err := filepath.Rel(t.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}

	return rel, true
}

func (t *Tail) addDirRecursive(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			t.skipExisting(path)
			return nil
		}

		if rel, ok := t.relative(path); ok && rel != "." && (shouldSkipDir(d.Name()) || t.matcher.MatchDir(rel)) {
			return filepath.SkipDir
		}

		if err := fsw.Add(path); err != nil {
			t.log.Warn().Err(err).Msgf("Failed to watch directory: %s", path)
		}

		return nil
	})
}

func shouldSkipDir(name string) bool {
	for _, s := range skipDirs {
		if name == s {
			return true
		}
	}

	return false
}
