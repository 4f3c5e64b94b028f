package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"sort"
)

// TranslationAdapter defines how message catalogs are loaded.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the catalog source.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single catalog file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a FileAdapter. A nil parser is picked from the
// file extension at load time.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	return parseFile(ctx, a.parser, a.path, content)
}

// FSAdapter loads every supported catalog file of a directory inside an
// fs.FS, such as an embed.FS. Files are merged in name order, so later
// files override keys of earlier ones.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter creates an FSAdapter over dir in fsys ("." for the root).
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

// NewDirectoryAdapter creates an FSAdapter over a directory on disk.
func NewDirectoryAdapter(dir string) *FSAdapter {
	return NewFSAdapter(os.DirFS(dir), ".")
}

// Load implements the TranslationAdapter interface
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	result := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || NewParserForFile(entry.Name()) == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingFileCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		parsed, err := parseFile(ctx, nil, name, content)
		if err != nil {
			return nil, err
		}
		mergeLocales(result, parsed)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoCatalogFiles, a.dir)
	}

	return result, nil
}

func parseFile(ctx context.Context, parser Parser, name string, content []byte) (map[string]map[string]any, error) {
	if parser == nil {
		parser = NewParserForFile(name)
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, name)
	}

	if len(content) == 0 {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("catalog file %q is empty", name))
	}

	parsed, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}

	return parsed, nil
}

func mergeLocales(dst, src map[string]map[string]any) {
	for locale, entries := range src {
		if dst[locale] == nil {
			dst[locale] = make(map[string]any, len(entries))
		}
		maps.Copy(dst[locale], entries)
	}
}
