package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// TranslationAdapter loads translations keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements TranslationAdapter.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads translations from a single file on disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a FileAdapter. Returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements TranslationAdapter.
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	dir, name := filepath.Split(a.path)
	if dir == "" {
		dir = "."
	}
	result := make(map[string]map[string]any)
	if err := loadFile(ctx, os.DirFS(dir), name, a.parser, result); err != nil {
		return nil, err
	}
	return result, nil
}

// FSAdapter loads every supported file of one directory inside an fs.FS,
// typically an embed.FS. Files are merged in lexical order, later files win
// on key collisions.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates an FSAdapter. Returns nil if parser or fsys is nil.
// An empty dir means the root of fsys.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// NewDirectoryAdapter creates an FSAdapter over a directory on disk.
// Returns nil if parser is nil or dir is empty.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	if dir == "" {
		return nil
	}
	return NewFSAdapter(parser, os.DirFS(dir), ".")
}

// Load implements TranslationAdapter.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	sort.Strings(names)

	result := make(map[string]map[string]any)
	for _, name := range names {
		if err := loadFile(ctx, a.fsys, path.Join(a.dir, name), a.parser, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// MergeAdapter combines adapters. Later adapters override keys of earlier ones,
// which lets an application customise bundled translations.
type MergeAdapter []TranslationAdapter

// Load implements TranslationAdapter.
func (m MergeAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any)
	for _, adapter := range m {
		if adapter == nil {
			continue
		}
		translations, err := adapter.Load(ctx)
		if err != nil {
			return nil, err
		}
		merge(result, translations)
	}
	return result, nil
}

func loadFile(ctx context.Context, fsys fs.FS, name string, parser Parser, into map[string]map[string]any) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLoadingCancelled, err)
	}

	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("%w: %q is empty", ErrFailedToParseFile, name)
	}

	translations, err := parser.Parse(ctx, content)
	if err != nil {
		return errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}
	merge(into, translations)
	return nil
}

// merge deep-merges src into dst per language.
func merge(dst, src map[string]map[string]any) {
	for lang, translations := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(translations))
		}
		mergeTree(dst[lang], translations)
	}
}

func mergeTree(dst, src map[string]any) {
	for key, val := range src {
		srcMap, srcIsMap := val.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeTree(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			clone := make(map[string]any, len(srcMap))
			mergeTree(clone, srcMap)
			val = clone
		}
		dst[key] = val
	}
}
