package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"rustgen/manifest"
)

// CollectManifests разворачивает аргументы командной строки в плоский список
// файлов манифестов. Каталоги обходятся рекурсивно, явно указанный файл
// обязан иметь расширение манифеста.
func CollectManifests(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if !strings.HasSuffix(path, manifest.Extension) {
				return nil, fmt.Errorf("%s: %w", path, manifest.ErrNotManifest)
			}
			files = append(files, path)
			continue
		}
		walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(p, manifest.Extension) {
				files = append(files, p)
			}
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	// Сортируем для детерминированного порядка; один и тот же манифест могли
	// указать дважды.
	sort.Strings(files)
	return slices.Compact(files), nil
}

// CollectWatchDirs returns every directory the watcher has to subscribe to so
// that changes under paths are seen: the directories themselves, their
// subdirectories, and the parents of explicitly named files.
func CollectWatchDirs(paths []string) ([]string, error) {
	var dirs []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			dirs = append(dirs, filepath.Dir(path))
			continue
		}
		walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				dirs = append(dirs, p)
			}
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	sort.Strings(dirs)
	return slices.Compact(dirs), nil
}
