package files

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cnjsaude/internal/errors"
	"cnjsaude/pkg/contracts/domain"
)

// Discovery provides source-archive discovery operations
type Discovery struct {
	root   string
	groups []string
}

// NewDiscovery creates a discovery instance for the given data root and
// recognized group names.
func NewDiscovery(root string, groups []string) *Discovery {
	return &Discovery{root: root, groups: groups}
}

// ListSourceGroups returns one SourceGroup per recognized immediate
// subdirectory of the data root, each holding every ZIP archive found
// anywhere beneath it. Groups come back in the recognized-name order
// and archives in lexicographic order, so discovery is deterministic.
// An empty subdirectory yields a group with zero archives; a missing
// root is a configuration error.
func (d *Discovery) ListSourceGroups() ([]domain.SourceGroup, error) {
	info, err := os.Stat(d.root)
	if err != nil || !info.IsDir() {
		return nil, errors.NewConfigError("data root directory does not exist: "+d.root, err)
	}

	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, errors.NewConfigError("failed to read data root "+d.root, err)
	}

	// Map on-disk directory names onto the recognized set, ignoring case.
	dirByGroup := make(map[string]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		for _, group := range d.groups {
			if strings.EqualFold(entry.Name(), group) {
				dirByGroup[group] = entry.Name()
				break
			}
		}
	}

	var sourceGroups []domain.SourceGroup
	for _, group := range d.groups {
		dirName, ok := dirByGroup[group]
		if !ok {
			continue
		}

		archives, err := findArchives(filepath.Join(d.root, dirName))
		if err != nil {
			return nil, err
		}

		sourceGroups = append(sourceGroups, domain.SourceGroup{
			Name:     group,
			Archives: archives,
		})
	}

	return sourceGroups, nil
}

// findArchives walks a group directory recursively and collects every
// .zip file path in lexicographic order.
func findArchives(dir string) ([]string, error) {
	var archives []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: skip it rather than abort discovery.
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".zip") {
			archives = append(archives, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.NewConfigError("failed to walk group directory "+dir, err)
	}

	sort.Strings(archives)
	return archives, nil
}

// FindCSVFiles returns the sorted paths of all CSV files directly inside
// the given directory. The report stage uses this to pick up persisted
// regional extracts.
func FindCSVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewConfigError("failed to read directory "+dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
