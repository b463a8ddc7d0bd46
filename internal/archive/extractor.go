package archive

import (
	"archive/zip"
	"io"
	"path"
	"strings"

	"cnjsaude/internal/errors"
)

// Member is one tabular file extracted from a source archive.
type Member struct {
	// Name is the entry name inside the archive, directories stripped.
	Name string
	// Data holds the raw member bytes.
	Data []byte
}

// Stem returns the member name without its extension, used for
// deterministic output naming.
func (m Member) Stem() string {
	name := m.Name
	return strings.TrimSuffix(name, path.Ext(name))
}

// ExtractTables opens a ZIP archive and extracts every member whose name
// ends in .csv, skipping all other entry types silently. The archive
// handle is closed before returning, so peak open-handle usage stays
// bounded across long batches. An unreadable or truncated archive yields
// an ArchiveError; callers skip the archive and continue the batch.
func ExtractTables(archivePath string) ([]Member, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, errors.NewArchiveError("failed to open archive "+archivePath, err)
	}
	defer reader.Close()

	var members []Member
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name), ".csv") {
			continue
		}

		data, err := readEntry(entry)
		if err != nil {
			// A truncated member means the archive itself is damaged.
			return nil, errors.NewArchiveError("failed to extract "+entry.Name+" from "+archivePath, err)
		}

		members = append(members, Member{
			Name: path.Base(entry.Name),
			Data: data,
		})
	}

	return members, nil
}

// readEntry reads one archive entry fully, closing its handle before
// moving to the next.
func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
