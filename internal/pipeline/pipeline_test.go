package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcheck/internal/models"
)

const faaText = `Federal Aviation Administration
AD 2025-23-53
This AD applies to all MD-11 and MD-11F airplanes.`

const easaText = `European Union Aviation Safety Agency
EASA AD No.: 2025-0254R1
Applicability:
Airbus A320-214 aeroplanes, all manufacturer serial numbers.
Reason: cracks.`

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverDocuments(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "b_easa.txt", easaText)
	writeDoc(t, dir, "a_faa.txt", faaText)
	writeDoc(t, dir, "notes.md", "not a directive document")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.pdf"), 0o755)) // directories are skipped

	paths, err := DiscoverDocuments(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a_faa.txt"),
		filepath.Join(dir, "b_easa.txt"),
	}, paths)
}

func TestExtractOne(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "faa.txt", faaText)

	d := ExtractOne(path)
	assert.Equal(t, "FAA-2025-23-53", d.ID)
	assert.Equal(t, "faa.txt", d.SourceFile)
}

func TestExtractOneUnreadable(t *testing.T) {
	d := ExtractOne(filepath.Join(t.TempDir(), "absent.txt"))

	assert.Equal(t, models.UnknownID, d.ID)
	assert.Equal(t, models.AuthorityUnknown, d.Authority)
	assert.Equal(t, "absent.txt", d.SourceFile)
	assert.Empty(t, d.Rules.Models)
}

func TestExtractAllPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeDoc(t, dir, "faa.txt", faaText),
		filepath.Join(dir, "absent.txt"), // unreadable, degrades in place
		writeDoc(t, dir, "easa.txt", easaText),
	}

	directives := ExtractAll(context.Background(), paths, 4)

	require.Len(t, directives, len(paths))
	assert.Equal(t, "FAA-2025-23-53", directives[0].ID)
	assert.Equal(t, models.UnknownID, directives[1].ID)
	assert.Equal(t, "EASA-2025-0254R1", directives[2].ID)
}

func TestExtractAllSingleWorker(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeDoc(t, dir, "faa.txt", faaText),
		writeDoc(t, dir, "easa.txt", easaText),
	}

	directives := ExtractAll(context.Background(), paths, 0)

	require.Len(t, directives, 2)
	assert.Equal(t, "FAA-2025-23-53", directives[0].ID)
	assert.Equal(t, "EASA-2025-0254R1", directives[1].ID)
}

func TestExtractAllCancelled(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 8; i++ {
		paths = append(paths, writeDoc(t, dir, "doc"+string(rune('a'+i))+".txt", faaText))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	directives := ExtractAll(ctx, paths, 2)

	// One record per path regardless of cancellation.
	require.Len(t, directives, len(paths))
	for _, d := range directives {
		assert.NotEmpty(t, d.ID)
	}
}
