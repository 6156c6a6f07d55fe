package persist

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasrivero/boleta-api/catalog"
	"github.com/lucasrivero/boleta-api/models"
	"github.com/lucasrivero/boleta-api/receipt"
)

var testTime = time.Date(2025, 3, 14, 15, 4, 5, 0, time.UTC)

func testCatalog() catalog.Catalog {
	return catalog.Catalog{"Widget": decimal.RequireFromString("12.5")}
}

func testLines() []models.CartLine {
	return []models.CartLine{{ID: "1", Product: "Widget", Quantity: 2}}
}

func TestSaveWritesReceiptAndQR(t *testing.T) {
	root := t.TempDir()
	saver := NewSaver(testCatalog(), root, false)

	rec, handle, err := saver.Save("Ana", testLines(), testTime)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "Ana_14-03-25_15;04;05.txt"), handle.Path)
	content, err := os.ReadFile(handle.Path)
	require.NoError(t, err)
	assert.Equal(t, receipt.Render(rec), string(content))

	require.NotEmpty(t, handle.QRPath)
	assert.Equal(t, filepath.Join(root, "Ana_14-03-25_15;04;05.png"), handle.QRPath)
	_, err = os.Stat(handle.QRPath)
	assert.NoError(t, err)
}

func TestSavePartitionsByDate(t *testing.T) {
	root := t.TempDir()
	saver := NewSaver(testCatalog(), root, true)

	_, handle, err := saver.Save("Ana", testLines(), testTime)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "2025", "03", "14"), filepath.Dir(handle.Path))
	assert.Equal(t, filepath.Join(root, "2025", "03", "14"), saver.DirFor(testTime))
}

func TestSaveEmptyCartWritesNothing(t *testing.T) {
	root := t.TempDir()
	saver := NewSaver(testCatalog(), root, false)

	_, _, err := saver.Save("Ana", nil, testTime)
	assert.ErrorIs(t, err, ErrEmptyCart)

	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries)

	_, ok := saver.Last()
	assert.False(t, ok)
}

func TestSaveMissingCustomer(t *testing.T) {
	saver := NewSaver(testCatalog(), t.TempDir(), false)

	_, _, err := saver.Save("  ", testLines(), testTime)
	assert.ErrorIs(t, err, ErrMissingCustomer)
}

func TestLastTracksMostRecentSave(t *testing.T) {
	saver := NewSaver(testCatalog(), t.TempDir(), false)

	_, ok := saver.Last()
	require.False(t, ok)

	_, first, err := saver.Save("Ana", testLines(), testTime)
	require.NoError(t, err)
	_, second, err := saver.Save("Luis", testLines(), testTime.Add(time.Second))
	require.NoError(t, err)

	last, ok := saver.Last()
	require.True(t, ok)
	assert.Equal(t, second.Path, last.Path)
	assert.NotEqual(t, first.Path, last.Path)
}

func TestSaveWrapsPrimaryWriteFailure(t *testing.T) {
	// A regular file where a directory should be makes MkdirAll fail.
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	saver := NewSaver(testCatalog(), blocked, true)

	_, _, err := saver.Save("Ana", testLines(), testTime)
	require.Error(t, err)

	var perr *PersistError
	assert.ErrorAs(t, err, &perr)
}
