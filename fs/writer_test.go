package fs_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	linkedin "github.com/SACCSF/NeonCRMLinkedIn"
	"github.com/SACCSF/NeonCRMLinkedIn/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personRow(name, subtitle any) linkedin.Row {
	return linkedin.Row{
		Columns: []string{"name", "subtitle"},
		Values:  []any{name, subtitle},
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	t.Run("writes array of records with nulls and non-ASCII preserved", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.json")
		rows := []linkedin.Row{
			personRow("Jürgen Müller", "Geschäftsführer"),
			personRow("Jane Doe", nil),
		}

		err := fs.WriteJSON(path, rows)

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `[
			{"name":"Jürgen Müller","subtitle":"Geschäftsführer"},
			{"name":"Jane Doe","subtitle":null}
		]`, string(content))
		assert.Contains(t, string(content), "Jürgen Müller", "non-ASCII must not be escaped")
	})

	t.Run("no rows writes an empty array", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.json")

		err := fs.WriteJSON(path, nil)

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(content))
	})

	t.Run("overwrites an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

		err := fs.WriteJSON(path, []linkedin.Row{personRow("New", nil)})

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"name":"New","subtitle":null}]`, string(content))
	})

	t.Run("leaves no temp file behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		err := fs.WriteJSON(filepath.Join(dir, "out.json"), nil)

		require.NoError(t, err)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "out.json", entries[0].Name())
	})
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	t.Run("writes header with index column and one record per row", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		rows := []linkedin.Row{
			{
				Columns: []string{"name", "foundedOn", "specialities"},
				Values:  []any{"Acme", int64(1952), json.RawMessage(`["tunnels","anvils"]`)},
			},
			{
				Columns: []string{"name", "foundedOn", "specialities"},
				Values:  []any{"Globex", nil, nil},
			},
		}

		err := fs.WriteCSV(path, []string{"name", "foundedOn", "specialities"}, rows)

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		want := ",name,foundedOn,specialities\n" +
			"0,Acme,1952,\"[\"\"tunnels\"\",\"\"anvils\"\"]\"\n" +
			"1,Globex,,\n"
		assert.Equal(t, want, string(content))
	})

	t.Run("no rows writes header only", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")

		err := fs.WriteCSV(path, []string{"name"}, nil)

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, ",name\n", string(content))
	})
}
