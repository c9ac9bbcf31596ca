package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a database under a temp dir for the test.
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = origDBPath
	})
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", DBPath())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/work/icons")

		Log(Entry{
			Source:  "cli:lint",
			Action:  "lint",
			Path:    "/work/icons",
			Success: true,
		})

		db := openDB(t)

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		var source, action, path, project string
		var success int
		err = db.QueryRow("SELECT source, action, path, project, success FROM log WHERE id = 1").
			Scan(&source, &action, &path, &project, &success)
		require.NoError(t, err)
		assert.Equal(t, "cli:lint", source)
		assert.Equal(t, "lint", action)
		assert.Equal(t, "/work/icons", path)
		assert.Equal(t, hash("/work/icons"), project)
		assert.Equal(t, 1, success)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		// Should not panic
		Log(Entry{Source: "cli:lint", Action: "lint", Success: true})
		Event("cli:lint", "lint").Write(nil)
	})

	t.Run("project tracks the linted root", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		SetProject("/work/icons")
		assert.Equal(t, hash("/work/icons"), Project())

		Close()
		assert.Empty(t, Project())
	})

	t.Run("open is idempotent", func(t *testing.T) {
		require.NoError(t, Open())
		require.NoError(t, Open())
		Close()
	})
}

func TestBuilder(t *testing.T) {
	useTempDB(t)

	t.Run("failed run", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("cli:lint", "lint").
			Path("/work/icons").
			Detail("files", 12).
			Detail("invalid", 3).
			Write(errors.New("lint failed"))

		db := openDB(t)

		var success int
		var errMsg, detail string
		err := db.QueryRow("SELECT success, error, detail FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg, &detail)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "lint failed", errMsg)
		assert.JSONEq(t, `{"files":12,"invalid":3}`, detail)
	})

	t.Run("entry without path stores null", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("cli:config", "list").Write(nil)

		db := openDB(t)

		var path sql.NullString
		var success int
		err := db.QueryRow("SELECT path, success FROM log ORDER BY id DESC LIMIT 1").Scan(&path, &success)
		require.NoError(t, err)
		assert.False(t, path.Valid)
		assert.Equal(t, 1, success)
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/icons")
	h2 := hash("/home/user/icons")
	h3 := hash("/home/user/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expected := filepath.Join(home, ".svglint", "log", "svglint-log.db")

	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, expected, DBPath())
}
