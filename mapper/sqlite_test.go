package mapper

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSqlite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("sqlite3 unavailable: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE MockEntity (Id INTEGER PRIMARY KEY AUTOINCREMENT, Name TEXT NOT NULL, Cents INTEGER NOT NULL)`)
	require.NoError(t, err)
	return db
}

func readAll(t *testing.T, db *sql.DB, m *Mapper[MockEntity]) []MockEntity {
	t.Helper()
	rows, err := db.Query(m.ReadSql().OrderBy(m.KeyQualified()).ToSql())
	require.NoError(t, err)
	defer rows.Close()

	var out []MockEntity
	for rows.Next() {
		var e MockEntity
		require.NoError(t, rows.Scan(&e.Id, &e.Name, &e.Cents))
		out = append(out, e)
	}
	require.NoError(t, rows.Err())
	return out
}

func TestSqliteRoundTrip(t *testing.T) {
	db := setupSqlite(t)
	m := MustNew[MockEntity]()

	t.Run("create", func(t *testing.T) {
		for _, e := range []MockEntity{{Name: "Pim", Cents: 50}, {Name: "Lindsey", Cents: 100}} {
			res, err := db.Exec(m.CreateSql().ToSql(), sql.Named("Name", e.Name), sql.Named("Cents", e.Cents))
			require.NoError(t, err)
			n, err := res.RowsAffected()
			require.NoError(t, err)
			assert.EqualValues(t, 1, n)
		}
		all := readAll(t, db, m)
		require.Len(t, all, 2)
		assert.Equal(t, "Pim", all[0].Name)
		assert.Equal(t, 100, all[1].Cents)
	})

	t.Run("count", func(t *testing.T) {
		var n int
		require.NoError(t, db.QueryRow(m.CountSql().ToSql()).Scan(&n))
		assert.Equal(t, 2, n)
	})

	t.Run("update", func(t *testing.T) {
		_, err := db.Exec(m.UpdateSql().ToSql(), sql.Named("Name", "Pim"), sql.Named("Cents", 75), sql.Named("Id", 1))
		require.NoError(t, err)
		all := readAll(t, db, m)
		require.Len(t, all, 2)
		assert.Equal(t, 75, all[0].Cents)
	})

	t.Run("page with limit", func(t *testing.T) {
		q := m.ReadSql().
			Where(m.KeyQualified() + " > @Id").
			OrderBy(m.KeyQualified()).
			Limit(1).
			ToSql()
		var e MockEntity
		require.NoError(t, db.QueryRow(q, sql.Named("Id", 1)).Scan(&e.Id, &e.Name, &e.Cents))
		assert.Equal(t, "Lindsey", e.Name)
	})

	t.Run("delete", func(t *testing.T) {
		_, err := db.Exec(m.DeleteSql().ToSql(), sql.Named("Id", 1))
		require.NoError(t, err)
		all := readAll(t, db, m)
		require.Len(t, all, 1)
		assert.Equal(t, "Lindsey", all[0].Name)
	})
}
