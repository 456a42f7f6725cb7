// Package characters provides the local cache of character records.
//
// # Overview
//
// Repository exposes the three operations the client needs: wipe-and-write
// the whole set (ReplaceAll), read it back (GetAll) and count it (Count).
// SQLiteRepository implements it over a dbx.DBTX, so it can run against
// *sql.DB directly or inside dbx.WithTx.
//
// # Data Model
//
// Table characters(id, name, gender, culture, titles). Titles are stored as a
// JSON array of strings. Text columns are written as given, nil becoming "";
// on read, empty or NULL text comes back as nil and empty or NULL titles as
// an empty, non-nil slice.
//
// Typical Usage
//
//	repo := characters.NewSQLiteRepository(db)
//	_ = repo.ReplaceAll(ctx, fetched)
//	list, _ := repo.GetAll(ctx)
package characters
