// Package importer copies the authored YAML catalog into a SQL catalog
// source and, optionally, uploads the referenced images to object storage.
package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"path"
	"strconv"
	"strings"

	"folioapi/internal/catalog"
	"folioapi/internal/database"
	"folioapi/internal/model"
	"folioapi/internal/repository"
	"folioapi/internal/repository/sqlrow"
	"folioapi/internal/storage"
)

// Catalog is the validated content of every domain, in authoring order.
type Catalog map[model.Domain][]model.ContentRecord

// Collect reads every domain from repo and validates it the way the API
// does at startup, so an import never writes a catalog the API rejects.
func Collect(ctx context.Context, repo repository.RecordRepository) (Catalog, error) {
	set, err := catalog.LoadSet(ctx, repo)
	if err != nil {
		return nil, err
	}
	out := make(Catalog, len(model.Domains))
	for _, d := range model.Domains {
		st, _ := set.Store(d)
		out[d] = st.GetAll()
	}
	return out, nil
}

// Images returns the distinct image keys referenced by c.
func (c Catalog) Images() []string {
	seen := map[string]struct{}{}
	var keys []string
	for _, d := range model.Domains {
		for _, r := range c[d] {
			for _, img := range r.Images {
				if _, ok := seen[img]; ok {
					continue
				}
				seen[img] = struct{}{}
				keys = append(keys, img)
			}
		}
	}
	return keys
}

func insertStatement(dialect database.Dialect) string {
	ph := make([]string, len(sqlrow.InsertColumns))
	for i := range ph {
		if dialect == database.DialectSQLite {
			ph[i] = "?"
		} else {
			ph[i] = "$" + strconv.Itoa(i+1)
		}
	}
	return "INSERT INTO content_records (" + strings.Join(sqlrow.InsertColumns, ", ") +
		") VALUES (" + strings.Join(ph, ", ") + ")"
}

func deleteStatement(dialect database.Dialect) string {
	if dialect == database.DialectSQLite {
		return "DELETE FROM content_records WHERE domain = ?"
	}
	return "DELETE FROM content_records WHERE domain = $1"
}

// Write replaces the rows of every domain in c inside one transaction and
// returns the number of rows written.
func Write(ctx context.Context, db *sql.DB, dialect database.Dialect, c Catalog) (n int, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	insert := insertStatement(dialect)
	for _, d := range model.Domains {
		if _, err = tx.ExecContext(ctx, deleteStatement(dialect), string(d)); err != nil {
			return 0, fmt.Errorf("clear %s: %w", d, err)
		}
		for pos, rec := range c[d] {
			args, verr := sqlrow.Values(d, pos, rec)
			if verr != nil {
				return 0, verr
			}
			if _, err = tx.ExecContext(ctx, insert, args...); err != nil {
				return 0, fmt.Errorf("insert %s/%d: %w", d, rec.ID, err)
			}
			n++
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}

// UploadResult lists what UploadAssets did with each key.
type UploadResult struct {
	Uploaded []string
	Missing  []string
}

// UploadAssets streams every key found in assets to store. Keys without a
// file are reported as missing, not as an error.
func UploadAssets(ctx context.Context, store storage.Storage, assets fs.FS, keys []string) (UploadResult, error) {
	var res UploadResult
	for _, key := range keys {
		if err := uploadOne(ctx, store, assets, key); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				res.Missing = append(res.Missing, key)
				continue
			}
			return res, fmt.Errorf("upload %s: %w", key, err)
		}
		res.Uploaded = append(res.Uploaded, key)
	}
	return res, nil
}

func uploadOne(ctx context.Context, store storage.Storage, assets fs.FS, key string) error {
	f, err := assets.Open(key)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	ct := mime.TypeByExtension(path.Ext(key))
	if ct == "" {
		ct = "application/octet-stream"
	}

	_, err = store.Put(ctx, key, f, storage.PutObjectOptions{
		Size:        info.Size(),
		ContentType: ct,
	})
	return err
}
