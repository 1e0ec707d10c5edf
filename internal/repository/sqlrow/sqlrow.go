// Package sqlrow decodes content_records rows shared by the SQL sources.
package sqlrow

import (
	"encoding/json"
	"fmt"

	"folioapi/internal/model"
)

// Columns is the select list every SQL source reads, in scan order.
const Columns = `id, title, category, description, tags, date_span, publish_date,
		location, details, images, link_demo, link_code, link_external, detail`

// InsertColumns is the column list Values fills, in order.
var InsertColumns = []string{
	"domain", "position", "id", "title", "category", "description", "tags",
	"date_span", "publish_date", "location", "details", "images",
	"link_demo", "link_code", "link_external", "detail",
}

// Scanner is implemented by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Scan reads one row laid out as Columns. List columns hold JSON arrays
// and detail a JSON object, empty when the record has none.
func Scan(s Scanner) (model.ContentRecord, error) {
	var (
		r                     model.ContentRecord
		category, detail      string
		tags, details, images string
	)
	if err := s.Scan(
		&r.ID,
		&r.Title,
		&category,
		&r.Description,
		&tags,
		&r.DateSpan,
		&r.PublishDate,
		&r.Location,
		&details,
		&images,
		&r.Links.Demo,
		&r.Links.Code,
		&r.Links.External,
		&detail,
	); err != nil {
		return model.ContentRecord{}, err
	}
	r.Category = model.Category(category)

	var err error
	if r.Tags, err = decodeList(tags); err != nil {
		return model.ContentRecord{}, fmt.Errorf("record %d tags: %w", r.ID, err)
	}
	if r.Details, err = decodeList(details); err != nil {
		return model.ContentRecord{}, fmt.Errorf("record %d details: %w", r.ID, err)
	}
	if r.Images, err = decodeList(images); err != nil {
		return model.ContentRecord{}, fmt.Errorf("record %d images: %w", r.ID, err)
	}
	if detail != "" {
		r.Detail = &model.ProjectDetail{}
		if err := json.Unmarshal([]byte(detail), r.Detail); err != nil {
			return model.ContentRecord{}, fmt.Errorf("record %d detail: %w", r.ID, err)
		}
	}
	return r, nil
}

func decodeList(s string) ([]string, error) {
	out := []string{}
	if s == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Values lays rec out as InsertColumns for the row at position in domain.
func Values(domain model.Domain, position int, rec model.ContentRecord) ([]any, error) {
	tags, err := encodeList(rec.Tags)
	if err != nil {
		return nil, fmt.Errorf("record %d tags: %w", rec.ID, err)
	}
	details, err := encodeList(rec.Details)
	if err != nil {
		return nil, fmt.Errorf("record %d details: %w", rec.ID, err)
	}
	images, err := encodeList(rec.Images)
	if err != nil {
		return nil, fmt.Errorf("record %d images: %w", rec.ID, err)
	}
	var detail string
	if rec.Detail != nil {
		b, err := json.Marshal(rec.Detail)
		if err != nil {
			return nil, fmt.Errorf("record %d detail: %w", rec.ID, err)
		}
		detail = string(b)
	}
	return []any{
		string(domain), position, rec.ID, rec.Title, string(rec.Category), rec.Description, tags,
		rec.DateSpan, rec.PublishDate, rec.Location, details, images,
		rec.Links.Demo, rec.Links.Code, rec.Links.External, detail,
	}, nil
}

func encodeList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
