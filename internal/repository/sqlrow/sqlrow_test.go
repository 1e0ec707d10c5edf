package sqlrow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folioapi/internal/model"
)

// fakeRow copies fixed values into Scan destinations.
type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = f.values[i].(int)
		case *string:
			*p = f.values[i].(string)
		}
	}
	return nil
}

func row(tags, details, images string) fakeRow {
	return withDetail(tags, details, images, "")
}

func withDetail(tags, details, images, detail string) fakeRow {
	return fakeRow{values: []any{
		7, "Budget", "project", "desc", tags, "2023", "", "Paris",
		details, images, "", "https://github.com/x", "", detail,
	}}
}

func TestScan(t *testing.T) {
	rec, err := Scan(row(`["Go","SQL"]`, "", `["timeline/budget.png"]`))
	require.NoError(t, err)
	assert.Equal(t, 7, rec.ID)
	assert.Equal(t, model.CategoryProject, rec.Category)
	assert.Equal(t, []string{"Go", "SQL"}, rec.Tags)
	assert.Equal(t, []string{}, rec.Details)
	assert.Equal(t, []string{"timeline/budget.png"}, rec.Images)
	assert.Equal(t, "https://github.com/x", rec.Links.Code)
	assert.Nil(t, rec.Detail)

	rec, err = Scan(withDetail(`[]`, "", "", `{"client":{"name":"Santé Plus"},"related_ids":[2,4]}`))
	require.NoError(t, err)
	require.NotNil(t, rec.Detail)
	assert.Equal(t, "Santé Plus", rec.Detail.Client.Name)
	assert.Equal(t, []int{2, 4}, rec.Detail.RelatedIDs)
}

func TestScanErrors(t *testing.T) {
	_, err := Scan(row(`not json`, "", ""))
	assert.ErrorContains(t, err, "record 7 tags")

	_, err = Scan(row(`[]`, "", `{`))
	assert.ErrorContains(t, err, "record 7 images")

	_, err = Scan(withDetail(`[]`, "", "", `{`))
	assert.ErrorContains(t, err, "record 7 detail")

	_, err = Scan(fakeRow{err: errors.New("conn reset")})
	assert.EqualError(t, err, "conn reset")
}

func TestValues(t *testing.T) {
	rec := model.ContentRecord{
		ID: 3, Title: "Kiosk", Category: model.CategoryBranding,
		Tags: []string{"Figma"}, DateSpan: "2021",
		Links: model.Links{Demo: "https://demo"},
	}
	vals, err := Values(model.DomainProjects, 2, rec)
	require.NoError(t, err)
	require.Len(t, vals, len(InsertColumns))
	assert.Equal(t, "projects", vals[0])
	assert.Equal(t, 2, vals[1])
	assert.Equal(t, `["Figma"]`, vals[6])
	assert.Equal(t, `[]`, vals[10], "nil details encode as an empty array")
	assert.Equal(t, "https://demo", vals[12])
	assert.Equal(t, "", vals[15], "no detail stays empty")

	rec.Detail = &model.ProjectDetail{Objectives: "Créer", RelatedIDs: []int{1}}
	vals, err = Values(model.DomainProjects, 2, rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"objectives":"Créer","related_ids":[1]}`, vals[15].(string))

	back, err := Scan(fakeRow{values: append([]any{}, vals[2:]...)})
	require.NoError(t, err)
	assert.Equal(t, rec.Detail, back.Detail)
}
