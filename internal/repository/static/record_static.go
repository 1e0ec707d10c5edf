// Package static reads content records from YAML documents, by default the
// ones compiled into the binary.
package static

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"folioapi/internal/model"
	"folioapi/internal/repository"
)

//go:embed data/*.yaml
var embedded embed.FS

// yamlRecord is the authoring format of one record.
type yamlRecord struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	DateSpan    string   `yaml:"date_span"`
	PublishDate string   `yaml:"publish_date"`
	Location    string   `yaml:"location"`
	Details     []string `yaml:"details"`
	Images      []string `yaml:"images"`
	Links       struct {
		Demo     string `yaml:"demo"`
		Code     string `yaml:"code"`
		External string `yaml:"external"`
	} `yaml:"links"`
	Detail *yamlDetail `yaml:"detail"`
}

type yamlDetail struct {
	Client *struct {
		Name     string `yaml:"name"`
		Services string `yaml:"services"`
		Website  string `yaml:"website"`
		Phone    string `yaml:"phone"`
	} `yaml:"client"`
	Objectives   string `yaml:"objectives"`
	Technologies []struct {
		Title string   `yaml:"title"`
		Techs []string `yaml:"techs"`
	} `yaml:"technologies"`
	Sharing []struct {
		Network string `yaml:"network"`
		URL     string `yaml:"url"`
	} `yaml:"sharing"`
	Related []int `yaml:"related"`
}

func (y *yamlDetail) model() *model.ProjectDetail {
	if y == nil {
		return nil
	}
	d := &model.ProjectDetail{Objectives: y.Objectives, RelatedIDs: y.Related}
	if y.Client != nil {
		d.Client = &model.ClientInfo{
			Name:     y.Client.Name,
			Services: y.Client.Services,
			Website:  y.Client.Website,
			Phone:    y.Client.Phone,
		}
	}
	for _, g := range y.Technologies {
		d.Technologies = append(d.Technologies, model.TechGroup{Title: g.Title, Techs: g.Techs})
	}
	for _, sh := range y.Sharing {
		d.Sharing = append(d.Sharing, model.ShareLink{Network: sh.Network, URL: sh.URL})
	}
	return d
}

// RecordStatic implements repository.RecordRepository over "<domain>.yaml"
// files of a file system.
type RecordStatic struct {
	fsys fs.FS
}

var _ repository.RecordRepository = (*RecordStatic)(nil)

// NewRecordStatic reads records from fsys. A nil fsys selects the embedded
// data set.
func NewRecordStatic(fsys fs.FS) *RecordStatic {
	return &RecordStatic{fsys: orEmbedded(fsys)}
}

func orEmbedded(fsys fs.FS) fs.FS {
	if fsys != nil {
		return fsys
	}
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// ListByDomain decodes <domain>.yaml. A missing file is an empty domain.
func (r *RecordStatic) ListByDomain(ctx context.Context, domain model.Domain) ([]model.ContentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := string(domain) + ".yaml"
	b, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.ContentRecord{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var raw []yamlRecord
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	out := make([]model.ContentRecord, 0, len(raw))
	for _, y := range raw {
		tags := y.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, model.ContentRecord{
			ID:          y.ID,
			Title:       y.Title,
			Category:    model.Category(y.Category),
			Description: y.Description,
			Tags:        tags,
			DateSpan:    y.DateSpan,
			PublishDate: y.PublishDate,
			Location:    y.Location,
			Details:     y.Details,
			Images:      y.Images,
			Links: model.Links{
				Demo:     y.Links.Demo,
				Code:     y.Links.Code,
				External: y.Links.External,
			},
			Detail: y.Detail.model(),
		})
	}
	return out, nil
}
