package static

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"folioapi/internal/model"
	"folioapi/internal/repository"
)

const (
	recommendationsFile = "recommendations.yaml"
	stackFile           = "stack.yaml"
)

type yamlRecommendation struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Link  string `yaml:"link"`
}

type yamlStack struct {
	Techs []string `yaml:"techs"`
	Tools []string `yaml:"tools"`
}

// ProfileStatic implements repository.ProfileRepository over
// recommendations.yaml and stack.yaml of a file system.
type ProfileStatic struct {
	fsys fs.FS
}

var _ repository.ProfileRepository = (*ProfileStatic)(nil)

// NewProfileStatic reads the profile from fsys. A nil fsys selects the
// embedded data set.
func NewProfileStatic(fsys fs.FS) *ProfileStatic {
	return &ProfileStatic{fsys: orEmbedded(fsys)}
}

// decodeFile unmarshals name into v. A missing file leaves v untouched.
func decodeFile(ctx context.Context, fsys fs.FS, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// ListRecommendations decodes recommendations.yaml in authoring order.
func (p *ProfileStatic) ListRecommendations(ctx context.Context) ([]model.Recommendation, error) {
	var raw []yamlRecommendation
	if err := decodeFile(ctx, p.fsys, recommendationsFile, &raw); err != nil {
		return nil, err
	}
	out := make([]model.Recommendation, 0, len(raw))
	for _, y := range raw {
		out = append(out, model.Recommendation{
			ID:    y.ID,
			Name:  y.Name,
			Title: y.Title,
			Text:  y.Text,
			Link:  y.Link,
		})
	}
	return out, nil
}

// GetStack decodes stack.yaml. Missing lists come back empty.
func (p *ProfileStatic) GetStack(ctx context.Context) (model.Stack, error) {
	var raw yamlStack
	if err := decodeFile(ctx, p.fsys, stackFile, &raw); err != nil {
		return model.Stack{}, err
	}
	stack := model.Stack{Techs: raw.Techs, Tools: raw.Tools}
	if stack.Techs == nil {
		stack.Techs = []string{}
	}
	if stack.Tools == nil {
		stack.Tools = []string{}
	}
	return stack, nil
}
