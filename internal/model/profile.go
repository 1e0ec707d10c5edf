package model

import "slices"

// Recommendation is a testimonial left by a former colleague or client.
type Recommendation struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Link  string `json:"link,omitempty"`
}

// Stack lists the technologies and tools of the portfolio owner.
type Stack struct {
	Techs []string `json:"techs"`
	Tools []string `json:"tools"`
}

// Clone returns a copy of s that shares no slices with it.
func (s Stack) Clone() Stack {
	return Stack{Techs: slices.Clone(s.Techs), Tools: slices.Clone(s.Tools)}
}
