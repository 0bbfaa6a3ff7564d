package render

import (
	"github.com/Zachkp/folio/internal/icons"
	"github.com/Zachkp/folio/internal/portfolio"
)

// SkillItem is one marquee entry; IconURL is empty for text-only items.
type SkillItem struct {
	Name    string
	IconURL string
}

// SkillsView is the item list written into both marquee containers.
type SkillsView struct {
	Items []SkillItem
	OOB   bool
}

// Skills flattens every record's application, programming_language and
// technologies fields into one list of distinct names in first-seen order.
func Skills(skills []portfolio.Skill) SkillsView {
	var v SkillsView
	seen := make(map[string]bool)
	add := func(field string) {
		for _, name := range portfolio.SplitList(field) {
			if seen[name] {
				continue
			}
			seen[name] = true
			url, _ := icons.Resolve(name)
			v.Items = append(v.Items, SkillItem{Name: name, IconURL: url})
		}
	}
	for _, s := range skills {
		add(s.Application)
		add(s.ProgrammingLanguage)
		add(s.Technologies)
	}
	return v
}

// Names returns the distinct skill names in order.
func (v SkillsView) Names() []string {
	names := make([]string, len(v.Items))
	for i, item := range v.Items {
		names[i] = item.Name
	}
	return names
}
