package page

import "github.com/lixenwraith/flow-banner/flow"

// Section is one scroll target of the pager, ID matches a stage id
type Section struct {
	ID    string
	Title string
	Color string
	Body  []string
}

// DefaultSections is the page copy shown below the banner
func DefaultSections() []Section {
	return []Section{
		{
			ID:    "about",
			Title: "About",
			Color: "#0ea5a4",
			Body: []string{
				"Process consulting with technology and AI expertise.",
				"We help companies solve real business problems, sustainably and responsibly. Technology is our tool, not our product.",
			},
		},
		{
			ID:    "process",
			Title: "Process",
			Color: "#2563eb",
			Body: []string{
				"We start with your problem, not our solutions. Every project begins with understanding your actual business challenge and current processes.",
				"We analyze and map your actual workflows before recommending any system.",
			},
		},
		{
			ID:    "data",
			Title: "Data",
			Color: "#0ea5a4",
			Body: []string{
				"We evaluate by business value. Solutions are judged by whether they solve your problem, not by technical sophistication.",
				"Before anything is built we check what your data can and cannot tell you.",
			},
		},
		{
			ID:    "model",
			Title: "Model",
			Color: "#7c3aed",
			Body: []string{
				"We educate, not just implement. You will understand the choices we make and why, so you can maintain and evolve the solution.",
				"If technology is not the answer, we will tell you.",
			},
		},
		{
			ID:    "business",
			Title: "Business",
			Color: "#ef4444",
			Body: []string{
				"We measure success honestly. After implementation, we ask: did this solve the original problem?",
				"Every solution must create real, measurable value for you.",
			},
		},
		{
			ID:    "contact",
			Title: "Contact",
			Color: "#2563eb",
			Body: []string{
				"Let's talk. Tell us about the problem you are trying to solve.",
			},
		},
	}
}

// WithStages adds a section for every stage that has none, so each stage click has a target
// New sections go before a trailing "contact" section
func WithStages(sections []Section, stages []flow.StageDef) []Section {
	known := make(map[string]bool, len(sections))
	for _, s := range sections {
		known[s.ID] = true
	}

	var extra []Section
	for _, st := range stages {
		if known[st.ID] {
			continue
		}
		known[st.ID] = true
		sec := Section{ID: st.ID, Title: st.Label, Color: st.Color}
		if sec.Title == "" {
			sec.Title = st.ID
		}
		if st.Description != "" {
			sec.Body = []string{st.Description}
		}
		extra = append(extra, sec)
	}
	if len(extra) == 0 {
		return sections
	}

	out := make([]Section, 0, len(sections)+len(extra))
	tail := len(sections)
	if tail > 0 && sections[tail-1].ID == "contact" {
		tail--
	}
	out = append(out, sections[:tail]...)
	out = append(out, extra...)
	return append(out, sections[tail:]...)
}
