package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDocument() Document {
	return Normalize(Document{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		PositionTitle: "Mathematician",
		Tabs: Tabs{
			About: AboutSection{
				AboutParagraph: "Wrote the first algorithm.",
				Skills:         []string{"analysis", "poetry"},
				Links:          []SocialLink{{Title: "GitHub", URL: "https://github.com/ada"}},
			},
			Gallery: &GallerySection{Display: true, Items: []GalleryItem{
				{Title: "Notes", Description: "annotated translation"},
			}},
			PastProjects: &ProjectsSection{Display: true, Projects: []Project{
				{Title: "Analytical Engine", Description: "programs for Babbage's machine", Link: "https://example.com/engine"},
			}},
			Blogs: &BlogsSection{Display: true, Posts: []BlogPost{
				{Title: "On computation", Description: "musings"},
			}},
			Contact: ContactSection{Links: []ContactLink{
				{Type: "email", Title: "Email", URL: "ada@example.com"},
			}},
		},
	})
}

func TestBuildInstructionsContainsAllSections(t *testing.T) {
	out := BuildInstructions(fullDocument())

	assert.Contains(t, out, "You are an AI assistant for Ada Lovelace's portfolio.")
	assert.Contains(t, out, "Ada is a Mathematician.")
	assert.Contains(t, out, "About Ada: Wrote the first algorithm.")
	assert.Contains(t, out, "Skills and technologies: analysis, poetry.")
	assert.Contains(t, out, "Social links: GitHub: https://github.com/ada.")
	assert.Contains(t, out, "Past projects: Analytical Engine: programs for Babbage's machine (https://example.com/engine).")
	assert.Contains(t, out, "Gallery items: Notes: annotated translation.")
	assert.Contains(t, out, "Blog posts: On computation: musings.")
	assert.Contains(t, out, "Contact information: Email: ada@example.com.")
	assert.Contains(t, out, "Act as Ada and respond as if you are Ada.")
	assert.Contains(t, out, "Use plain text, no markdown.")
}

func TestBuildInstructionsFixedSectionOrder(t *testing.T) {
	out := BuildInstructions(fullDocument())

	order := []string{
		"You are an AI assistant",
		"About Ada:",
		"Skills and technologies:",
		"Social links:",
		"Past projects:",
		"Gallery items:",
		"Blog posts:",
		"Contact information:",
		"Instructions:",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(out, marker)
		require.GreaterOrEqual(t, idx, 0, "missing %q", marker)
		assert.Greater(t, idx, last, "%q out of order", marker)
		last = idx
	}
}

func TestBuildInstructionsSkipsEmptySections(t *testing.T) {
	out := BuildInstructions(Normalize(Document{FirstName: "Ada", LastName: "Lovelace"}))

	assert.NotContains(t, out, "Skills and technologies")
	assert.NotContains(t, out, "Past projects")
	assert.NotContains(t, out, "Gallery items")
	assert.NotContains(t, out, "Blog posts")
	assert.NotContains(t, out, "Contact information")
	assert.Contains(t, out, "Instructions:")
}

func TestBuildInstructionsStableForSameDocument(t *testing.T) {
	doc := fullDocument()
	assert.Equal(t, BuildInstructions(doc), BuildInstructions(doc))
}
