package document

import (
	"fmt"
	"strings"
)

// Directive block appended to every instruction string. The assistant speaks
// as the owner, keeps answers short and stays on portfolio topics.
const assistantDirectives = `

Instructions:
- Act as %[1]s and respond as if you are %[1]s.
- Respond in a friendly, professional, and helpful manner.
- Keep responses very short, only one or two lines, and non pushy.
- For listing things, use bullet points.
- Focus on %[1]s's work, experience, and portfolio content.
- If asked about something not in the portfolio, politely redirect to available information.
- Use a conversational tone but maintain professionalism.
- Use plain text, no markdown.
`

// BuildInstructions flattens a portfolio document into the natural-language
// instruction string sent to the completion endpoint alongside each visitor
// query. Sections are emitted in a fixed order so the output is stable for
// identical documents.
func BuildInstructions(d Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an AI assistant for %s %s's portfolio. ", d.FirstName, d.LastName)
	if d.PositionTitle != "" {
		fmt.Fprintf(&b, "%s is a %s. ", d.FirstName, d.PositionTitle)
	}

	if about := d.Tabs.About.AboutParagraph; about != "" {
		fmt.Fprintf(&b, "About %s: %s ", d.FirstName, about)
	}
	if skills := d.Tabs.About.Skills; len(skills) > 0 {
		fmt.Fprintf(&b, "Skills and technologies: %s. ", strings.Join(skills, ", "))
	}
	if links := d.Tabs.About.Links; len(links) > 0 {
		parts := make([]string, len(links))
		for i, l := range links {
			parts[i] = l.Title + ": " + l.URL
		}
		fmt.Fprintf(&b, "Social links: %s. ", strings.Join(parts, ", "))
	}

	if p := d.Tabs.PastProjects; p != nil && len(p.Projects) > 0 {
		parts := make([]string, len(p.Projects))
		for i, proj := range p.Projects {
			parts[i] = proj.Title + ": " + proj.Description
			if proj.Link != "" {
				parts[i] += " (" + proj.Link + ")"
			}
		}
		fmt.Fprintf(&b, "Past projects: %s. ", strings.Join(parts, "; "))
	}

	if g := d.Tabs.Gallery; g != nil && len(g.Items) > 0 {
		parts := make([]string, len(g.Items))
		for i, item := range g.Items {
			parts[i] = item.Title + ": " + item.Description
		}
		fmt.Fprintf(&b, "Gallery items: %s. ", strings.Join(parts, "; "))
	}

	if bl := d.Tabs.Blogs; bl != nil && len(bl.Posts) > 0 {
		parts := make([]string, len(bl.Posts))
		for i, post := range bl.Posts {
			parts[i] = post.Title + ": " + post.Description
		}
		fmt.Fprintf(&b, "Blog posts: %s. ", strings.Join(parts, "; "))
	}

	if links := d.Tabs.Contact.Links; len(links) > 0 {
		parts := make([]string, len(links))
		for i, l := range links {
			parts[i] = l.Title + ": " + l.URL
		}
		fmt.Fprintf(&b, "Contact information: %s. ", strings.Join(parts, ", "))
	}

	fmt.Fprintf(&b, assistantDirectives, d.FirstName)
	return b.String()
}
