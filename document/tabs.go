package document

// TabID names a visitor-facing content section.
type TabID string

const (
	TabAbout        TabID = "about"
	TabGallery      TabID = "gallery"
	TabPastProjects TabID = "pastProjects"
	TabBlogs        TabID = "blogs"
	TabAI           TabID = "ai"
	TabContact      TabID = "contact"
)

type Tab struct {
	ID    TabID  `json:"id"`
	Label string `json:"label"`
}

// Tabs a visitor can navigate to, in render order. The AI chatbot is a
// floating affordance rather than a tab, so it is not listed here.
var AllTabs = []Tab{
	{TabAbout, "About"},
	{TabGallery, "Gallery"},
	{TabPastProjects, "Projects"},
	{TabBlogs, "Blogs"},
	{TabContact, "Contact"},
}

// VisibleTabs returns the tabs a visitor may see, in canonical order.
// About and Contact are always shown. Gallery, Projects and Blogs require
// both the display flag and at least one content item.
func VisibleTabs(d Document) []TabID {
	visible := map[TabID]bool{
		TabAbout:   true,
		TabContact: true,
	}
	if g := d.Tabs.Gallery; g != nil && g.Display && len(g.Items) > 0 {
		visible[TabGallery] = true
	}
	if p := d.Tabs.PastProjects; p != nil && p.Display && len(p.Projects) > 0 {
		visible[TabPastProjects] = true
	}
	if b := d.Tabs.Blogs; b != nil && b.Display && len(b.Posts) > 0 {
		visible[TabBlogs] = true
	}

	out := make([]TabID, 0, len(AllTabs))
	for _, t := range AllTabs {
		if visible[t.ID] {
			out = append(out, t.ID)
		}
	}
	return out
}

// ChatbotEnabled reports whether the owner switched the AI chatbot on.
func ChatbotEnabled(d Document) bool {
	return d.Tabs.AI != nil && d.Tabs.AI.Chatbot.Enabled
}

// ResolveActiveTab keeps the caller's current tab when it is still legal for
// this document, otherwise falls back to the first visible tab.
func ResolveActiveTab(d Document, current TabID) TabID {
	tabs := VisibleTabs(d)
	for _, t := range tabs {
		if t == current {
			return current
		}
	}
	if current == TabAI && ChatbotEnabled(d) {
		return current
	}
	return tabs[0]
}
