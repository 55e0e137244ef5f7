package document

// Normalize fills the gaps older documents have: absent sections are created
// with display on and empty content, nil lists become empty lists, and a
// missing AI section becomes a disabled chatbot. It never fails, never
// touches fields that are already set, and is idempotent.
func Normalize(d Document) Document {
	if d.Tabs.Gallery == nil {
		d.Tabs.Gallery = &GallerySection{Display: true}
	}
	if d.Tabs.Gallery.Items == nil {
		g := *d.Tabs.Gallery
		g.Items = []GalleryItem{}
		d.Tabs.Gallery = &g
	}

	if d.Tabs.PastProjects == nil {
		d.Tabs.PastProjects = &ProjectsSection{Display: true}
	}
	if d.Tabs.PastProjects.Projects == nil {
		p := *d.Tabs.PastProjects
		p.Projects = []Project{}
		d.Tabs.PastProjects = &p
	}

	if d.Tabs.Blogs == nil {
		d.Tabs.Blogs = &BlogsSection{Display: true}
	}
	if d.Tabs.Blogs.Posts == nil {
		b := *d.Tabs.Blogs
		b.Posts = []BlogPost{}
		d.Tabs.Blogs = &b
	}

	// Chatbot is opt-in: a document that predates the AI section gets a
	// disabled chatbot with empty instructions. Enabled is left alone when
	// the section exists.
	if d.Tabs.AI == nil {
		d.Tabs.AI = &AISection{}
	}

	return d
}
