package document

import "encoding/json"

// Document is the portfolio content blob stored per owner. It is persisted
// as a single JSON column and decoded through Decode so that legacy shapes
// never leak past this package.
type Document struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PositionTitle string `json:"positionTitle"`
	Tabs          Tabs   `json:"tabs"`
}

type Tabs struct {
	About        AboutSection     `json:"about"`
	Gallery      *GallerySection  `json:"gallery,omitempty"`
	PastProjects *ProjectsSection `json:"pastProjects,omitempty"`
	Blogs        *BlogsSection    `json:"blogs,omitempty"`
	AI           *AISection       `json:"ai,omitempty"`
	Contact      ContactSection   `json:"contact"`
}

type AboutSection struct {
	AboutParagraph string       `json:"aboutParagraph"`
	Skills         []string     `json:"skills"`
	Links          []SocialLink `json:"links"`
}

type SocialLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type GalleryItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageLink   string `json:"imageLink"`
}

type GallerySection struct {
	Display bool          `json:"display"`
	Items   []GalleryItem `json:"items"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Link        string `json:"link,omitempty"`
}

type ProjectsSection struct {
	Display  bool      `json:"display"`
	Projects []Project `json:"projects"`
}

type BlogPost struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type BlogsSection struct {
	Display bool       `json:"display"`
	Posts   []BlogPost `json:"posts"`
}

type Chatbot struct {
	Enabled      bool   `json:"enabled"`
	Instructions string `json:"instructions"`
}

type AISection struct {
	Chatbot Chatbot `json:"chatbot"`
}

type ContactLink struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ContactForm struct {
	Enabled bool `json:"enabled"`
}

type ContactSection struct {
	Links       []ContactLink `json:"links"`
	ContactForm ContactForm   `json:"contactForm"`
}

// Early documents stored gallery/pastProjects/blogs as a bare list with no
// display wrapper. Each section decodes both shapes here, once, so nothing
// downstream ever branches on shape. A missing "display" key defaults to
// shown; an explicit false is preserved.

func (s *GallerySection) UnmarshalJSON(b []byte) error {
	var items []GalleryItem
	if err := json.Unmarshal(b, &items); err == nil {
		*s = GallerySection{Display: true, Items: items}
		return nil
	}
	var raw struct {
		Display *bool         `json:"display"`
		Items   []GalleryItem `json:"items"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	s.Display = raw.Display == nil || *raw.Display
	s.Items = raw.Items
	return nil
}

func (s *ProjectsSection) UnmarshalJSON(b []byte) error {
	var projects []Project
	if err := json.Unmarshal(b, &projects); err == nil {
		*s = ProjectsSection{Display: true, Projects: projects}
		return nil
	}
	var raw struct {
		Display  *bool     `json:"display"`
		Projects []Project `json:"projects"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	s.Display = raw.Display == nil || *raw.Display
	s.Projects = raw.Projects
	return nil
}

func (s *BlogsSection) UnmarshalJSON(b []byte) error {
	var posts []BlogPost
	if err := json.Unmarshal(b, &posts); err == nil {
		*s = BlogsSection{Display: true, Posts: posts}
		return nil
	}
	var raw struct {
		Display *bool      `json:"display"`
		Posts   []BlogPost `json:"posts"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	s.Display = raw.Display == nil || *raw.Display
	s.Posts = raw.Posts
	return nil
}

// Decode is the single read path for stored portfolio data: it tolerates
// legacy section shapes and returns a normalized document.
func Decode(b []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return Document{}, err
	}
	return Normalize(d), nil
}
