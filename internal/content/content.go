// Package content holds the portfolio text: biography, skills, projects,
// timeline and contact details. The defaults are embedded; a YAML file can
// override any part of them.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/san-kum/portfolio/internal/contact"
	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

var ErrInvalidProfile = errors.New("content: invalid profile")

type Profile struct {
	Name        string      `yaml:"name"`
	Tagline     string      `yaml:"tagline"`
	Location    string      `yaml:"location"`
	Available   bool        `yaml:"available"`
	About       About       `yaml:"about"`
	Skills      []Skill     `yaml:"skills"`
	Projects    []Project   `yaml:"projects"`
	CaseStudies []CaseStudy `yaml:"case_studies"`
	Timeline    []Milestone `yaml:"timeline"`
	Contact     ContactInfo `yaml:"contact"`
}

type About struct {
	Intro       string `yaml:"intro"`
	Description string `yaml:"description"`
	Approach    string `yaml:"approach"`
	Stats       []Stat `yaml:"stats"`
}

type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Skill struct {
	Category     string       `yaml:"category"`
	Icon         string       `yaml:"icon"`
	Technologies []string     `yaml:"technologies"`
	Description  string       `yaml:"description"`
	Proficiency  int          `yaml:"proficiency"`
	Highlights   []Highlight  `yaml:"highlights,omitempty"`
	Achievement  *Achievement `yaml:"achievement,omitempty"`
}

type Highlight struct {
	Text string `yaml:"text"`
	Link string `yaml:"link"`
}

type Achievement struct {
	Title       string `yaml:"title"`
	Rank        string `yaml:"rank"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type Project struct {
	Title        string            `yaml:"title"`
	Category     string            `yaml:"category"`
	Description  string            `yaml:"description"`
	Technologies []string          `yaml:"technologies"`
	Link         string            `yaml:"link"`
	Github       string            `yaml:"github"`
	Featured     bool              `yaml:"featured"`
	Stats        map[string]string `yaml:"stats"`
}

// StatKeys returns the project's stat names in a stable order.
func (p Project) StatKeys() []string {
	keys := make([]string, 0, len(p.Stats))
	for k := range p.Stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type CaseStudy struct {
	Title        string   `yaml:"title"`
	Client       string   `yaml:"client"`
	Role         string   `yaml:"role"`
	Duration     string   `yaml:"duration"`
	Overview     string   `yaml:"overview"`
	Results      []Result `yaml:"results"`
	Technologies []string `yaml:"technologies"`
}

type Result struct {
	Metric      string `yaml:"metric"`
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
}

type Milestone struct {
	Year        string `yaml:"year"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
}

type ContactInfo struct {
	Email        string            `yaml:"email"`
	Location     string            `yaml:"location"`
	Availability string            `yaml:"availability"`
	Social       map[string]string `yaml:"social"`
}

// SocialNames returns the social network names in a stable order.
func (c ContactInfo) SocialNames() []string {
	names := make([]string, 0, len(c.Social))
	for k := range c.Social {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Default returns a fresh copy of the embedded profile.
func Default() *Profile {
	p := &Profile{}
	if err := yaml.Unmarshal(defaultProfile, p); err != nil {
		panic(fmt.Sprintf("content: embedded profile: %v", err))
	}
	return p
}

// Load decodes path over the embedded defaults. Mappings merge key by key,
// so a file setting only contact.email keeps the default location and
// social links; lists present in the file replace the default lists.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	if !contact.ValidEmail(p.Contact.Email) {
		return fmt.Errorf("%w: contact email %q", ErrInvalidProfile, p.Contact.Email)
	}
	for _, s := range p.Skills {
		if s.Proficiency < 0 || s.Proficiency > 100 {
			return fmt.Errorf("%w: proficiency %d for %q outside [0,100]", ErrInvalidProfile, s.Proficiency, s.Category)
		}
	}
	return nil
}

func (p *Profile) FeaturedProjects() []Project {
	out := make([]Project, 0, len(p.Projects))
	for _, pr := range p.Projects {
		if pr.Featured {
			out = append(out, pr)
		}
	}
	return out
}
