package content

import "encoding/json"

type Author struct {
	Name    string `yaml:"name" json:"name"`
	Email   string `yaml:"email,omitempty" json:"email,omitempty"`
	Bio     string `yaml:"bio,omitempty" json:"bio,omitempty"`
	Avatar  string `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	Twitter string `yaml:"twitter,omitempty" json:"twitter,omitempty"`
	GitHub  string `yaml:"github,omitempty" json:"github,omitempty"`
	URL     string `yaml:"url,omitempty" json:"url,omitempty"`
	ID      string `yaml:"id,omitempty" json:"id,omitempty"`
}

// AuthorRef is either a bare name or a detailed roster entry.
type AuthorRef struct {
	name   string
	detail *Author
}

func NameRef(name string) AuthorRef {
	return AuthorRef{name: name}
}

func DetailedRef(a Author) AuthorRef {
	return AuthorRef{name: a.Name, detail: &a}
}

func (r AuthorRef) Name() string {
	return r.name
}

func (r AuthorRef) IsDetailed() bool {
	return r.detail != nil
}

// Detail returns a copy of the roster entry when the ref is detailed.
func (r AuthorRef) Detail() (Author, bool) {
	if r.detail == nil {
		return Author{}, false
	}
	return *r.detail, true
}

func (r AuthorRef) MarshalJSON() ([]byte, error) {
	if r.detail != nil {
		return json.Marshal(r.detail)
	}
	return json.Marshal(r.name)
}

func (r *AuthorRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*r = NameRef(name)
		return nil
	}
	var a Author
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = DetailedRef(a)
	return nil
}
