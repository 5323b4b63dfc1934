package session

// Profile holds the accumulated candidate answers. Each field is written
// exactly once by the stage machine as the corresponding stage completes and
// is never removed afterwards.
type Profile struct {
	FullName   string
	Email      string
	Phone      string
	Experience string
	Position   string
	Location   string
	TechStack  string
}

// Field is a single named profile entry used for ordered display and export.
type Field struct {
	Name  string
	Value string
}

// Fields returns the collected entries in collection order, skipping fields
// whose stage has not completed yet.
func (p Profile) Fields() []Field {
	all := []Field{
		{"Full Name", p.FullName},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"Experience", p.Experience},
		{"Position", p.Position},
		{"Location", p.Location},
		{"Tech Stack", p.TechStack},
	}

	fields := make([]Field, 0, len(all))
	for _, f := range all {
		if f.Value == "" {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}
