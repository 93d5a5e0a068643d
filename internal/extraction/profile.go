package extraction

import "encoding/json"

// Text emitted in place of a field that could not be extracted.
const (
	NameNotFound       = "Name not found"
	PhoneNotFound      = "Phone not found"
	EmailNotFound      = "Email not found"
	ExperienceNotFound = "Experience not found"
	EducationNotFound  = "Education not found"
	SkillsNotFound     = "Skills not found"
	DegreeNotFound     = "Degree not found"
	FieldNotFound      = "Field not found"
)

// Field is an extracted value that may be absent.
type Field struct {
	Value string
	Found bool
}

// Found wraps a located value.
func Found(v string) Field {
	return Field{Value: v, Found: true}
}

// Missing is the absent Field.
var Missing = Field{}

// Or returns the value, or sentinel when the field was not found.
func (f Field) Or(sentinel string) string {
	if !f.Found {
		return sentinel
	}
	return f.Value
}

// ContactInfo holds the phone and email found in a document.
type ContactInfo struct {
	Phone Field
	Email Field
}

// SkillList is the filtered skills section. Found is false when no section header
// was located; a located section may still filter down to an empty list.
type SkillList struct {
	Items []string
	Found bool
}

// CandidateProfile is the structured result for a single document.
type CandidateProfile struct {
	FullName   Field
	Contact    ContactInfo
	Experience Field
	Education  Field
	Skills     SkillList
}

type contactJSON struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type profileJSON struct {
	FullName            string      `json:"fullName"`
	ContactInfo         contactJSON `json:"contactInfo"`
	Experience          string      `json:"experience"`
	MostRecentEducation string      `json:"mostRecentEducation"`
	Skills              any         `json:"skills"`
}

// MarshalJSON renders absent fields as their human-readable sentinel strings.
func (p CandidateProfile) MarshalJSON() ([]byte, error) {
	out := profileJSON{
		FullName: p.FullName.Or(NameNotFound),
		ContactInfo: contactJSON{
			Phone: p.Contact.Phone.Or(PhoneNotFound),
			Email: p.Contact.Email.Or(EmailNotFound),
		},
		Experience:          p.Experience.Or(ExperienceNotFound),
		MostRecentEducation: p.Education.Or(EducationNotFound),
		Skills:              SkillsNotFound,
	}
	if p.Skills.Found {
		items := p.Skills.Items
		if items == nil {
			items = []string{}
		}
		out.Skills = items
	}
	return json.Marshal(out)
}
