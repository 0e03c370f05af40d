// Package annotations builds the descriptive metadata that is attached to test results for
// reporting. Annotations never affect whether or how a test runs.
package annotations

// Type identifies what an annotation describes.
type Type string

const (
	TypeDescription Type = "description"
	TypeSeverity    Type = "severity"
	TypeEpic        Type = "epic"
	TypeFeature     Type = "feature"
	TypeStory       Type = "story"
	TypeIssue       Type = "issue"
	TypeTestCase    Type = "testCase"
	TypeLink        Type = "link"
	TypeTag         Type = "tag"
	TypeOwner       Type = "owner"
	TypeLead        Type = "lead"
)

// Severity levels used by the suite.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
	SeverityTrivial  = "trivial"
)

// Annotation is a single key/value tag. Name is only used by links.
type Annotation struct {
	Type  Type   `json:"type"`
	Value string `json:"value"`
	Name  string `json:"name,omitempty"`
}

// List is an ordered collection of annotations. Duplicates are allowed; a test can carry
// several tags or features.
type List []Annotation

// Values returns every value recorded for the given type, in order.
func (l List) Values(t Type) []string {
	var ret []string
	for _, a := range l {
		if a.Type == t {
			ret = append(ret, a.Value)
		}
	}
	return ret
}

// Has reports whether the list contains an annotation with the given type and value.
func (l List) Has(t Type, value string) bool {
	for _, a := range l {
		if a.Type == t && a.Value == value {
			return true
		}
	}
	return false
}

func Description(description string) Annotation {
	return Annotation{Type: TypeDescription, Value: description}
}

func Severity(severity string) Annotation {
	return Annotation{Type: TypeSeverity, Value: severity}
}

func Epic(epic string) Annotation {
	return Annotation{Type: TypeEpic, Value: epic}
}

func Feature(feature string) Annotation {
	return Annotation{Type: TypeFeature, Value: feature}
}

func Story(story string) Annotation {
	return Annotation{Type: TypeStory, Value: story}
}

func Issue(issue string) Annotation {
	return Annotation{Type: TypeIssue, Value: issue}
}

func TestCase(testCase string) Annotation {
	return Annotation{Type: TypeTestCase, Value: testCase}
}

func Link(name, url string) Annotation {
	return Annotation{Type: TypeLink, Value: url, Name: name}
}

func Tag(tag string) Annotation {
	return Annotation{Type: TypeTag, Value: tag}
}

func Owner(owner string) Annotation {
	return Annotation{Type: TypeOwner, Value: owner}
}

func Lead(lead string) Annotation {
	return Annotation{Type: TypeLead, Value: lead}
}

// CommonAPI is the set shared by every API test.
func CommonAPI() List {
	return List{
		Epic("BookStore API"),
		Feature("API Testing"),
		Tag("api"),
		Tag("automation"),
	}
}

func HealthCheck() List {
	return append(CommonAPI(),
		Feature("Health Monitoring"),
		Severity(SeverityCritical),
		Tag("health"),
		Tag("monitoring"),
	)
}

func CRUD() List {
	return append(CommonAPI(),
		Feature("CRUD Operations"),
		Tag("crud"),
		Tag("data-management"),
	)
}

func Auth() List {
	return append(CommonAPI(),
		Feature("Authentication"),
		Severity(SeverityHigh),
		Tag("auth"),
		Tag("security"),
	)
}
