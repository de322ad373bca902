package variant

import (
	"github.com/okian/careerlens/internal/domain/stats"
	"github.com/okian/careerlens/internal/domain/timeline"
)

func educationLevels() timeline.Vocabulary {
	return timeline.Vocabulary{
		{Name: "Primary School", Aliases: []string{"elementary"}},
		{Name: "Secondary School", Aliases: []string{"middle school", "o-level", "gcse"}},
		{Name: "High School", Aliases: []string{"a-level", "baccalaureate", "matric"}},
		{Name: "Certificate"},
		{Name: "Diploma"},
		{Name: "Associate"},
		{Name: "Bachelor", Aliases: []string{"bsc", "b.sc", "b.a.", "beng", "b.eng", "bba", "undergraduate"}},
		{Name: "Master", Aliases: []string{"msc", "m.sc", "mba", "meng", "m.eng", "postgraduate"}},
		{Name: "PhD", Aliases: []string{"ph.d", "doctorate", "doctor of"}},
		{Name: "Post-Doc", Aliases: []string{"postdoc", "post-doctoral", "postdoctoral"}},
	}
}

func seniorityLevels() timeline.Vocabulary {
	return timeline.Vocabulary{
		{Name: "Intern", Aliases: []string{"trainee", "apprentice"}},
		{Name: "Junior", Aliases: []string{"entry level", "graduate", "assistant"}},
		{Name: "Mid-Level", Aliases: []string{"engineer", "developer", "analyst", "specialist", "consultant", "officer"}},
		{Name: "Senior", Aliases: []string{"sr."}},
		{Name: "Lead", Aliases: []string{"supervisor", "staff"}},
		{Name: "Principal", Aliases: []string{"architect"}},
		{Name: "Manager", Aliases: []string{"head of"}},
		{Name: "Director"},
		{Name: "VP", Aliases: []string{"vice president"}},
		{Name: "Chief", Aliases: []string{"ceo", "cto", "cfo", "coo", "founder"}},
	}
}

func studyFields() []stats.Category {
	return []stats.Category{
		{Name: "Engineering & Technology", Keywords: []string{"engineering", "computer", "software", "information technology", "electronics"}},
		{Name: "Natural Sciences", Keywords: []string{"physics", "chemistry", "biology", "mathematics", "maths", "statistics"}},
		{Name: "Business", Keywords: []string{"business", "management", "finance", "accounting", "economics", "marketing", "mba"}},
		{Name: "Health", Keywords: []string{"medicine", "nursing", "pharmacy", "health"}},
		{Name: "Law", Keywords: []string{"law", "legal"}},
		{Name: "Arts & Humanities", Keywords: []string{"history", "literature", "philosophy", "arts", "languages", "design"}},
	}
}

func industries() []stats.Category {
	return []stats.Category{
		{Name: "Technology", Keywords: []string{"software", "tech", "developer", "engineer", "data", "cloud", "systems"}},
		{Name: "Finance", Keywords: []string{"bank", "finance", "capital", "insurance", "accounting"}},
		{Name: "Healthcare", Keywords: []string{"hospital", "health", "clinic", "pharma", "medical"}},
		{Name: "Education", Keywords: []string{"school", "university", "college", "academy", "teacher"}},
		{Name: "Retail", Keywords: []string{"retail", "store", "shop", "e-commerce"}},
		{Name: "Manufacturing", Keywords: []string{"manufactur", "factory", "industrial", "production"}},
		{Name: "Consulting", Keywords: []string{"consult", "advisory"}},
	}
}
