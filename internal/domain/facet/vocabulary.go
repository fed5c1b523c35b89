package facet

// Vocabulary is the set of allowed values per facet category (immutable
// value object). Values keep their declaration order so facet listings are
// stable across calls.
type Vocabulary struct {
	values map[Category][]string
	index  map[Category]map[string]bool
}

// NewVocabulary creates a Vocabulary from per-category value lists.
// Unknown categories in the input are ignored. Empty categories fall back
// to the defaults so a partial override stays usable.
func NewVocabulary(values map[Category][]string) Vocabulary {
	defaults := defaultValues()
	merged := make(map[Category][]string, len(defaults))
	for _, cat := range Categories() {
		if vs := values[cat]; len(vs) > 0 {
			merged[cat] = append([]string(nil), vs...)
			continue
		}
		merged[cat] = defaults[cat]
	}
	index := make(map[Category]map[string]bool, len(merged))
	for cat, vs := range merged {
		set := make(map[string]bool, len(vs))
		for _, v := range vs {
			set[v] = true
		}
		index[cat] = set
	}
	return Vocabulary{values: merged, index: index}
}

// DefaultVocabulary returns the built-in catalog vocabulary.
func DefaultVocabulary() Vocabulary {
	return NewVocabulary(nil)
}

// Contains reports whether value is an allowed member of the category.
func (v Vocabulary) Contains(cat Category, value string) bool {
	return v.index[cat][value]
}

// Values returns the allowed values of a category in declaration order.
func (v Vocabulary) Values(cat Category) []string {
	return v.values[cat]
}

func defaultValues() map[Category][]string {
	return map[Category][]string{
		Department: {
			"Executive Committee",
			"Admin & Resources Department",
			"Missions Department",
			"Worship Department",
			"Education Department",
			"Youth Department",
		},
		Ministry: {
			"Children's Ministry",
			"Music Ministry",
			"Fellowship Ministry",
			"Care Ministry",
		},
		DocType: {
			"Meeting Minutes",
			"Budget Report",
			"Annual Report",
			"Proposal",
			"Policy Document",
			"Correspondence",
		},
		Status: {
			"Draft",
			"Under Review",
			"Approved",
			"Archived",
		},
	}
}
