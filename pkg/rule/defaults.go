package rule

// Categories of the default rule table.
const (
	CategoryAuditFinance       = "Audit/Finance"
	CategoryDigitalSoftware    = "Digital/Software"
	CategoryEngineering        = "Engineering/Manufacturing"
	CategoryBusinessManagement = "Business/Project Management"
)

// DefaultRules returns the built-in rules in declaration order.
func DefaultRules() []*Rule {
	return []*Rule{
		MustNew(CategoryAuditFinance,
			[]string{
				"accountancy", "accounting", "accountant", "audit", "finance",
				"bookkeeper", "claims", "underwriting", "payroll", "tax", "actuarial",
			},
			[]string{"Numerical Literacy", "Professional Integrity", "Stakeholder Management"},
		),
		MustNew(CategoryDigitalSoftware,
			[]string{
				"digital", "software", "technology", "developer", "data",
				"ai", "cyber", "it", "computing", "network", "cloud",
			},
			[]string{"Logical Reasoning", "Computational Thinking", "Agile Mindset"},
		),
		MustNew(CategoryEngineering,
			[]string{
				"engineer", "engineering", "manufacturing", "surveyor", "technician",
				"construction", "electrician", "mechanic", "civil",
			},
			[]string{"Manual Dexterity", "Health & Safety Awareness", "Systems Thinking"},
		),
		MustNew(CategoryBusinessManagement,
			[]string{
				"management", "manager", "project", "business", "sales",
				"executive", "admin", "operations", "hr", "human resources", "marketing",
			},
			[]string{"Time Management", "Conflict Resolution", "Commercial Awareness"},
		),
	}
}

// DefaultPriority returns the built-in evaluation order. Digital/Software is
// checked first, so "Software Engineer" is a digital role.
func DefaultPriority() []string {
	return []string{
		CategoryDigitalSoftware,
		CategoryEngineering,
		CategoryAuditFinance,
		CategoryBusinessManagement,
	}
}

// Default returns the built-in rule table.
func Default() *Table {
	return MustNewTable(DefaultRules(), DefaultPriority())
}
