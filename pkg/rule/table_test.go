package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutsearch/roleattrs/pkg/rule"
)

var (
	digitalAttributes     = []string{"Logical Reasoning", "Computational Thinking", "Agile Mindset"}
	engineeringAttributes = []string{"Manual Dexterity", "Health & Safety Awareness", "Systems Thinking"}
	financeAttributes     = []string{"Numerical Literacy", "Professional Integrity", "Stakeholder Management"}
	businessAttributes    = []string{"Time Management", "Conflict Resolution", "Commercial Awareness"}
)

func TestDefault_Infer(t *testing.T) {
	t.Parallel()

	table := rule.Default()

	tcs := map[string]struct {
		title        string
		organization string
		want         rule.Result
	}{
		"digital wins over engineering": {
			title:        "Software Engineer",
			organization: "Acme Corp",
			want: rule.Result{
				Category:   rule.CategoryDigitalSoftware,
				Keyword:    "software",
				Attributes: digitalAttributes,
			},
		},
		"engineering wins over finance": {
			title:        "Civil Engineer",
			organization: "Finance Partners",
			want: rule.Result{
				Category:   rule.CategoryEngineering,
				Keyword:    "engineer",
				Attributes: engineeringAttributes,
			},
		},
		"finance wins over business": {
			title:        "Payroll Manager",
			organization: "Acme Corp",
			want: rule.Result{
				Category:   rule.CategoryAuditFinance,
				Keyword:    "payroll",
				Attributes: financeAttributes,
			},
		},
		"business": {
			title:        "Project Manager",
			organization: "Acme Corp",
			want: rule.Result{
				Category:   rule.CategoryBusinessManagement,
				Keyword:    "manager",
				Attributes: businessAttributes,
			},
		},
		"tax matches as a whole word": {
			title:        "Tax Accountant",
			organization: "Acme Corp",
			want: rule.Result{
				Category:   rule.CategoryAuditFinance,
				Keyword:    "accountant",
				Attributes: financeAttributes,
			},
		},
		"tax alone": {
			title:        "Tax Apprentice",
			organization: "Smith & Co",
			want: rule.Result{
				Category:   rule.CategoryAuditFinance,
				Keyword:    "tax",
				Attributes: financeAttributes,
			},
		},
		"tax inside a larger word": {
			title:        "Apprentice",
			organization: "Itax Solutions",
			want:         rule.Result{},
		},
		"no match": {
			title:        "Gardener",
			organization: "Green Spaces Ltd",
			want:         rule.Result{},
		},
		"case insensitive": {
			title:        "IT SUPPORT",
			organization: "",
			want: rule.Result{
				Category:   rule.CategoryDigitalSoftware,
				Keyword:    "it",
				Attributes: digitalAttributes,
			},
		},
		"organization only": {
			title:        "",
			organization: "Cyber Defence Ltd",
			want: rule.Result{
				Category:   rule.CategoryDigitalSoftware,
				Keyword:    "cyber",
				Attributes: digitalAttributes,
			},
		},
		"declared keyword order within a rule": {
			title:        "Cloud Data Analyst",
			organization: "",
			want: rule.Result{
				Category:   rule.CategoryDigitalSoftware,
				Keyword:    "data",
				Attributes: digitalAttributes,
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := table.Infer(tc.title, tc.organization)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.Category != "", got.Matched())
		})
	}
}

func TestDefault_Order(t *testing.T) {
	t.Parallel()

	table := rule.Default()

	assert.Equal(t, []string{
		rule.CategoryDigitalSoftware,
		rule.CategoryEngineering,
		rule.CategoryAuditFinance,
		rule.CategoryBusinessManagement,
	}, table.Categories())

	declared := make([]string, 0, 4)
	for _, r := range table.Rules() {
		declared = append(declared, r.Category)
	}

	assert.Equal(t, []string{
		rule.CategoryAuditFinance,
		rule.CategoryDigitalSoftware,
		rule.CategoryEngineering,
		rule.CategoryBusinessManagement,
	}, declared)
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	care := rule.MustNew("Care", []string{"care"}, []string{"Empathy"})
	retail := rule.MustNew("Retail", []string{"retail", "care"}, []string{"Customer Focus"})
	admin := rule.MustNew("Admin", []string{"admin"}, []string{"Organisation"})

	tcs := map[string]struct {
		rules     []*rule.Rule
		priority  []string
		wantOrder []string
		errMsg    string
		wantErr   bool
	}{
		"declaration order without priority": {
			rules:     []*rule.Rule{care, retail, admin},
			wantOrder: []string{"Care", "Retail", "Admin"},
		},
		"priority reorders rules": {
			rules:     []*rule.Rule{care, retail, admin},
			priority:  []string{"Admin", "Retail", "Care"},
			wantOrder: []string{"Admin", "Retail", "Care"},
		},
		"unlisted rules follow prioritized rules": {
			rules:     []*rule.Rule{care, retail, admin},
			priority:  []string{"Retail"},
			wantOrder: []string{"Retail", "Care", "Admin"},
		},
		"unknown priority category": {
			rules:    []*rule.Rule{care},
			priority: []string{"Retail"},
			errMsg:   `unknown category "Retail"`,
			wantErr:  true,
		},
		"duplicate priority category": {
			rules:    []*rule.Rule{care, retail},
			priority: []string{"Care", "Care"},
			errMsg:   "more than once",
			wantErr:  true,
		},
		"duplicate rule category": {
			rules:   []*rule.Rule{care, care},
			errMsg:  `duplicate category "Care"`,
			wantErr: true,
		},
		"nil rule": {
			rules:   []*rule.Rule{care, nil},
			errMsg:  "rule 1 is empty",
			wantErr: true,
		},
		"invalid rule": {
			rules:   []*rule.Rule{{Category: "Broken", Attributes: []string{"X"}}},
			errMsg:  "keywords or a match expression are required",
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			table, err := rule.NewTable(tc.rules, tc.priority)
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, table)
				assert.Contains(t, err.Error(), tc.errMsg)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantOrder, table.Categories())
		})
	}
}

func TestTable_PriorityDecidesOverlap(t *testing.T) {
	t.Parallel()

	care := rule.MustNew("Care", []string{"care"}, []string{"Empathy"})
	retail := rule.MustNew("Retail", []string{"retail", "care"}, []string{"Customer Focus"})

	first := rule.MustNewTable([]*rule.Rule{care, retail}, nil)
	got := first.Infer("Customer Care Assistant", "Retail Group")
	assert.Equal(t, "Care", got.Category)
	assert.Equal(t, []string{"Empathy"}, got.Attributes)

	second := rule.MustNewTable([]*rule.Rule{care, retail}, []string{"Retail"})
	got = second.Infer("Customer Care Assistant", "Retail Group")
	assert.Equal(t, "Retail", got.Category)
	assert.Equal(t, "retail", got.Keyword)
	assert.Equal(t, []string{"Customer Focus"}, got.Attributes)
}

func TestTable_Lookup(t *testing.T) {
	t.Parallel()

	table := rule.Default()

	r, ok := table.Lookup(rule.CategoryEngineering)
	require.True(t, ok)
	assert.Equal(t, engineeringAttributes, r.Attributes)

	_, ok = table.Lookup("Hospitality")
	assert.False(t, ok)
}

func TestTable_ResultIsACopy(t *testing.T) {
	t.Parallel()

	table := rule.Default()

	got := table.Infer("Developer", "")
	got.Attributes[0] = "Changed"

	again := table.Infer("Developer", "")
	assert.Equal(t, digitalAttributes, again.Attributes)
}

func TestMustNewTable_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		rule.MustNewTable(rule.DefaultRules(), []string{"Unknown"})
	})
}
