package refdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Theijiii/plms-sys-sub005/internal/domain"
	"github.com/Theijiii/plms-sys-sub005/internal/verify"
)

func TestLoadMonths_Embedded(t *testing.T) {
	months, err := LoadMonths("")
	require.NoError(t, err)
	require.Len(t, months, 12)

	table := verify.NewMonthTable(months)

	// Every canonical English name and its Filipino equivalent resolve.
	english := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	for i, name := range english {
		month, ok := table.Resolve(name)
		require.True(t, ok, "English month %q did not resolve", name)
		assert.Equal(t, time.Month(i+1), month)
	}

	filipino := map[string]time.Month{
		"Enero":     time.January,
		"Pebrero":   time.February,
		"Marso":     time.March,
		"Abril":     time.April,
		"Mayo":      time.May,
		"Hunyo":     time.June,
		"Hulyo":     time.July,
		"Agosto":    time.August,
		"Setyembre": time.September,
		"Oktubre":   time.October,
		"Nobyembre": time.November,
		"Disyembre": time.December,
	}
	for name, want := range filipino {
		month, ok := table.Resolve(name)
		require.True(t, ok, "Filipino month %q did not resolve", name)
		assert.Equal(t, want, month)
	}
}

func TestLoadCategories_Embedded(t *testing.T) {
	categories, err := LoadCategories("")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(categories), 25)

	labels := make(map[string]bool)
	for _, c := range categories {
		require.NotEmpty(t, c.Label)
		require.NotEmpty(t, c.Keywords, "category %q has no keywords", c.Label)
		assert.False(t, labels[c.Label], "duplicate label %q", c.Label)
		labels[c.Label] = true
	}

	for _, expected := range []string{
		"Driver's License (LTO)",
		"Passport (DFA)",
		"National ID (PhilSys)",
		"UMID",
		"NBI Clearance",
	} {
		assert.True(t, labels[expected], "missing category %q", expected)
	}
}

func TestLoadCategories_MissingFile(t *testing.T) {
	_, err := LoadCategories("/nonexistent/categories.json")
	assert.Error(t, err)
}

func TestCategoriesFromRecords(t *testing.T) {
	records := []domain.DocumentCategory{
		{Label: "Passport (DFA)", KeywordsRaw: "passport, department of foreign affairs , pasaporte"},
		{Label: "UMID", Keywords: []string{"umid", "crn"}},
		{Label: "Oddball", KeywordsRaw: " , ,"},
	}

	got := CategoriesFromRecords(records)
	require.Len(t, got, 3)

	assert.Equal(t, "Passport (DFA)", got[0].Label)
	assert.Equal(t, []string{"passport", "department of foreign affairs", "pasaporte"}, got[0].Keywords)

	// Pre-split keywords pass through untouched.
	assert.Equal(t, []string{"umid", "crn"}, got[1].Keywords)

	// Blank fragments are dropped entirely.
	assert.Empty(t, got[2].Keywords)
}

func TestEmbeddedTablesDriveTheEngine(t *testing.T) {
	months, err := LoadMonths("")
	require.NoError(t, err)
	categories, err := LoadCategories("")
	require.NoError(t, err)

	engine := verify.NewEngine(
		verify.NewMonthTable(months),
		verify.NewCategoryTable(categories),
		verify.EngineConfig{Now: func() time.Time { return time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC) }},
	)

	report, err := engine.Verify(verify.DeclaredIdentity{
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		IDNumber:  "A12-34-567890",
		IDType:    "Driver's License (LTO)",
	}, `LAND TRANSPORTATION OFFICE DRIVER'S LICENSE
DELA CRUZ, JUAN
License No. A12-34-567890
Expiration Date 14 Hunyo 2030`)
	require.NoError(t, err)

	assert.Equal(t, "Driver's License (LTO)", report.IDType.DetectedType)
	require.True(t, report.Expiration.Found)
	assert.Equal(t, time.June, report.Expiration.Date.Month())
	assert.True(t, report.Valid())
}
