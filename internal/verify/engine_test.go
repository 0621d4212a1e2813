package verify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Theijiii/plms-sys-sub005/internal/domain"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(testMonthTable(t), testCategoryTable(t), EngineConfig{
		Now: func() time.Time { return evalNow },
	})
}

const licenseText = `REPUBLIC OF THE PHILIPPINES
DEPARTMENT OF TRANSPORTATION
LAND TRANSPORTATION OFFICE
DRIVER'S LICENSE
Last Name, First Name, Middle Name
DELA CRUZ, JUAN, SANTOS
Nationality PHL Date of Birth 14/06/1990
License No. A12-34-567890
Expiration Date 2030/06/14
Restrictions: 1,2`

func validDeclared() DeclaredIdentity {
	birthdate := time.Date(1990, time.June, 14, 0, 0, 0, 0, time.UTC)
	return DeclaredIdentity{
		FirstName:  "Juan",
		LastName:   "Dela Cruz",
		MiddleName: "Santos",
		IDNumber:   "A12-34-567890",
		Birthdate:  &birthdate,
		IDType:     "Driver's License (LTO)",
	}
}

func TestEngine_Verify_AllFieldsMatch(t *testing.T) {
	e := testEngine(t)

	report, err := e.Verify(validDeclared(), licenseText)
	require.NoError(t, err)

	assert.True(t, report.FirstName.Matched)
	assert.True(t, report.LastName.Matched)
	require.NotNil(t, report.MiddleName)
	assert.True(t, report.MiddleName.Matched)
	assert.True(t, report.IDNumber.Matched)
	assert.Equal(t, 1.0, report.IDNumber.Confidence)
	require.NotNil(t, report.Birthdate)
	assert.True(t, report.Birthdate.Matched)
	assert.Equal(t, "Driver's License (LTO)", report.IDType.DetectedType)
	assert.True(t, report.IDType.Matched)
	assert.True(t, report.Expiration.Found)
	assert.False(t, report.Expiration.IsExpired)

	assert.True(t, report.Valid())
	assert.Empty(t, report.Reasons())
}

func TestEngine_Verify_Preconditions(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		name   string
		mutate func(*DeclaredIdentity)
		text   string
		field  string
	}{
		{"missing first name", func(d *DeclaredIdentity) { d.FirstName = " " }, licenseText, "firstName"},
		{"missing last name", func(d *DeclaredIdentity) { d.LastName = "" }, licenseText, "lastName"},
		{"missing id number", func(d *DeclaredIdentity) { d.IDNumber = "" }, licenseText, "idNumber"},
		{"missing id type", func(d *DeclaredIdentity) { d.IDType = "" }, licenseText, "idType"},
		{"missing text", func(d *DeclaredIdentity) {}, "  \n ", "recognizedText"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			declared := validDeclared()
			tt.mutate(&declared)

			report, err := e.Verify(declared, tt.text)
			assert.Nil(t, report)
			require.Error(t, err)
			assert.True(t, domain.IsPrecondition(err))

			var pre *domain.PreconditionError
			require.True(t, errors.As(err, &pre))
			assert.Equal(t, tt.field, pre.Field)
		})
	}
}

func TestEngine_Verify_OptionalFieldsOmitted(t *testing.T) {
	e := testEngine(t)

	declared := validDeclared()
	declared.MiddleName = ""
	declared.Birthdate = nil

	report, err := e.Verify(declared, licenseText)
	require.NoError(t, err)

	assert.Nil(t, report.MiddleName)
	assert.Nil(t, report.Birthdate)
	assert.True(t, report.Valid())
}

func TestEngine_Verify_MiddleInitial(t *testing.T) {
	e := testEngine(t)

	declared := validDeclared()
	declared.MiddleName = "Zacarias"
	text := `LAND TRANSPORTATION OFFICE DRIVER'S LICENSE
DELA CRUZ, JUAN Z.
License No. A12-34-567890
Date of Birth 14/06/1990`

	report, err := e.Verify(declared, text)
	require.NoError(t, err)
	require.NotNil(t, report.MiddleName)
	assert.True(t, report.MiddleName.Matched)
}

func TestEngine_Verify_NameMismatch(t *testing.T) {
	e := testEngine(t)

	declared := validDeclared()
	declared.FirstName = "Wxqz"

	report, err := e.Verify(declared, licenseText)
	require.NoError(t, err)

	assert.False(t, report.FirstName.Matched)
	assert.False(t, report.Valid())
	reasons := report.Reasons()
	require.NotEmpty(t, reasons)
	assert.Contains(t, reasons[0], `first name "Wxqz"`)
}

func TestEngine_Verify_IDNumberIgnoresFormatting(t *testing.T) {
	e := testEngine(t)

	declared := validDeclared()
	declared.IDNumber = "A1234567890" // no dashes

	report, err := e.Verify(declared, licenseText)
	require.NoError(t, err)
	assert.True(t, report.IDNumber.Matched)
	assert.Equal(t, 1.0, report.IDNumber.Confidence)
}

func TestEngine_Verify_IDNumberMismatch(t *testing.T) {
	e := testEngine(t)

	declared := validDeclared()
	declared.IDNumber = "Z99-99-999999"

	report, err := e.Verify(declared, licenseText)
	require.NoError(t, err)
	assert.False(t, report.IDNumber.Matched)
	assert.False(t, report.Valid())
}

func TestEngine_Verify_ExpiredDocument(t *testing.T) {
	e := testEngine(t)

	text := `LAND TRANSPORTATION OFFICE DRIVER'S LICENSE
DELA CRUZ, JUAN, SANTOS
License No. A12-34-567890
Date of Birth 14/06/1990
Expiration Date 2020/06/14`

	report, err := e.Verify(validDeclared(), text)
	require.NoError(t, err)

	assert.True(t, report.Expiration.IsExpired)
	assert.False(t, report.Valid())

	// Expiration leads the reasons regardless of other findings.
	reasons := report.Reasons()
	require.NotEmpty(t, reasons)
	assert.Contains(t, reasons[0], "expired on June 14, 2020")
}

func TestEngine_Verify_TypeMismatch(t *testing.T) {
	e := testEngine(t)

	declared := validDeclared()
	declared.IDType = "Passport (DFA)"

	report, err := e.Verify(declared, licenseText)
	require.NoError(t, err)

	assert.False(t, report.IDType.Matched)
	assert.Equal(t, "Driver's License (LTO)", report.IDType.DetectedType)
	assert.Equal(t, "Passport (DFA)", report.IDType.SelectedType)
	assert.False(t, report.Valid())
}

func TestEngine_Verify_UnclassifiableText(t *testing.T) {
	e := testEngine(t)

	declared := validDeclared()
	text := "JUAN SANTOS DELA CRUZ A12-34-567890 14/06/1990"

	report, err := e.Verify(declared, text)
	require.NoError(t, err)

	assert.Equal(t, "Unknown", report.IDType.DetectedType)
	assert.False(t, report.IDType.Matched)
	assert.Zero(t, report.IDType.Confidence)
}

func TestEngine_Verify_NoExpirationSignal(t *testing.T) {
	e := testEngine(t)

	text := `LAND TRANSPORTATION OFFICE DRIVER'S LICENSE
DELA CRUZ, JUAN, SANTOS
License No. A12-34-567890
Date of Birth 14/06/1990`

	report, err := e.Verify(validDeclared(), text)
	require.NoError(t, err)

	// Absence of an expiration date is not a failure.
	assert.False(t, report.Expiration.Found)
	assert.False(t, report.Expiration.IsExpired)
	assert.True(t, report.Valid())
}

func TestEngine_Verify_ReasonOrdering(t *testing.T) {
	e := testEngine(t)

	declared := validDeclared()
	declared.FirstName = "Wxqz"
	declared.LastName = "Qportm"
	declared.IDNumber = "Z99-99-999999"
	declared.IDType = "Passport (DFA)"
	declared.Birthdate = nil
	text := `LAND TRANSPORTATION OFFICE DRIVER'S LICENSE
SOMEBODY, ELSE
License No. B00-00-000000
Expiration Date 2020/01/01`

	report, err := e.Verify(declared, text)
	require.NoError(t, err)
	require.False(t, report.Valid())

	reasons := report.Reasons()
	require.Len(t, reasons, 5)
	assert.Contains(t, reasons[0], "expired")
	assert.Contains(t, reasons[1], "document type mismatch")
	assert.Contains(t, reasons[2], "first name")
	assert.Contains(t, reasons[3], "last name")
	assert.Contains(t, reasons[4], "ID number")
}

func TestEngine_Verify_ThresholdOverrides(t *testing.T) {
	// A permissive name threshold accepts overlap the default rejects.
	strict := NewEngine(testMonthTable(t), testCategoryTable(t), EngineConfig{
		NameThreshold: 0.9,
		Now:           func() time.Time { return evalNow },
	})
	loose := NewEngine(testMonthTable(t), testCategoryTable(t), EngineConfig{
		NameThreshold: 0.1,
		Now:           func() time.Time { return evalNow },
	})

	declared := DeclaredIdentity{
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		IDNumber:  "A12-34-567890",
		IDType:    "Driver's License (LTO)",
	}
	// Half the declared characters appear in the garbled text: presence
	// ratio 0.5, no containment either way.
	text := "JUXY"

	strictReport, err := strict.Verify(declared, text)
	require.NoError(t, err)
	looseReport, err := loose.Verify(declared, text)
	require.NoError(t, err)

	assert.False(t, strictReport.FirstName.Matched)
	assert.True(t, looseReport.FirstName.Matched)
	assert.InDelta(t, 0.5, looseReport.FirstName.Confidence, 1e-9)
}
