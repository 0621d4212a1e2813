package verify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExpiryEvaluator(t *testing.T) *ExpiryEvaluator {
	t.Helper()
	return NewExpiryEvaluator(NewDateExtractor(testMonthTable(t)))
}

var evalNow = time.Date(2026, time.August, 30, 15, 4, 5, 0, time.UTC)

func TestExpiryEvaluator_NoSignalPhrase(t *testing.T) {
	e := testExpiryEvaluator(t)

	// A date with no expiration wording nearby is not an expiration date.
	got := e.Evaluate("DOB 14/06/1990 issued 01/01/2020", evalNow)
	assert.False(t, got.Found)
	assert.False(t, got.IsExpired)
	assert.Nil(t, got.Date)
}

func TestExpiryEvaluator_SignalWithoutDate(t *testing.T) {
	e := testExpiryEvaluator(t)

	got := e.Evaluate("expiration date: unreadable smudge", evalNow)
	assert.False(t, got.Found)
	assert.False(t, got.IsExpired)
}

func TestExpiryEvaluator_NumericDayFirst(t *testing.T) {
	e := testExpiryEvaluator(t)

	got := e.Evaluate("valid until 15/07/2030", evalNow)
	require.True(t, got.Found)
	assert.False(t, got.IsExpired)
	assert.Equal(t, time.Date(2030, time.July, 15, 0, 0, 0, 0, time.UTC), *got.Date)
}

func TestExpiryEvaluator_NumericMonthFirstFallback(t *testing.T) {
	e := testExpiryEvaluator(t)

	// 12/25 cannot be day/month, so the month/day reading applies.
	got := e.Evaluate("expiry 12/25/2030", evalNow)
	require.True(t, got.Found)
	assert.Equal(t, time.Date(2030, time.December, 25, 0, 0, 0, 0, time.UTC), *got.Date)
}

func TestExpiryEvaluator_NumericYearFirst(t *testing.T) {
	e := testExpiryEvaluator(t)

	got := e.Evaluate("expires 2031-01-31", evalNow)
	require.True(t, got.Found)
	assert.Equal(t, time.Date(2031, time.January, 31, 0, 0, 0, 0, time.UTC), *got.Date)
}

func TestExpiryEvaluator_MonthNameDate(t *testing.T) {
	e := testExpiryEvaluator(t)

	t.Run("month first", func(t *testing.T) {
		got := e.Evaluate("expiration date: January 31, 2031", evalNow)
		require.True(t, got.Found)
		assert.Equal(t, time.Date(2031, time.January, 31, 0, 0, 0, 0, time.UTC), *got.Date)
	})

	t.Run("day first", func(t *testing.T) {
		got := e.Evaluate("valid until 31 January 2031", evalNow)
		require.True(t, got.Found)
		assert.Equal(t, time.Date(2031, time.January, 31, 0, 0, 0, 0, time.UTC), *got.Date)
	})
}

func TestExpiryEvaluator_TwoDigitYear(t *testing.T) {
	e := testExpiryEvaluator(t)

	got := e.Evaluate("exp date 15/07/28", evalNow)
	require.True(t, got.Found)
	assert.Equal(t, 2028, got.Date.Year())
	assert.False(t, got.IsExpired)
}

func TestExpiryEvaluator_Expired(t *testing.T) {
	e := testExpiryEvaluator(t)

	got := e.Evaluate("valid until 01/01/2020", evalNow)
	require.True(t, got.Found)
	assert.True(t, got.IsExpired)
}

func TestExpiryEvaluator_ExpiresTodayIsNotExpired(t *testing.T) {
	e := testExpiryEvaluator(t)

	// The comparison is date-only: a document expiring today still passes.
	got := e.Evaluate("valid until 30/08/2026", evalNow)
	require.True(t, got.Found)
	assert.False(t, got.IsExpired)
}

func TestExpiryEvaluator_ImpossibleDateDiscarded(t *testing.T) {
	e := testExpiryEvaluator(t)

	// 31/02 matches the numeric pattern but is not a real date in either
	// reading; with nothing else parseable the check stays opted out.
	got := e.Evaluate("expiry 31/02/2030 only", evalNow)
	assert.False(t, got.Found)
}

func TestExpiryEvaluator_FirstSignalWins(t *testing.T) {
	e := testExpiryEvaluator(t)

	got := e.Evaluate("expires 01/01/2030 ... expiry 01/01/2020", evalNow)
	require.True(t, got.Found)
	assert.Equal(t, 2030, got.Date.Year())
	assert.False(t, got.IsExpired)
}
