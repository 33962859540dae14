package factory

import (
	"context"
	"time"

	"github.com/mcoot/crosswordbuilder/internal/dependencies/mocks"
	"github.com/mcoot/crosswordbuilder/internal/model"
	"github.com/mcoot/crosswordbuilder/internal/storage/memory"
	"github.com/mcoot/crosswordbuilder/internal/testutil"
)

// TestTime is the instant the mock clock starts at
var TestTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(TestTime)
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWordList loads a small clued word list for testing
func (t *TestApp) LoadTestWordList(ctx context.Context) error {
	return t.DictionaryService.LoadEntries(ctx, []model.WordEntry{
		{Word: "jacob", Clue: "Patriarch with twelve sons"},
		{Word: "john", Clue: "Fourth gospel"},
		{Word: "howl", Clue: "Wolf's cry"},
		{Word: "owl", Clue: "Night hunter"},
		{Word: "cat", Clue: "Feline"},
		{Word: "toe", Clue: "Foot digit"},
		{Word: "oboe", Clue: "Double-reed instrument"},
		{Word: "bean", Clue: "Legume"},
	})
}
