package suggest

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyleking/schema-wizard/internal/schema"
)

func TestSuggestEmptyDescriptionReturnsDefault(t *testing.T) {
	engine := NewEngine()

	for _, description := range []string{"", "   ", "\n\t "} {
		set := engine.Suggest(description)
		assert.Equal(t, DefaultSet(), set, "description %q", description)

		_, ok := engine.Best(description)
		assert.False(t, ok, "empty description must not match")
	}
}

func TestSuggestNoKeywordMatchReturnsDefault(t *testing.T) {
	engine := NewEngine()

	set := engine.Suggest("help me organize my bookshelf by color")
	assert.Equal(t, DefaultSet(), set)
}

func TestDefaultSetShape(t *testing.T) {
	set := DefaultSet()

	require.NotNil(t, set.Input)
	require.NotNil(t, set.Output)

	assert.Equal(t, []string{"data"}, set.Input.Required)
	assert.Contains(t, set.Input.Properties, "features")
	assert.Contains(t, set.Input.Properties, "metadata")

	assert.Equal(t, []string{"prediction"}, set.Output.Required)

	confidence := set.Output.Properties["confidence"]
	require.NotNil(t, confidence)
	require.NotNil(t, confidence.Minimum)
	require.NotNil(t, confidence.Maximum)
	assert.Equal(t, 0.0, *confidence.Minimum)
	assert.Equal(t, 1.0, *confidence.Maximum)
}

func TestBestFraudulentEmails(t *testing.T) {
	engine := NewEngine()

	match, ok := engine.Best("I want to identify which company emails are fraudulent")
	require.True(t, ok)
	assert.Equal(t, "fraud-detection", match.Pattern.Name)

	set := engine.Suggest("I want to identify which company emails are fraudulent")
	assert.Equal(t, []string{"is_fraudulent", "confidence"}, set.Output.Required)

	confidence := set.Output.Properties["confidence"]
	require.NotNil(t, confidence)
	require.NotNil(t, confidence.Minimum)
	require.NotNil(t, confidence.Maximum)
	assert.Equal(t, 0.0, *confidence.Minimum)
	assert.Equal(t, 1.0, *confidence.Maximum)
}

func TestBestIsCaseInsensitive(t *testing.T) {
	engine := NewEngine()

	match, ok := engine.Best("Detect FRAUDULENT Transactions")
	require.True(t, ok)
	assert.Equal(t, "fraud-detection", match.Pattern.Name)
}

func TestBestCountsEachKeywordOnce(t *testing.T) {
	engine := NewEngine()

	single, ok := engine.Best("customers churn")
	require.True(t, ok)

	repeated, ok := engine.Best("churn churn churn churn")
	require.True(t, ok)

	assert.Equal(t, single.MatchCount, repeated.MatchCount)
	assert.Equal(t, single.Score, repeated.Score)
}

func TestBestMultiKeywordBeatsHigherPrioritySingle(t *testing.T) {
	engine := NewEngine()

	// Two churn keywords (10x2) beat one fraud keyword (10x1).
	match, ok := engine.Best("spam drives customers to cancel and churn")
	require.True(t, ok)
	assert.Equal(t, "churn-prediction", match.Pattern.Name)
	assert.Equal(t, 2, match.MatchCount)
	assert.Equal(t, 20, match.Score)

	// Two forecasting keywords (5x2) beat one sentiment keyword (9x1).
	match, ok = engine.Best("review the data, predict and forecast the next value")
	require.True(t, ok)
	assert.Equal(t, "forecasting", match.Pattern.Name)
	assert.Equal(t, 10, match.Score)
}

func TestBestTieKeepsEarlierCatalogEntry(t *testing.T) {
	engine := NewEngine()

	// "spam" (fraud, 10x1) and "cancel" (churn, 10x1) tie; fraud is
	// declared first and must win.
	match, ok := engine.Best("users cancel after spam complaints")
	require.True(t, ok)
	assert.Equal(t, "fraud-detection", match.Pattern.Name)
	assert.Equal(t, 10, match.Score)
}

func TestBestMatchesSubstringsInsideWords(t *testing.T) {
	engine := NewEngine()

	// Substring containment is intentional: "scamper" contains "scam".
	match, ok := engine.Best("watch the mouse scamper")
	require.True(t, ok)
	assert.Equal(t, "fraud-detection", match.Pattern.Name)
}

func TestSuggestIsIdempotent(t *testing.T) {
	engine := NewEngine()
	description := "estimate the price of a used car"

	first := engine.Suggest(description)
	second := engine.Suggest(description)

	assert.True(t, reflect.DeepEqual(first, second),
		"same description must yield structurally equal schema sets")
	assert.NotSame(t, first.Input, second.Input,
		"each call must construct fresh values")
}

func TestSuggestPerDomainWinners(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		description string
		pattern     string
	}{
		{"flag phishing attempts in our inbox", "fraud-detection"},
		{"which subscribers will unsubscribe next month", "churn-prediction"},
		{"what is the overall opinion in these reviews", "sentiment-analysis"},
		{"how much is this house worth", "price-estimation"},
		{"categorize support tickets by topic", "classification"},
		{"personalize the home page for each user", "recommendation"},
		{"find unusual spikes in server metrics", "anomaly-detection"},
		{"recognize objects in this photo", "image-recognition"},
		{"give me a tldr of this report", "summarization"},
		{"forecast revenue for next quarter", "forecasting"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			match, ok := engine.Best(tt.description)
			require.True(t, ok, "description %q matched nothing", tt.description)
			assert.Equal(t, tt.pattern, match.Pattern.Name)

			set := engine.Suggest(tt.description)
			assert.True(t, reflect.DeepEqual(set, match.Pattern.Generate()))
		})
	}
}

func TestSuggestReturnsValidSchemaSet(t *testing.T) {
	engine := NewEngine()

	// Every path must yield a well-formed pair, including the fallback.
	for _, description := range []string{
		"", "nothing relevant here", "detect fraud", "summarize and classify",
	} {
		set := engine.Suggest(description)

		require.NotNil(t, set.Input, "description %q", description)
		require.NotNil(t, set.Output, "description %q", description)
		assert.Equal(t, schema.TypeObject, set.Input.Type)
		assert.Equal(t, schema.TypeObject, set.Output.Type)
	}
}
