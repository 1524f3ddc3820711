// Package suggest selects the best-matching schema pair for a free-text
// problem description using a fixed catalog of domain patterns.
package suggest

import "github.com/kyleking/schema-wizard/internal/schema"

// Generator produces a fresh schema pair for one domain pattern. Generators
// are pure: every call returns newly constructed values.
type Generator func() schema.Set

// Pattern is one catalog row mapping trigger keywords to a schema-pair
// generator with a priority weight. Keywords are lower-case and matched by
// substring containment against the lower-cased description.
type Pattern struct {
	Name     string
	Keywords []string
	Priority int
	Generate Generator
}

// catalog is read-only after package init. Declaration order matters:
// entries with equal effective scores resolve to the earlier one.
var catalog = []Pattern{
	{
		Name:     "fraud-detection",
		Keywords: []string{"fraud", "fraudulent", "scam", "spam", "phishing", "fake"},
		Priority: 10,
		Generate: fraudSchemas,
	},
	{
		Name:     "churn-prediction",
		Keywords: []string{"churn", "retention", "attrition", "cancel", "unsubscribe"},
		Priority: 10,
		Generate: churnSchemas,
	},
	{
		Name:     "sentiment-analysis",
		Keywords: []string{"sentiment", "emotion", "feeling", "opinion", "review"},
		Priority: 9,
		Generate: sentimentSchemas,
	},
	{
		Name:     "price-estimation",
		Keywords: []string{"price", "pricing", "cost", "estimate", "valuation", "worth"},
		Priority: 9,
		Generate: pricingSchemas,
	},
	{
		Name:     "classification",
		Keywords: []string{"classify", "classification", "categorize", "category", "label", "tag"},
		Priority: 8,
		Generate: classificationSchemas,
	},
	{
		Name:     "recommendation",
		Keywords: []string{"recommend", "recommendation", "suggest", "personalize"},
		Priority: 8,
		Generate: recommendationSchemas,
	},
	{
		Name:     "anomaly-detection",
		Keywords: []string{"anomaly", "outlier", "abnormal", "unusual", "detect"},
		Priority: 8,
		Generate: anomalySchemas,
	},
	{
		Name:     "image-recognition",
		Keywords: []string{"image", "photo", "picture", "visual", "recognize"},
		Priority: 7,
		Generate: imageSchemas,
	},
	{
		Name:     "summarization",
		Keywords: []string{"summarize", "summary", "extract", "abstract", "tldr"},
		Priority: 7,
		Generate: summarizationSchemas,
	},
	{
		Name:     "forecasting",
		Keywords: []string{"predict", "forecast", "estimate"},
		Priority: 5,
		Generate: forecastSchemas,
	},
}

// Patterns returns a copy of the catalog for display purposes.
func Patterns() []Pattern {
	out := make([]Pattern, len(catalog))
	copy(out, catalog)

	return out
}

// DefaultSet is the generic fallback returned when nothing in the catalog
// matches or the description is empty.
func DefaultSet() schema.Set {
	return schema.Set{
		Input: schema.Object(
			schema.Field{
				Name: "data", Type: schema.TypeObject, Required: true,
				Description: "Raw input record for the prediction",
			},
			schema.Field{
				Name: "features", Type: schema.TypeObject,
				Description: "Optional pre-computed feature values",
			},
			schema.Field{
				Name: "metadata", Type: schema.TypeObject,
				Description: "Additional context about the request",
			},
		),
		Output: schema.Object(
			schema.Field{
				Name: "prediction", Type: schema.TypeString, Required: true,
				Description: "Predicted value for the input record",
			},
			schema.Field{
				Name: "confidence", Type: schema.TypeNumber,
				Description: "Model confidence in the prediction",
				Minimum:     schema.Bound(0), Maximum: schema.Bound(1),
			},
			schema.Field{
				Name: "metadata", Type: schema.TypeObject,
				Description: "Additional details about the prediction",
			},
		),
	}
}

func fraudSchemas() schema.Set {
	return schema.Set{
		Input: schema.Object(
			schema.Field{
				Name: "text", Type: schema.TypeString, Required: true,
				Description: "Message or transaction content to analyze",
			},
			schema.Field{
				Name: "sender", Type: schema.TypeString,
				Description: "Identifier or address of the originating party",
			},
			schema.Field{
				Name: "metadata", Type: schema.TypeObject,
				Description: "Additional context such as headers or timestamps",
			},
		),
		Output: schema.Object(
			schema.Field{
				Name: "is_fraudulent", Type: schema.TypeBoolean, Required: true,
				Description: "Whether the content is judged fraudulent",
			},
			schema.Field{
				Name: "confidence", Type: schema.TypeNumber, Required: true,
				Description: "Confidence in the fraud judgment",
				Minimum:     schema.Bound(0), Maximum: schema.Bound(1),
			},
			schema.Field{
				Name: "flagged_terms", Type: schema.TypeArray,
				Description: "Suspicious terms found in the content",
				Items:       &schema.Schema{Type: schema.TypeString},
			},
		),
	}
}

func churnSchemas() schema.Set {
	return schema.Set{
		Input: schema.Object(
			schema.Field{
				Name: "customer_id", Type: schema.TypeString, Required: true,
				Description: "Unique customer identifier",
			},
			schema.Field{
				Name: "tenure_months", Type: schema.TypeInteger,
				Description: "Months the customer has been active",
				Minimum:     schema.Bound(0),
			},
			schema.Field{
				Name: "monthly_charges", Type: schema.TypeNumber,
				Description: "Current monthly charges",
				Minimum:     schema.Bound(0),
			},
			schema.Field{
				Name: "support_tickets", Type: schema.TypeInteger,
				Description: "Support tickets opened in the last 90 days",
				Minimum:     schema.Bound(0),
			},
			schema.Field{
				Name: "usage", Type: schema.TypeObject,
				Description: "Recent product usage metrics",
			},
		),
		Output: schema.Object(
			schema.Field{
				Name: "will_churn", Type: schema.TypeBoolean, Required: true,
				Description: "Whether the customer is likely to churn",
			},
			schema.Field{
				Name: "confidence", Type: schema.TypeNumber, Required: true,
				Description: "Confidence in the churn prediction",
				Minimum:     schema.Bound(0), Maximum: schema.Bound(1),
			},
			schema.Field{
				Name: "risk_factors", Type: schema.TypeArray,
				Description: "Signals contributing to the churn risk",
				Items:       &schema.Schema{Type: schema.TypeString},
			},
		),
	}
}

func sentimentSchemas() schema.Set {
	return schema.Set{
		Input: schema.Object(
			schema.Field{
				Name: "text", Type: schema.TypeString, Required: true,
				Description: "Text to analyze for sentiment",
			},
			schema.Field{
				Name: "language", Type: schema.TypeString,
				Description: "ISO language code of the text",
			},
		),
		Output: schema.Object(
			schema.Field{
				Name: "sentiment", Type: schema.TypeString, Required: true,
				Description: "Overall sentiment: positive, negative, or neutral",
			},
			schema.Field{
				Name: "confidence", Type: schema.TypeNumber, Required: true,
				Description: "Confidence in the sentiment label",
				Minimum:     schema.Bound(0), Maximum: schema.Bound(1),
			},
			schema.Field{
				Name: "scores", Type: schema.TypeObject,
				Description: "Per-label sentiment scores",
			},
		),
	}
}

func pricingSchemas() schema.Set {
	return schema.Set{
		Input: schema.Object(
			schema.Field{
				Name: "attributes", Type: schema.TypeObject, Required: true,
				Description: "Attributes of the item being priced",
			},
			schema.Field{
				Name: "location", Type: schema.TypeString,
				Description: "Geographic market for the estimate",
			},
			schema.Field{
				Name: "condition", Type: schema.TypeString,
				Description: "Condition or quality grade of the item",
			},
		),
		Output: schema.Object(
			schema.Field{
				Name: "price", Type: schema.TypeNumber, Required: true,
				Description: "Estimated price in the base currency",
				Minimum:     schema.Bound(0),
			},
			schema.Field{
				Name: "confidence", Type: schema.TypeNumber,
				Description: "Confidence in the price estimate",
				Minimum:     schema.Bound(0), Maximum: schema.Bound(1),
			},
			schema.Field{
				Name: "price_range", Type: schema.TypeObject,
				Description: "Lower and upper bounds of the estimate",
			},
		),
	}
}

func classificationSchemas() schema.Set {
	return schema.Set{
		Input: schema.Object(
			schema.Field{
				Name: "text", Type: schema.TypeString, Required: true,
				Description: "Content to classify",
			},
			schema.Field{
				Name: "candidate_labels", Type: schema.TypeArray,
				Description: "Optional fixed set of labels to choose from",
				Items:       &schema.Schema{Type: schema.TypeString},
			},
		),
		Output: schema.Object(
			schema.Field{
				Name: "label", Type: schema.TypeString, Required: true,
				Description: "Best-matching category label",
			},
			schema.Field{
				Name: "confidence", Type: schema.TypeNumber, Required: true,
				Description: "Confidence in the assigned label",
				Minimum:     schema.Bound(0), Maximum: schema.Bound(1),
			},
			schema.Field{
				Name: "all_labels", Type: schema.TypeArray,
				Description: "Every candidate label with its score",
				Items:       &schema.Schema{Type: schema.TypeObject},
			},
		),
	}
}

func recommendationSchemas() schema.Set {
	return schema.Set{
		Input: schema.Object(
			schema.Field{
				Name: "user_id", Type: schema.TypeString, Required: true,
				Description: "Identifier of the user to personalize for",
			},
			schema.Field{
				Name: "history", Type: schema.TypeArray,
				Description: "Recent items the user interacted with",
				Items:       &schema.Schema{Type: schema.TypeString},
			},
			schema.Field{
				Name: "context", Type: schema.TypeObject,
				Description: "Session context such as device or locale",
			},
		),
		Output: schema.Object(
			schema.Field{
				Name: "recommendations", Type: schema.TypeArray, Required: true,
				Description: "Ranked item identifiers to recommend",
				Items:       &schema.Schema{Type: schema.TypeString},
			},
			schema.Field{
				Name: "scores", Type: schema.TypeArray,
				Description: "Relevance score per recommended item",
				Items: &schema.Schema{
					Type:    schema.TypeNumber,
					Minimum: schema.Bound(0), Maximum: schema.Bound(1),
				},
			},
		),
	}
}

func anomalySchemas() schema.Set {
	return schema.Set{
		Input: schema.Object(
			schema.Field{
				Name: "values", Type: schema.TypeArray, Required: true,
				Description: "Observed metric values to inspect",
				Items:       &schema.Schema{Type: schema.TypeNumber},
			},
			schema.Field{
				Name: "timestamp", Type: schema.TypeString,
				Description: "Time of the most recent observation",
			},
			schema.Field{
				Name: "baseline", Type: schema.TypeObject,
				Description: "Expected normal range for the metric",
			},
		),
		Output: schema.Object(
			schema.Field{
				Name: "is_anomaly", Type: schema.TypeBoolean, Required: true,
				Description: "Whether the observation is anomalous",
			},
			schema.Field{
				Name: "anomaly_score", Type: schema.TypeNumber, Required: true,
				Description: "Severity of the deviation from normal",
				Minimum:     schema.Bound(0), Maximum: schema.Bound(1),
			},
			schema.Field{
				Name: "deviation", Type: schema.TypeNumber,
				Description: "Distance from the expected baseline",
			},
		),
	}
}

func imageSchemas() schema.Set {
	return schema.Set{
		Input: schema.Object(
			schema.Field{
				Name: "image_url", Type: schema.TypeString, Required: true,
				Description: "Location of the image to analyze",
			},
			schema.Field{
				Name: "format", Type: schema.TypeString,
				Description: "Image format hint such as png or jpeg",
			},
		),
		Output: schema.Object(
			schema.Field{
				Name: "labels", Type: schema.TypeArray, Required: true,
				Description: "Objects or concepts recognized in the image",
				Items:       &schema.Schema{Type: schema.TypeString},
			},
			schema.Field{
				Name: "confidence", Type: schema.TypeNumber,
				Description: "Confidence in the top label",
				Minimum:     schema.Bound(0), Maximum: schema.Bound(1),
			},
		),
	}
}

func summarizationSchemas() schema.Set {
	return schema.Set{
		Input: schema.Object(
			schema.Field{
				Name: "text", Type: schema.TypeString, Required: true,
				Description: "Document to summarize",
			},
			schema.Field{
				Name: "max_length", Type: schema.TypeInteger,
				Description: "Maximum summary length in words",
				Minimum:     schema.Bound(1),
			},
		),
		Output: schema.Object(
			schema.Field{
				Name: "summary", Type: schema.TypeString, Required: true,
				Description: "Condensed version of the document",
			},
			schema.Field{
				Name: "key_points", Type: schema.TypeArray,
				Description: "Main points extracted from the document",
				Items:       &schema.Schema{Type: schema.TypeString},
			},
		),
	}
}

func forecastSchemas() schema.Set {
	return schema.Set{
		Input: schema.Object(
			schema.Field{
				Name: "series", Type: schema.TypeArray, Required: true,
				Description: "Historical values ordered oldest to newest",
				Items:       &schema.Schema{Type: schema.TypeNumber},
			},
			schema.Field{
				Name: "horizon", Type: schema.TypeInteger,
				Description: "Number of future steps to predict",
				Minimum:     schema.Bound(1),
			},
			schema.Field{
				Name: "features", Type: schema.TypeObject,
				Description: "External signals known for the forecast window",
			},
		),
		Output: schema.Object(
			schema.Field{
				Name: "forecast", Type: schema.TypeArray, Required: true,
				Description: "Predicted values for each future step",
				Items:       &schema.Schema{Type: schema.TypeNumber},
			},
			schema.Field{
				Name: "confidence", Type: schema.TypeNumber,
				Description: "Overall confidence in the forecast",
				Minimum:     schema.Bound(0), Maximum: schema.Bound(1),
			},
			schema.Field{
				Name: "bounds", Type: schema.TypeObject,
				Description: "Upper and lower prediction intervals",
			},
		),
	}
}
