package services

import (
	"context"
	"log"
	"math"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

const (
	// minCVLength is the text length below which a resume gets the floor
	// score without further computation.
	minCVLength  = 50
	shortCVScore = 20
	// cvLengthCap is where the length component saturates.
	cvLengthCap = 2000
	// Embedding input caps, applied before the provider call.
	maxCVEmbedLength  = 3000
	maxJobEmbedLength = 2000
)

// cvKeywords is the fixed vocabulary the keyword-richness component is
// measured against.
var cvKeywords = []string{
	"education", "experience", "skills", "projects", "certifications",
	"achievements", "profile", "objective", "summary", "work",
	"internship", "developer", "engineer",
}

const (
	FeedbackNeedsImprovement = "CV needs improvement"
	FeedbackModerate         = "Moderate CV quality"
	FeedbackProfessional     = "Professional CV"
)

// ScoreResult is the immutable outcome of scoring one application attempt.
type ScoreResult struct {
	CVScore    int
	MatchScore int
	Feedback   string
}

// Scorer computes an ATS-style CV quality score and a semantic job-match
// score. It never fails: every internal failure degrades to zero-valued
// components.
type Scorer interface {
	GetAIScores(ctx context.Context, cvText, jobText string) ScoreResult
}

type scorer struct {
	embedder Embedder
	dice     *metrics.SorensenDice
}

func NewScorer(embedder Embedder) Scorer {
	return &scorer{
		embedder: embedder,
		dice:     metrics.NewSorensenDice(),
	}
}

// GetAIScores implements Scorer.
func (s *scorer) GetAIScores(ctx context.Context, cvText, jobText string) ScoreResult {
	cvScore := s.calculateATSScore(cvText)
	matchScore := s.calculateJobMatchScore(ctx, cvText, jobText)

	return ScoreResult{
		CVScore:    cvScore,
		MatchScore: matchScore,
		Feedback:   feedbackForCVScore(cvScore),
	}
}

// feedbackForCVScore derives the label from the CV quality score alone.
func feedbackForCVScore(cvScore int) string {
	switch {
	case cvScore < 40:
		return FeedbackNeedsImprovement
	case cvScore < 65:
		return FeedbackModerate
	default:
		return FeedbackProfessional
	}
}

// calculateATSScore rates the resume text on its own, no external calls.
func (s *scorer) calculateATSScore(cvText string) int {
	if len(cvText) < minCVLength {
		return shortCVScore
	}

	lengthComponent := math.Min(float64(len(cvText))/cvLengthCap, 1.0)

	keywordComponent := 0.0
	lowered := strings.ToLower(cvText)
	for _, keyword := range cvKeywords {
		if rating := strutil.Similarity(lowered, keyword, s.dice); rating > keywordComponent {
			keywordComponent = rating
		}
	}

	return int(math.Round(((lengthComponent + keywordComponent) / 2) * 100))
}

// calculateJobMatchScore embeds both texts in one batched call and maps
// their cosine similarity to 0-100. Best effort: a provider failure is
// logged and scored as 0, never surfaced.
func (s *scorer) calculateJobMatchScore(ctx context.Context, cvText, jobText string) int {
	if cvText == "" || jobText == "" {
		return 0
	}

	if s.embedder == nil {
		log.Println("⚠️  No embedding provider configured, job match score disabled")
		return 0
	}

	if len(cvText) > maxCVEmbedLength {
		cvText = cvText[:maxCVEmbedLength]
	}
	if len(jobText) > maxJobEmbedLength {
		jobText = jobText[:maxJobEmbedLength]
	}

	vectors, err := s.embedder.Embed(ctx, []string{cvText, jobText})
	if err != nil {
		log.Printf("⚠️  Job match scoring failed: %v\n", err)
		return 0
	}

	similarity := cosineSimilarity(vectors[0], vectors[1])

	// Raw cosine for unrelated professional text rarely leaves [0.2, 0.8],
	// so stretch that band over the whole scale.
	normalized := math.Min(1, math.Max(0, (similarity-0.2)/0.6))

	return int(math.Round(normalized * 100))
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
