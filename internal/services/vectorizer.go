package services

import (
	"hash/fnv"
	"math"
	"strings"
)

// VectorDimensions is the fixed length of every document vector in the
// system. ~900-word English vocabularies hash comfortably into it.
const VectorDimensions = 300

// Vectorizer turns text into a fixed-length document vector. It is
// constructed once by the host process and injected into the scoring
// services; never accessed through global state. Implementations never
// fail: unusable text yields the zero vector.
type Vectorizer interface {
	Vectorize(text string) []float64
	Dimensions() int
}

// hashingVectorizer produces deterministic signed hashed n-gram
// vectors (1- and 2-grams), L2-normalized so cosine similarity between
// separately vectorized documents is meaningful.
type hashingVectorizer struct {
	dimensions int
}

func NewHashingVectorizer() Vectorizer {
	return &hashingVectorizer{dimensions: VectorDimensions}
}

func (v *hashingVectorizer) Dimensions() int {
	return v.dimensions
}

func (v *hashingVectorizer) Vectorize(text string) []float64 {
	vector := make([]float64, v.dimensions)

	tokens := tokenizeForVector(text)
	if len(tokens) == 0 {
		return vector
	}

	for i, token := range tokens {
		v.addTerm(vector, token)
		if i+1 < len(tokens) {
			v.addTerm(vector, token+" "+tokens[i+1])
		}
	}

	normalizeL2(vector)
	return vector
}

func (v *hashingVectorizer) addTerm(vector []float64, term string) {
	h := fnv.New64a()
	h.Write([]byte(term))
	sum := h.Sum64()

	idx := int(sum % uint64(v.dimensions))
	// One hash bit decides the sign so collisions tend to cancel
	// instead of accumulate.
	if sum&(1<<63) != 0 {
		vector[idx] -= 1
	} else {
		vector[idx] += 1
	}
}

func normalizeL2(vector []float64) {
	var sumSquares float64
	for _, x := range vector {
		sumSquares += x * x
	}
	if sumSquares == 0 {
		return
	}
	norm := math.Sqrt(sumSquares)
	for i := range vector {
		vector[i] /= norm
	}
}

// CosineSimilarity computes dot(a,b)/(|a||b|) clamped to [0,1]. A zero
// vector on either side yields 0.0, never NaN; empty-text documents
// compare as completely dissimilar.
func CosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))

	// Floating-point noise can land fractionally outside [0,1].
	return math.Max(0.0, math.Min(1.0, similarity))
}

var vectorStopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {},
	"is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "that": {},
	"the": {}, "this": {}, "to": {}, "was": {}, "were": {}, "will": {},
	"with": {}, "you": {}, "your": {},
}

func tokenizeForVector(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		case r == '+' || r == '#':
			// Keeps tokens like c++ and c# intact.
			return false
		}
		return true
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := vectorStopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
