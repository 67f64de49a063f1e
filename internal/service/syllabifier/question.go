package syllabifier

import (
	"context"

	"github.com/heartmarshall/pantig-backend/internal/domain"
)

// BuildQuestion returns the syllableParts payload of a syllable-splitting
// quiz question for word.
func (s *Service) BuildQuestion(ctx context.Context, word string) (domain.SyllableQuestion, error) {
	syl, err := s.Split(ctx, word)
	if err != nil {
		return domain.SyllableQuestion{}, err
	}

	return domain.SyllableQuestion{
		Word:          syl.Word,
		SyllableParts: syl.Syllables,
		SyllableCount: syl.SyllableCount(),
		Source:        syl.Source,
	}, nil
}
