package store

import "embed"

// The bundled first-run dataset. Seeding copies these blobs verbatim into
// any collection that does not exist yet; existing data is never touched.

//go:embed seed/questions.json seed/answers.json seed/comments.json
var seedFS embed.FS

var seedFiles = []struct {
	collection string
	path       string
}{
	{QuestionsCollection, "seed/questions.json"},
	{AnswersCollection, "seed/answers.json"},
	{CommentsCollection, "seed/comments.json"},
}

// Initialize seeds the three collections. Idempotent: safe on every start.
func Initialize(s Store) error {
	for _, f := range seedFiles {
		data, err := seedFS.ReadFile(f.path)
		if err != nil {
			return err
		}
		if err := s.Seed(f.collection, data); err != nil {
			return err
		}
	}
	return nil
}
