package wordbook

// Category is the API view of a word list.
type Category struct {
	ID          int64    `json:"id"`
	Name        *string  `json:"name"`
	NumWords    int64    `json:"num_words"`
	SampleWords []string `json:"sample_words"`
}

// Word is the API view of a single word.
type Word struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
	Word       string `json:"word"`
}

// CreateWord is the request body for adding a word to a category.
type CreateWord struct {
	Word string `json:"word" binding:"required"`
}

// CategoryInput is the request body for creating or renaming a category.
type CategoryInput struct {
	Name *string `json:"name"`
}

// CategoryList wraps the category listing response.
type CategoryList struct {
	Categories []Category `json:"categories"`
}

// WordList wraps the word listing response.
type WordList struct {
	Words []Word `json:"words"`
}
