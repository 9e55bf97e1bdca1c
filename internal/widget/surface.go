package widget

// Input is the city field the user types into
type Input interface {
	Value() string
}

// SuggestionList is the container of clickable suggestion entries
type SuggestionList interface {
	ClearSuggestions()
	AppendSuggestion(label string, onSelect func())
}

// Output is the weather panel; content is replaced, never appended
type Output interface {
	SetContent(content string)
}
