package widget

import (
	"errors"
	"sync"
)

var ErrSuggestionNotFound = errors.New("suggestion not found")

type suggestion struct {
	label    string
	onSelect func()
}

// Panel is an in-memory widget surface. It implements Input, SuggestionList,
// and Output and is safe for concurrent use.
type Panel struct {
	mu          sync.RWMutex
	value       string
	suggestions []suggestion
	content     string
	version     uint64
}

// PanelState is a point-in-time copy of a Panel
type PanelState struct {
	Value       string   `json:"value" example:"Spring"`
	Suggestions []string `json:"suggestions" example:"Springfield - US"`
	Content     string   `json:"content"`
	Version     uint64   `json:"version" example:"3"`
}

func NewPanel() *Panel {
	return &Panel{}
}

func (p *Panel) Value() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

func (p *Panel) SetValue(value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = value
	p.version++
}

func (p *Panel) ClearSuggestions() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.suggestions = nil
	p.version++
}

func (p *Panel) AppendSuggestion(label string, onSelect func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.suggestions = append(p.suggestions, suggestion{label: label, onSelect: onSelect})
	p.version++
}

func (p *Panel) SetContent(content string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.content = content
	p.version++
}

// Select invokes the suggestion at index as if it were clicked.
// The callback runs without the panel lock held.
func (p *Panel) Select(index int) error {
	p.mu.RLock()
	if index < 0 || index >= len(p.suggestions) {
		p.mu.RUnlock()
		return ErrSuggestionNotFound
	}
	onSelect := p.suggestions[index].onSelect
	p.mu.RUnlock()

	if onSelect != nil {
		onSelect()
	}
	return nil
}

func (p *Panel) Snapshot() PanelState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	labels := make([]string, len(p.suggestions))
	for i, s := range p.suggestions {
		labels[i] = s.label
	}

	return PanelState{
		Value:       p.value,
		Suggestions: labels,
		Content:     p.content,
		Version:     p.version,
	}
}
