package repository

import "executive-assistant/internal/model"

// Render formats notes with their timestamp prefix, preserving order.
func Render(notes []model.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.String()
	}
	return out
}
