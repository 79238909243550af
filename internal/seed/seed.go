// Package seed fills a store with generated demo notes.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaswdr/faker"

	"notes-api/internal/model"
	"notes-api/internal/service"
)

// Notes creates count random notes through svc, so every generated note
// passes the same validation as API input.
func Notes(ctx context.Context, svc *service.NoteService, fake faker.Faker, count int) ([]model.Note, error) {
	notes := make([]model.Note, 0, count)
	for i := 0; i < count; i++ {
		note, err := svc.Create(ctx, randomNote(fake))
		if err != nil {
			return notes, fmt.Errorf("seed note %d: %w", i+1, err)
		}
		notes = append(notes, *note)
	}
	return notes, nil
}

func randomNote(fake faker.Faker) service.NoteCreate {
	title := strings.TrimSuffix(fake.Lorem().Sentence(fake.IntBetween(2, 6)), ".")
	if len(title) > model.TitleMaxLen {
		title = title[:model.TitleMaxLen]
	}

	in := service.NoteCreate{
		Title:      title,
		CategoryID: uint(fake.IntBetween(1, len(model.CategoryTypes))),
	}
	if fake.Bool() {
		description := fake.Lorem().Paragraph(fake.IntBetween(1, 4))
		if len(description) > model.DescriptionMaxLen {
			description = description[:model.DescriptionMaxLen]
		}
		in.Description = &description
	}
	priority := fake.IntBetween(model.PriorityMin, model.PriorityMax)
	in.Priority = &priority
	return in
}
