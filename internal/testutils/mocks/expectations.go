// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/echosheet/internal/clients/backend"
	backendmock "github.com/KirkDiggler/echosheet/internal/clients/backend/mock"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	draftrepo "github.com/KirkDiggler/echosheet/internal/repositories/character_draft"
	draftrepomock "github.com/KirkDiggler/echosheet/internal/repositories/character_draft/mock"
)

// ExpectSpellbook sets up a spellbook fetch for a class
func ExpectSpellbook(mockClient *backendmock.MockClient, book *echosheet.Spellbook) *gomock.Call {
	return mockClient.EXPECT().
		GetSpellbook(gomock.Any(), book.Class).
		Return(book, nil)
}

// ExpectAutofill sets up an autofill call for the draft's identity
func ExpectAutofill(
	mockClient *backendmock.MockClient, draft *echosheet.CharacterDraft,
	playstyle string, resp *backend.AutofillResponse,
) *gomock.Call {
	return mockClient.EXPECT().
		Autofill(gomock.Any(), &backend.AutofillRequest{
			Name:       draft.Name,
			Race:       draft.Race,
			Class:      draft.Class,
			Level:      draft.Level,
			Background: draft.Background,
			Playstyle:  playstyle,
		}).
		Return(resp, nil)
}

// ExpectDraftGet sets up a mock expectation for getting a draft from repository
func ExpectDraftGet(
	ctx context.Context, mockRepo *draftrepomock.MockRepository,
	draftID string, draft *echosheet.CharacterDraft, err error,
) {
	var out *draftrepo.GetOutput
	if err == nil {
		out = &draftrepo.GetOutput{Draft: draft}
	}
	mockRepo.EXPECT().
		Get(ctx, draftrepo.GetInput{ID: draftID}).
		Return(out, err)
}

// ExpectDraftUpdate sets up a mock expectation for updating a draft
func ExpectDraftUpdate(ctx context.Context, mockRepo *draftrepomock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input draftrepo.UpdateInput) (*draftrepo.UpdateOutput, error) {
			if err != nil {
				return nil, err
			}
			return &draftrepo.UpdateOutput{Draft: input.Draft}, nil
		})
}

// ExpectDraftDelete sets up a mock expectation for deleting a draft
func ExpectDraftDelete(ctx context.Context, mockRepo *draftrepomock.MockRepository, draftID string, err error) {
	mockRepo.EXPECT().
		Delete(ctx, draftrepo.DeleteInput{ID: draftID}).
		Return(&draftrepo.DeleteOutput{}, err)
}
