package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zingozingo/reading-tracker/internal/entity"
	"github.com/zingozingo/reading-tracker/internal/store/mocks"
	"github.com/zingozingo/reading-tracker/internal/usecase"
)

func TestBookService_Create_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(repo)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *entity.Book) error {
			b.ID = 1
			b.DateAdded = time.Now()
			return nil
		})

	book, err := svc.Create(context.Background(), usecase.CreateBookInput{
		Title:      "Clean Code",
		Author:     "R. Martin",
		TotalPages: 464,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusWantToRead, book.Status)
	assert.Equal(t, 0, book.CurrentPage)
	assert.False(t, book.DateAdded.IsZero())
}

func TestBookService_Create_StatusOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	book, err := svc.Create(context.Background(), usecase.CreateBookInput{
		Title:      "Clean Code",
		Author:     "R. Martin",
		TotalPages: 464,
		Status:     entity.StatusReading,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReading, book.Status)
}

func TestBookService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(repo)

	rating := 9
	tests := []struct {
		name  string
		in    usecase.CreateBookInput
		field string
	}{
		{"missing title", usecase.CreateBookInput{Author: "A", TotalPages: 10}, "title"},
		{"missing author", usecase.CreateBookInput{Title: "T", TotalPages: 10}, "author"},
		{"zero total pages", usecase.CreateBookInput{Title: "T", Author: "A"}, "total_pages"},
		{"negative total pages", usecase.CreateBookInput{Title: "T", Author: "A", TotalPages: -5}, "total_pages"},
		{"negative current page", usecase.CreateBookInput{Title: "T", Author: "A", TotalPages: 10, CurrentPage: -1}, "current_page"},
		{"rating out of range", usecase.CreateBookInput{Title: "T", Author: "A", TotalPages: 10, Rating: &rating}, "rating"},
		{"bad status", usecase.CreateBookInput{Title: "T", Author: "A", TotalPages: 10, Status: "finished"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			var ve *usecase.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestBookService_Update_Partial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(repo)

	existing := entity.Book{
		ID:          1,
		Title:       "Clean Code",
		Author:      "R. Martin",
		TotalPages:  464,
		CurrentPage: 100,
		Status:      entity.StatusReading,
	}
	repo.EXPECT().Get(gomock.Any(), int64(1)).Return(existing, nil)

	var saved entity.Book
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *entity.Book) error {
			saved = *b
			return nil
		})

	rating := 5
	book, err := svc.Update(context.Background(), 1, usecase.UpdateBookInput{
		Rating: &rating,
	})
	require.NoError(t, err)

	// Only rating changes; everything else is untouched.
	assert.Equal(t, "Clean Code", book.Title)
	assert.Equal(t, 100, book.CurrentPage)
	assert.Equal(t, entity.StatusReading, book.Status)
	require.NotNil(t, book.Rating)
	assert.Equal(t, 5, *book.Rating)
	assert.Equal(t, book, saved)
}

func TestBookService_Update_ManualCompletionDoesNotDeriveDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(repo)

	existing := entity.Book{ID: 1, Title: "T", Author: "A", TotalPages: 100, Status: entity.StatusReading}
	repo.EXPECT().Get(gomock.Any(), int64(1)).Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	completed := entity.StatusCompleted
	book, err := svc.Update(context.Background(), 1, usecase.UpdateBookInput{Status: &completed})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusCompleted, book.Status)
	assert.Nil(t, book.DateFinished)
}

func TestBookService_Update_ReRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(repo)

	finished := time.Now()
	existing := entity.Book{
		ID: 1, Title: "T", Author: "A", TotalPages: 100,
		CurrentPage: 100, Status: entity.StatusCompleted, DateFinished: &finished,
	}
	repo.EXPECT().Get(gomock.Any(), int64(1)).Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	reading := entity.StatusReading
	zero := 0
	book, err := svc.Update(context.Background(), 1, usecase.UpdateBookInput{
		Status:      &reading,
		CurrentPage: &zero,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusReading, book.Status)
	assert.Equal(t, 0, book.CurrentPage)
}

func TestBookService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(repo)

	repo.EXPECT().Get(gomock.Any(), int64(99)).Return(entity.Book{}, usecase.ErrNotFound)

	title := "X"
	_, err := svc.Update(context.Background(), 99, usecase.UpdateBookInput{Title: &title})
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestBookService_List_NormalizesPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockBookRepository(ctrl)
	svc := usecase.NewBookService(repo)

	repo.EXPECT().
		List(gomock.Any(), usecase.BookListParams{Page: usecase.Page{Skip: 0, Limit: 100}}).
		Return([]entity.Book{}, nil)

	_, err := svc.List(context.Background(), usecase.BookListParams{
		Page: usecase.Page{Skip: -5, Limit: 500},
	})
	require.NoError(t, err)
}
