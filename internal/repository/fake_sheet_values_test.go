package repository

import (
	"context"
	"errors"
	"sync"
)

type fakeSheetValues struct {
	mu      sync.Mutex
	sheets  map[string][][]interface{}
	writes  int
	added   []string
	failGet error
}

func newFakeSheetValues() *fakeSheetValues {
	return &fakeSheetValues{sheets: map[string][][]interface{}{}}
}

func (f *fakeSheetValues) Get(ctx context.Context, sheet string) ([][]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failGet != nil {
		return nil, f.failGet
	}
	values, ok := f.sheets[sheet]
	if !ok {
		return nil, ErrTableMissing
	}
	return values, nil
}

func (f *fakeSheetValues) Update(ctx context.Context, sheet string, values [][]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.sheets[sheet]; !ok {
		return errors.New("Unable to parse range: " + sheet)
	}
	f.sheets[sheet] = values
	f.writes++
	return nil
}

func (f *fakeSheetValues) AddSheet(ctx context.Context, sheet string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sheets[sheet] = nil
	f.added = append(f.added, sheet)
	return nil
}

func header(columns []string) []interface{} {
	row := make([]interface{}, len(columns))
	for i, c := range columns {
		row[i] = c
	}
	return row
}
