package todo

import (
	"time"

	"github.com/Makepad-fr/tada/internal/model"
)

// nextID derives an id from the creation time in milliseconds, bumped past
// last and every id in items so ids stay unique even within one millisecond
// or when the clock steps backwards.
func nextID(now time.Time, last int64, items []model.Item) int64 {
	id := now.UnixMilli()
	if id <= last {
		id = last + 1
	}
	for _, it := range items {
		if it.ID >= id {
			id = it.ID + 1
		}
	}
	return id
}

func maxID(items []model.Item) int64 {
	var m int64
	for _, it := range items {
		if it.ID > m {
			m = it.ID
		}
	}
	return m
}
