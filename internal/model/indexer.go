package model

// Indexer gives a unique column to a combination of assignment-variable
// attributes and vice versa.
type Indexer interface {
	// Returns the 1-based column of an attribute combination
	Index(unit, room, day, session uint64) uint64
	// Returns the attribute combination of a 1-based column
	Attributes(index uint64) (unit uint64, room uint64, day uint64, session uint64)
}

func NewIndexer(units, rooms, days, sessions uint64) Indexer {
	return &sortedIndexer{
		units:    units,
		rooms:    rooms,
		days:     days,
		sessions: sessions,
	}
}
