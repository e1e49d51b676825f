package model

// sortedIndexer lays columns out session-fastest and unit-slowest, so that
// ascending column order matches the unit -> room -> day -> session
// enumeration order of the variable space.
type sortedIndexer struct {
	units    uint64
	rooms    uint64
	days     uint64
	sessions uint64
}

func (i *sortedIndexer) Index(unit, room, day, session uint64) uint64 {
	return 1 + session + i.sessions*(day) + i.sessions*i.days*(room) + i.sessions*i.days*i.rooms*(unit)
}

func (i *sortedIndexer) Attributes(index uint64) (unit uint64, room uint64, day uint64, session uint64) {
	index--

	session = index % i.sessions
	index = index / i.sessions

	day = index % i.days
	index = index / i.days

	room = index % i.rooms
	index = index / i.rooms

	unit = index % i.units

	return unit, room, day, session
}
