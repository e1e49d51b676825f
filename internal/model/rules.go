package model

import "class-scheduling/internal/milp"

const (
	// A lecturer teaches at most this many Theory sessions per day.
	maxDailyTheorySessions = 3

	// No class meets during this session ordinal on Fridays.
	fridayBlackedOutSession = 3
)

// Rule is one tagged constraint family of the scheduling rule catalog.
// Catalogs are plain slices, so alternate rule sets can be assembled and
// swapped without touching the builder's core loop.
type Rule struct {
	Tag   string
	Build func(b *constraintBuilder) []milp.Constr
}

// DefaultRules is the canonical rule catalog. The room-type-dispatch rule
// covers both room compatibility and the required-Theory Online ban as a
// single mutually exclusive branch per room.
func DefaultRules() []Rule {
	return []Rule{
		{Tag: "schedule-once", Build: (*constraintBuilder).scheduleOnce},
		{Tag: "room-exclusivity", Build: (*constraintBuilder).roomExclusivity},
		{Tag: "capacity-fit", Build: (*constraintBuilder).capacityFit},
		{Tag: "daily-load-cap", Build: (*constraintBuilder).dailyTheoryLoadCap},
		{Tag: "friday-blackout", Build: (*constraintBuilder).fridayBlackout},
		{Tag: "class-group-sync", Build: (*constraintBuilder).classGroupCoSchedule},
		{Tag: "practicum-sync", Build: (*constraintBuilder).practicumCoSchedule},
		{Tag: "practicum-distinct-room", Build: (*constraintBuilder).practicumDistinctRoom},
		{Tag: "practicum-room-cohesion", Build: (*constraintBuilder).practicumRoomCohesion},
		{Tag: "no-double-booking", Build: (*constraintBuilder).lecturerNoDoubleBooking},
		{Tag: "room-type-dispatch", Build: (*constraintBuilder).roomTypeDispatch},
		{Tag: "no-duplicate-placement", Build: (*constraintBuilder).noDuplicatePlacement},
	}
}
