package types

// ID type aliases give the bare integers coming back from SQLite a
// domain meaning, so a TaskID can never be passed where a PersonID is
// expected without an explicit conversion.

// PersonID identifies a unique person in the store
type PersonID int

// MilestoneID identifies a unique milestone in the store
type MilestoneID int

// TaskID identifies a unique task in the store
type TaskID int

// ToInt converts type aliases back to int for SQL parameter binding
func (id PersonID) ToInt() int {
	return int(id)
}

func (id MilestoneID) ToInt() int {
	return int(id)
}

func (id TaskID) ToInt() int {
	return int(id)
}
