package player

// PlayerStore defines the interface for interacting with the player collection.
type PlayerStore interface {
	// Upsert inserts a player or fully replaces the record with the same name.
	Upsert(p Player) error
	// FindAll returns a snapshot of every player in insertion order.
	FindAll() ([]Player, error)
	// FindByName looks up a player by exact, case-sensitive name.
	FindByName(name string) (*Player, error)
	// DeleteByName removes the player if present. Deleting an absent name is not an error.
	DeleteByName(name string) error
	Count() (int, error)
	Ping() error
}
